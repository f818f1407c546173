package repository

import (
	"context"

	"gorm.io/gorm"
)

// CandidateRepository selects the candidate pool for a user.
// It is the relational matching.CandidatePool.
type CandidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository creates a new repository bound to the given DB connection.
func NewCandidateRepository(database *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db: database}
}

// Candidates returns up to limit user IDs eligible for userID.
//
// Behavior:
//   - Only active users, never userID itself.
//   - Excludes users blocked by userID and users who blocked userID.
//   - Excludes users userID already decided on (like or pass).
//   - Ordered by id ASC so a bounded pool is deterministic.
//
// Example:
//
//	repo.Candidates(ctx, 42, 500) // -> [3 7 8 ...]
func (r *CandidateRepository) Candidates(ctx context.Context, userID uint64, limit int) ([]uint64, error) {
	ids := make([]uint64, 0, limit)

	err := r.db.WithContext(ctx).
		Table("users u").
		Where("u.active = ? AND u.id <> ?", true, userID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM blocks b
				WHERE (b.blocker_id = ? AND b.blocked_id = u.id)
				   OR (b.blocker_id = u.id AND b.blocked_id = ?)
			)`, userID, userID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM decisions d
				WHERE d.actor_id = ?
				  AND d.recipient_id = u.id
			)`, userID).
		Order("u.id ASC").
		Limit(limit).
		Pluck("u.id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
