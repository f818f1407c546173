package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/muzz-smartmatch/internal/db"
)

// RelationRepository writes the user-to-user relations that shape the
// candidate pool: like/pass decisions and blocks.
type RelationRepository struct {
	db *gorm.DB
}

// NewRelationRepository creates a new repository bound to the given DB connection.
func NewRelationRepository(database *gorm.DB) *RelationRepository {
	return &RelationRepository{db: database}
}

// CreateOrUpdateDecision inserts or updates a decision made by actor -> recipient.
//
// Behavior:
//   - If (actor_id, recipient_id) pair exists → the row is updated with the new "liked" value.
//   - If it doesn't exist → a new row is inserted.
//   - Either way the recipient leaves the actor's candidate pool.
//
// Example:
//
//	repo.CreateOrUpdateDecision(ctx, 1, 2, true) // user 1 liked user 2
func (r *RelationRepository) CreateOrUpdateDecision(
	ctx context.Context,
	actorID, recipientID uint64,
	liked bool,
) error {
	decision := db.Decision{
		ActorID:     actorID,
		RecipientID: recipientID,
		Liked:       liked,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "actor_id"}, {Name: "recipient_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
		}).
		Create(&decision).Error
}

// Block hides blocker and blocked from each other. Repeated blocks are no-ops.
func (r *RelationRepository) Block(ctx context.Context, blockerID, blockedID uint64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&db.Block{BlockerID: blockerID, BlockedID: blockedID}).Error
}
