package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/muzz-smartmatch/internal/db"
	"github.com/oggyb/muzz-smartmatch/internal/matching"
	"github.com/oggyb/muzz-smartmatch/internal/utils/pagination"
)

// ScoreRepository persists directional compatibility scores.
// It is the relational matching.ScoreStore.
type ScoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates a new repository bound to the given DB connection.
func NewScoreRepository(database *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: database}
}

// GetScores loads stored scores of userID → targetIDs in one query,
// keyed by target ID. Targets without a row are absent from the map.
func (r *ScoreRepository) GetScores(ctx context.Context, userID uint64, targetIDs []uint64) (map[uint64]matching.Score, error) {
	out := make(map[uint64]matching.Score, len(targetIDs))
	if len(targetIDs) == 0 {
		return out, nil
	}

	var rows []db.CompatibilityScore
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND target_user_id IN ?", userID, targetIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.TargetUserID] = scoreFromRow(row)
	}
	return out, nil
}

// UpsertScore inserts or overwrites the single row for
// (s.UserID, s.TargetUserID).
//
// Behavior:
//   - If the pair exists → every score column and computed_at are replaced.
//   - If it doesn't exist → a new row is inserted.
//   - Composite PK ensures one row per pair.
func (r *ScoreRepository) UpsertScore(ctx context.Context, s matching.Score) error {
	row := rowFromScore(s)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "target_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"overall_score", "interest_score", "bio_score",
				"location_score", "activity_score", "computed_at",
			}),
		}).
		Create(&row).Error
}

// ListScores returns stored scores of userID ranked by overall DESC,
// target ASC, with keyset pagination.
//
// Behavior:
//   - Empty token → first page.
//   - Invalid token → pagination.ErrInvalidToken (wrapped).
//   - A next token is returned only when more rows exist.
//
// Example:
//
//	repo.ListScores(ctx, 42, "", 20) // top 20 stored scores of user 42
func (r *ScoreRepository) ListScores(
	ctx context.Context,
	userID uint64,
	paginationToken string,
	limit int,
) ([]matching.Score, string, error) {
	cursor, err := pagination.Decode(paginationToken)
	if err != nil {
		return nil, "", fmt.Errorf("list scores: %w", err)
	}

	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("overall_score DESC, target_user_id ASC").
		Limit(limit + 1)

	// apply cursor
	if !cursor.IsZero() {
		query = query.Where(
			"(overall_score < ? OR (overall_score = ? AND target_user_id > ?))",
			cursor.Score, cursor.Score, cursor.TargetID,
		)
	}

	var rows []db.CompatibilityScore
	if err := query.Find(&rows).Error; err != nil {
		return nil, "", err
	}

	// pagination: build next cursor if needed
	var next string
	if len(rows) > limit {
		last := rows[limit-1]
		next, err = pagination.Encode(pagination.Cursor{Score: last.OverallScore, TargetID: last.TargetUserID})
		if err != nil {
			return nil, "", err
		}
		rows = rows[:limit]
	}

	scores := make([]matching.Score, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, scoreFromRow(row))
	}
	return scores, next, nil
}

func rowFromScore(s matching.Score) db.CompatibilityScore {
	return db.CompatibilityScore{
		UserID:        s.UserID,
		TargetUserID:  s.TargetUserID,
		OverallScore:  s.Overall,
		InterestScore: s.Interest,
		BioScore:      s.Bio,
		LocationScore: s.Location,
		ActivityScore: s.Activity,
		ComputedAt:    s.ComputedAt.UTC(),
	}
}

func scoreFromRow(row db.CompatibilityScore) matching.Score {
	return matching.Score{
		UserID:       row.UserID,
		TargetUserID: row.TargetUserID,
		Overall:      row.OverallScore,
		SubScores: matching.SubScores{
			Interest: row.InterestScore,
			Bio:      row.BioScore,
			Location: row.LocationScore,
			Activity: row.ActivityScore,
		},
		ComputedAt: row.ComputedAt.UTC(),
	}
}
