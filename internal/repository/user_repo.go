package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/muzz-smartmatch/internal/db"
	"github.com/oggyb/muzz-smartmatch/internal/matching"
)

// UserRepository reads profile fields and maintains last_active_at.
// It is the relational matching.SignalStore.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository bound to the given DB connection.
func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// RawProfile returns the signal-bearing columns of a user row.
//
// Behavior:
//   - Missing row → matching.ErrUserNotFound.
//   - NULL coordinates or last_active_at come back as nil pointers.
func (r *UserRepository) RawProfile(ctx context.Context, userID uint64) (matching.RawProfile, error) {
	var u db.User
	err := r.db.WithContext(ctx).
		Select("id", "interests", "bio", "latitude", "longitude", "last_active_at").
		Where("id = ?", userID).
		Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return matching.RawProfile{}, matching.ErrUserNotFound
	}
	if err != nil {
		return matching.RawProfile{}, err
	}

	return matching.RawProfile{
		UserID:       u.ID,
		Interests:    u.Interests,
		Bio:          u.Bio,
		Latitude:     u.Latitude,
		Longitude:    u.Longitude,
		LastActiveAt: u.LastActiveAt,
	}, nil
}

// TouchActivity stores at as the user's last_active_at.
// Returns matching.ErrUserNotFound when no row was updated.
func (r *UserRepository) TouchActivity(ctx context.Context, userID uint64, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&db.User{}).
		Where("id = ?", userID).
		Update("last_active_at", at.UTC())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return matching.ErrUserNotFound
	}
	return nil
}
