package db

import (
	"time"
)

// User table. Profile fields feed the compatibility signals:
//   - Interests: comma-separated tags.
//   - Bio: free text.
//   - Latitude/Longitude: nullable; both must be set to count as a location.
//   - LastActiveAt: nullable; last observed activity.
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Active       bool   `gorm:"default:true"`
	LastLoginAt  time.Time
	Gender       string `gorm:"size:16;not null"`
	Bio          string `gorm:"type:text"`
	Interests    string `gorm:"size:1024"`
	Latitude     *float64
	Longitude    *float64
	LastActiveAt *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Decision represents an actor's like/pass decision on a recipient.
//
// Composite PK: (ActorID, RecipientID)
//   - Ensures a single row per pair (overwrite guarantee).
//
// A decision in either state removes the recipient from the actor's
// candidate pool.
type Decision struct {
	ActorID     uint64    `gorm:"primaryKey"`
	RecipientID uint64    `gorm:"primaryKey;index:idx_recipient_liked,priority:1"`
	Liked       bool      `gorm:"not null;index:idx_recipient_liked,priority:2"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// Block hides two users from each other's candidate pools, whichever side
// created it.
type Block struct {
	BlockerID uint64    `gorm:"primaryKey"`
	BlockedID uint64    `gorm:"primaryKey;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// CompatibilityScore is a directional score UserID → TargetUserID.
//
// Composite PK: (UserID, TargetUserID)
//   - Upserts overwrite the single row per pair.
//
// Indexes:
//   - idx_user_overall_target(user_id, overall_score DESC, target_user_id)
//     Serves the ranked listing with keyset pagination.
type CompatibilityScore struct {
	UserID        uint64    `gorm:"primaryKey;index:idx_user_overall_target,priority:1"`
	TargetUserID  uint64    `gorm:"primaryKey;index:idx_user_overall_target,priority:3"`
	OverallScore  float64   `gorm:"not null;index:idx_user_overall_target,priority:2,sort:desc"`
	InterestScore float64   `gorm:"not null"`
	BioScore      float64   `gorm:"not null"`
	LocationScore float64   `gorm:"not null"`
	ActivityScore float64   `gorm:"not null"`
	ComputedAt    time.Time `gorm:"not null"`
}

// AllModels lists every table for AutoMigrate.
func AllModels() []any {
	return []any{&User{}, &Decision{}, &Block{}, &CompatibilityScore{}}
}
