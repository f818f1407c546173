package matching

import "time"

// Score is a directional compatibility record for UserID → TargetUserID.
// Score(A,B) and Score(B,A) are independent records.
type Score struct {
	UserID       uint64
	TargetUserID uint64
	Overall      float64
	SubScores
	ComputedAt time.Time
}

// IsStale reports whether the score is older than ttl at now.
// A non-positive ttl never expires.
func (s Score) IsStale(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(s.ComputedAt) > ttl
}

// Source says where a ranked match's score came from.
type Source string

const (
	SourceStored   Source = "stored"
	SourceStale    Source = "stale"
	SourceComputed Source = "computed"
)

// Match is one ranked candidate on the read path.
type Match struct {
	CandidateID uint64
	Overall     float64
	SubScores   SubScores
	ComputedAt  time.Time
	Source      Source
}

// RefreshResult reports a CalculateAndStoreScores batch.
type RefreshResult struct {
	RunID   string
	UserID  uint64
	Stored  []Score
	Skipped int
}
