package matching

import (
	"context"
	"fmt"
	"math"
	"time"
)

const (
	minScore = 0.0
	maxScore = 100.0
)

// Weights of the four sub-scores in the overall score.
type Weights struct {
	Interest float64
	Bio      float64
	Location float64
	Activity float64
}

// DefaultWeights favour shared interests and recent activity.
func DefaultWeights() Weights {
	return Weights{Interest: 0.3, Bio: 0.2, Location: 0.2, Activity: 0.3}
}

// Validate checks that every weight is non-negative and that they sum to 1.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Interest, w.Bio, w.Location, w.Activity} {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("%w: negative or NaN weight in %+v", ErrInvalidWeights, w)
		}
	}
	if sum := w.Interest + w.Bio + w.Location + w.Activity; math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("%w: weights sum to %.6f, want 1", ErrInvalidWeights, sum)
	}
	return nil
}

// ScorerOptions groups the tunable decay curves and weights.
type ScorerOptions struct {
	Weights Weights

	// DistanceCap selects linear decay to a hard cutoff or exponential decay.
	DistanceCap DistanceCap
	// DecayKm is the e-folding distance used when the cap is Uncapped.
	DecayKm float64

	// RecentWindow scores activity at 100; InactiveCutoff floors it at 0.
	RecentWindow   time.Duration
	InactiveCutoff time.Duration
}

// DefaultScorerOptions returns the production defaults.
func DefaultScorerOptions() ScorerOptions {
	return ScorerOptions{
		Weights:        DefaultWeights(),
		DistanceCap:    Capped(100),
		DecayKm:        50,
		RecentWindow:   time.Hour,
		InactiveCutoff: 30 * 24 * time.Hour,
	}
}

// SubScores is the per-dimension breakdown, each in [0,100].
type SubScores struct {
	Interest float64 `json:"interest"`
	Bio      float64 `json:"bio"`
	Location float64 `json:"location"`
	Activity float64 `json:"activity"`
}

// Scorer computes directional compatibility between two users.
type Scorer struct {
	extractor *Extractor
	opts      ScorerOptions
}

// NewScorer validates opts and returns a scorer backed by extractor.
func NewScorer(extractor *Extractor, opts ScorerOptions) (*Scorer, error) {
	if err := opts.Weights.Validate(); err != nil {
		return nil, err
	}
	if maxKm, ok := opts.DistanceCap.Max(); ok && maxKm <= 0 {
		return nil, fmt.Errorf("%w: cap must be positive", ErrInvalidDistanceCap)
	}
	if opts.DecayKm <= 0 {
		opts.DecayKm = DefaultScorerOptions().DecayKm
	}
	if opts.RecentWindow < 0 {
		opts.RecentWindow = 0
	}
	if opts.InactiveCutoff <= opts.RecentWindow {
		return nil, fmt.Errorf("matching: inactive cutoff %s must exceed recent window %s",
			opts.InactiveCutoff, opts.RecentWindow)
	}
	return &Scorer{extractor: extractor, opts: opts}, nil
}

// Options returns the effective options.
func (s *Scorer) Options() ScorerOptions { return s.opts }

// Score extracts both signals and scores user → candidate at now.
func (s *Scorer) Score(ctx context.Context, userID, candidateID uint64, now time.Time) (Score, error) {
	u, err := s.extractor.Extract(ctx, userID)
	if err != nil {
		return Score{}, err
	}
	c, err := s.extractor.Extract(ctx, candidateID)
	if err != nil {
		return Score{}, err
	}
	return s.ScoreSignals(u, c, now), nil
}

// ScoreSignals is the pure scoring core: for the same inputs and now it
// always returns the same Score.
func (s *Scorer) ScoreSignals(user, candidate UserSignal, now time.Time) Score {
	sub := SubScores{
		Interest: clamp(InterestScore(user.Interests, candidate.Interests)),
		Bio:      clamp(BioScore(user.Bio, candidate.Bio)),
		Location: clamp(s.LocationScore(user.Location, candidate.Location)),
		Activity: clamp(s.ActivityScore(candidate.LastActiveAt, now)),
	}
	w := s.opts.Weights
	overall := w.Interest*sub.Interest + w.Bio*sub.Bio + w.Location*sub.Location + w.Activity*sub.Activity

	return Score{
		UserID:       user.UserID,
		TargetUserID: candidate.UserID,
		Overall:      clamp(overall),
		SubScores:    sub,
		ComputedAt:   now.UTC(),
	}
}

// InterestScore is the Jaccard index of two tag sets scaled to 0–100.
// An empty side yields 0.
func InterestScore(a, b map[string]struct{}) float64 {
	return jaccard(a, b) * maxScore
}

// BioScore is the Jaccard index of the significant words of two bios.
func BioScore(a, b string) float64 {
	return jaccard(significantWords(a), significantWords(b)) * maxScore
}

// LocationScore decays with distance. Missing coordinates yield 0.
func (s *Scorer) LocationScore(a, b *Location) float64 {
	if a == nil || b == nil {
		return 0
	}
	d := HaversineKm(*a, *b)
	if maxKm, ok := s.opts.DistanceCap.Max(); ok {
		if d >= maxKm {
			return 0
		}
		return maxScore * (1 - d/maxKm)
	}
	return maxScore * math.Exp(-d/s.opts.DecayKm)
}

// ActivityScore decays linearly between the recent window and the inactive
// cutoff. A missing timestamp yields 0; a future one counts as now.
func (s *Scorer) ActivityScore(lastActiveAt *time.Time, now time.Time) float64 {
	if lastActiveAt == nil || lastActiveAt.IsZero() {
		return 0
	}
	elapsed := now.Sub(*lastActiveAt)
	switch {
	case elapsed <= s.opts.RecentWindow:
		return maxScore
	case elapsed >= s.opts.InactiveCutoff:
		return 0
	}
	span := float64(s.opts.InactiveCutoff - s.opts.RecentWindow)
	return maxScore * (1 - float64(elapsed-s.opts.RecentWindow)/span)
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	inter := 0
	for k := range small {
		if _, ok := large[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return minScore
	case v < minScore:
		return minScore
	case v > maxScore:
		return maxScore
	}
	return v
}
