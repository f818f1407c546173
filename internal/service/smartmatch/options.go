package smartmatch

import (
	"fmt"

	"github.com/oggyb/muzz-smartmatch/internal/config"
	"github.com/oggyb/muzz-smartmatch/internal/matching"
)

// ScorerOptionsFromConfig turns the env-level matching knobs into validated
// scorer options.
func ScorerOptionsFromConfig(mc config.MatchingConfig) (matching.ScorerOptions, error) {
	distanceCap, err := matching.ParseDistanceCap(mc.MaxDistanceKm)
	if err != nil {
		return matching.ScorerOptions{}, fmt.Errorf("MATCH_MAX_DISTANCE_KM: %w", err)
	}

	opts := matching.ScorerOptions{
		Weights: matching.Weights{
			Interest: mc.WeightInterest,
			Bio:      mc.WeightBio,
			Location: mc.WeightLocation,
			Activity: mc.WeightActivity,
		},
		DistanceCap:    distanceCap,
		DecayKm:        mc.DistanceDecayKm,
		RecentWindow:   mc.RecentWindow,
		InactiveCutoff: mc.InactiveCutoff,
	}
	if err := opts.Weights.Validate(); err != nil {
		return matching.ScorerOptions{}, fmt.Errorf("MATCH_WEIGHT_*: %w", err)
	}
	return opts, nil
}
