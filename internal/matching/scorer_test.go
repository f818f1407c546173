package matching_test

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/muzz-smartmatch/internal/matching"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newScorer(t *testing.T, opts matching.ScorerOptions) *matching.Scorer {
	t.Helper()
	s, err := matching.NewScorer(matching.NewExtractor(nil, nil, nil), opts)
	require.NoError(t, err)
	return s
}

func set(tags ...string) map[string]struct{} {
	return matching.ParseInterests(strings.Join(tags, ","))
}

func TestInterestScore_SymmetricAndSelf(t *testing.T) {
	cases := [][2]map[string]struct{}{
		{set("hiking", "reading"), set("hiking", "gaming")},
		{set("a", "b", "c"), set("c")},
		{set("music"), set("film")},
	}
	for _, c := range cases {
		assert.Equal(t, matching.InterestScore(c[0], c[1]), matching.InterestScore(c[1], c[0]))
		assert.Equal(t, 100.0, matching.InterestScore(c[0], c[0]))
	}
}

func TestInterestScore_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, matching.InterestScore(set(), set("hiking")))
	assert.Equal(t, 0.0, matching.InterestScore(set("hiking"), nil))
	assert.Equal(t, 0.0, matching.InterestScore(nil, nil))
}

func TestInterestScore_Jaccard(t *testing.T) {
	got := matching.InterestScore(set("hiking", "reading"), set("hiking", "gaming"))
	assert.InDelta(t, 100.0/3, got, 1e-9)
}

func TestParseInterests_Normalises(t *testing.T) {
	got := matching.ParseInterests(" Hiking, reading,,HIKING , ")
	assert.Equal(t, map[string]struct{}{"hiking": {}, "reading": {}}, got)
	assert.Empty(t, matching.ParseInterests(""))
}

func TestBioScore(t *testing.T) {
	assert.Equal(t, 0.0, matching.BioScore("", "I love hiking in the mountains"))
	assert.Equal(t, 0.0, matching.BioScore("I love hiking", ""))

	// stop-words and short tokens do not count: "the", "and", "a", "in"
	same := matching.BioScore("Hiking and the mountains", "mountains, hiking. A walk in")
	assert.InDelta(t, 100.0*2/3, same, 1e-9)

	assert.Equal(t, 100.0, matching.BioScore("Coffee & jazz!", "jazz coffee"))
	assert.Equal(t, 0.0, matching.BioScore("the and for", "the and for"), "only stop-words means no evidence")
}

func TestLocationScore_MissingIsZero(t *testing.T) {
	s := newScorer(t, matching.DefaultScorerOptions())
	london := &matching.Location{Latitude: 51.5074, Longitude: -0.1278}

	assert.Equal(t, 0.0, s.LocationScore(nil, london))
	assert.Equal(t, 0.0, s.LocationScore(london, nil))
}

func TestLocationScore_SamePointAndMonotonic(t *testing.T) {
	for _, dc := range []matching.DistanceCap{matching.Capped(100), matching.Uncapped()} {
		opts := matching.DefaultScorerOptions()
		opts.DistanceCap = dc
		s := newScorer(t, opts)

		origin := &matching.Location{Latitude: 51.5, Longitude: -0.12}
		assert.Equal(t, 100.0, s.LocationScore(origin, origin), dc.String())

		prev := math.Inf(1)
		for km := 0.0; km <= 300; km += 10 {
			// ~111km per degree of latitude
			p := &matching.Location{Latitude: origin.Latitude + km/111.0, Longitude: origin.Longitude}
			got := s.LocationScore(origin, p)
			assert.LessOrEqual(t, got, prev, "%s at %.0fkm", dc, km)
			assert.GreaterOrEqual(t, got, 0.0)
			prev = got
		}
	}
}

func TestLocationScore_CapFloorsAtZero(t *testing.T) {
	opts := matching.DefaultScorerOptions()
	opts.DistanceCap = matching.Capped(50)
	s := newScorer(t, opts)

	london := &matching.Location{Latitude: 51.5074, Longitude: -0.1278}
	paris := &matching.Location{Latitude: 48.8566, Longitude: 2.3522}
	assert.Equal(t, 0.0, s.LocationScore(london, paris))
}

func TestActivityScore(t *testing.T) {
	s := newScorer(t, matching.DefaultScorerOptions())
	at := func(d time.Duration) *time.Time { v := fixedNow.Add(-d); return &v }

	assert.Equal(t, 0.0, s.ActivityScore(nil, fixedNow))
	assert.Equal(t, 100.0, s.ActivityScore(at(0), fixedNow))
	assert.Equal(t, 100.0, s.ActivityScore(at(59*time.Minute), fixedNow))
	assert.Equal(t, 100.0, s.ActivityScore(at(-time.Hour), fixedNow), "future timestamps count as now")
	assert.Equal(t, 0.0, s.ActivityScore(at(30*24*time.Hour), fixedNow))
	assert.Equal(t, 0.0, s.ActivityScore(at(90*24*time.Hour), fixedNow))

	prev := math.Inf(1)
	for h := 0; h <= 31*24; h += 6 {
		got := s.ActivityScore(at(time.Duration(h)*time.Hour), fixedNow)
		assert.LessOrEqual(t, got, prev, "at %dh", h)
		prev = got
	}
}

// TestScoreSignals_Scenario follows the worked example: shared "hiking",
// no bios, one side without coordinates, candidate active now.
func TestScoreSignals_Scenario(t *testing.T) {
	s := newScorer(t, matching.DefaultScorerOptions())
	now := fixedNow

	lat, lon := 51.5, -0.12
	u := matching.UserSignal{UserID: 1, Interests: set("hiking", "reading")}
	c := matching.UserSignal{
		UserID:       2,
		Interests:    set("hiking", "gaming"),
		Location:     &matching.Location{Latitude: lat, Longitude: lon},
		LastActiveAt: &now,
	}

	got := s.ScoreSignals(u, c, now)

	assert.Equal(t, uint64(1), got.UserID)
	assert.Equal(t, uint64(2), got.TargetUserID)
	assert.InDelta(t, 33.333, got.Interest, 0.01)
	assert.Equal(t, 0.0, got.Bio)
	assert.Equal(t, 0.0, got.Location)
	assert.Equal(t, 100.0, got.Activity)
	assert.InDelta(t, 40.0, got.Overall, 1e-6)
	assert.Equal(t, now, got.ComputedAt)
}

func TestScore_PairFromStore(t *testing.T) {
	ctx := context.Background()
	profiles := &fakeProfiles{
		profiles: map[uint64]matching.RawProfile{
			1: {Interests: "hiking,reading", Bio: "mountain trails and espresso"},
			2: {Interests: "hiking,gaming", Bio: "espresso and mountain biking", LastActiveAt: ptr(fixedNow)},
		},
		failing: map[uint64]bool{},
	}
	extractor := matching.NewExtractor(profiles, nil, nil)
	s, err := matching.NewScorer(extractor, matching.DefaultScorerOptions())
	require.NoError(t, err)

	got, err := s.Score(ctx, 1, 2, fixedNow)
	require.NoError(t, err)

	user, err := extractor.Extract(ctx, 1)
	require.NoError(t, err)
	candidate, err := extractor.Extract(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, s.ScoreSignals(user, candidate, fixedNow), got)
	assert.Equal(t, uint64(1), got.UserID)
	assert.Equal(t, uint64(2), got.TargetUserID)

	_, err = s.Score(ctx, 404, 2, fixedNow)
	assert.ErrorIs(t, err, matching.ErrUserNotFound, "missing user")

	_, err = s.Score(ctx, 1, 404, fixedNow)
	assert.ErrorIs(t, err, matching.ErrUserNotFound, "missing candidate")
}

func TestScoreSignals_DirectionalAndDeterministic(t *testing.T) {
	s := newScorer(t, matching.DefaultScorerOptions())
	recent := fixedNow.Add(-2 * time.Hour)
	old := fixedNow.Add(-20 * 24 * time.Hour)

	a := matching.UserSignal{UserID: 1, Interests: set("jazz"), Bio: "jazz records vinyl", LastActiveAt: &old}
	b := matching.UserSignal{UserID: 2, Interests: set("jazz", "film"), Bio: "vinyl collector", LastActiveAt: &recent}

	ab := s.ScoreSignals(a, b, fixedNow)
	ba := s.ScoreSignals(b, a, fixedNow)
	assert.NotEqual(t, ab.Overall, ba.Overall, "activity uses the candidate's timestamp only")
	assert.Equal(t, ab, s.ScoreSignals(a, b, fixedNow))
}

func TestScoreSignals_Bounds(t *testing.T) {
	s := newScorer(t, matching.DefaultScorerOptions())
	now := fixedNow
	loc := &matching.Location{Latitude: 10, Longitude: 10}
	full := matching.UserSignal{Interests: set("x", "y"), Bio: "espresso climbing", Location: loc, LastActiveAt: &now}

	got := s.ScoreSignals(full, full, now)
	for _, v := range []float64{got.Interest, got.Bio, got.Location, got.Activity, got.Overall} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
	assert.InDelta(t, 100.0, got.Overall, 1e-9)

	empty := s.ScoreSignals(matching.UserSignal{}, matching.UserSignal{}, now)
	assert.Equal(t, 0.0, empty.Overall)
}

func TestWeights_Validate(t *testing.T) {
	assert.NoError(t, matching.DefaultWeights().Validate())

	err := matching.Weights{Interest: 0.5, Bio: 0.5, Location: 0.5}.Validate()
	assert.ErrorIs(t, err, matching.ErrInvalidWeights)

	err = matching.Weights{Interest: 1.2, Bio: -0.2}.Validate()
	assert.ErrorIs(t, err, matching.ErrInvalidWeights)

	opts := matching.DefaultScorerOptions()
	opts.Weights = matching.Weights{Interest: 1}
	_, err = matching.NewScorer(matching.NewExtractor(nil, nil, nil), opts)
	assert.NoError(t, err)
}

func TestNewScorer_RejectsBadOptions(t *testing.T) {
	opts := matching.DefaultScorerOptions()
	opts.Weights = matching.Weights{Interest: 2}
	_, err := matching.NewScorer(nil, opts)
	assert.ErrorIs(t, err, matching.ErrInvalidWeights)

	opts = matching.DefaultScorerOptions()
	opts.InactiveCutoff = opts.RecentWindow
	_, err = matching.NewScorer(nil, opts)
	assert.Error(t, err)
}

func TestParseDistanceCap(t *testing.T) {
	c, err := matching.ParseDistanceCap("none")
	require.NoError(t, err)
	_, capped := c.Max()
	assert.False(t, capped)

	c, err = matching.ParseDistanceCap("75km")
	require.NoError(t, err)
	km, capped := c.Max()
	assert.True(t, capped)
	assert.Equal(t, 75.0, km)

	for _, bad := range []string{"-1", "0", "far", "NaN"} {
		_, err := matching.ParseDistanceCap(bad)
		assert.ErrorIs(t, err, matching.ErrInvalidDistanceCap, bad)
	}
}
