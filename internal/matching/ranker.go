package matching

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/oggyb/muzz-smartmatch/internal/logger"
	"github.com/oggyb/muzz-smartmatch/internal/metrics"
)

// Hard caps on per-call work. Caller-supplied limits are clamped silently.
const (
	DefaultSmartMatchLimit = 20
	MaxSmartMatchLimit     = 50

	DefaultRefreshLimit = 50
	MaxRefreshLimit     = 100
)

// CandidatePool lists user IDs eligible for matching with userID, at most
// limit of them. Eligibility policy belongs to the implementation.
type CandidatePool interface {
	Candidates(ctx context.Context, userID uint64, limit int) ([]uint64, error)
}

// ScoreStore persists directional scores. UpsertScore must be atomic per
// (UserID, TargetUserID) row.
type ScoreStore interface {
	GetScores(ctx context.Context, userID uint64, targetIDs []uint64) (map[uint64]Score, error)
	UpsertScore(ctx context.Context, s Score) error
}

// RefreshRequester schedules a background refresh of userID's scores for
// targetIDs, the candidates the read path found missing or stale.
type RefreshRequester interface {
	RequestRefresh(ctx context.Context, userID uint64, targetIDs []uint64) error
}

// RankerConfig wires a Ranker. Refresher and Now are optional.
type RankerConfig struct {
	Scorer    *Scorer
	Pool      CandidatePool
	Scores    ScoreStore
	Refresher RefreshRequester
	Logger    *slog.Logger

	ScoreTTL       time.Duration
	PoolSize       int
	Concurrency    int
	RefreshTimeout time.Duration
	Now            func() time.Time
}

// Ranker serves ranked smart matches and refreshes stored scores.
type Ranker struct {
	scorer    *Scorer
	pool      CandidatePool
	scores    ScoreStore
	refresher RefreshRequester
	log       *slog.Logger

	ttl            time.Duration
	poolSize       int
	concurrency    int
	refreshTimeout time.Duration
	now            func() time.Time

	wg sync.WaitGroup
}

// NewRanker applies defaults to cfg and returns a Ranker.
func NewRanker(cfg RankerConfig) *Ranker {
	r := &Ranker{
		scorer:         cfg.Scorer,
		pool:           cfg.Pool,
		scores:         cfg.Scores,
		refresher:      cfg.Refresher,
		log:            cfg.Logger,
		ttl:            cfg.ScoreTTL,
		poolSize:       cfg.PoolSize,
		concurrency:    cfg.Concurrency,
		refreshTimeout: cfg.RefreshTimeout,
		now:            cfg.Now,
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	if r.poolSize <= 0 {
		r.poolSize = 500
	}
	if r.concurrency <= 0 {
		r.concurrency = 8
	}
	if r.refreshTimeout <= 0 {
		r.refreshTimeout = 5 * time.Second
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// ClampLimit maps non-positive limits to def and caps the rest at hardMax.
func ClampLimit(limit, def, hardMax int) int {
	if limit <= 0 {
		limit = def
	}
	return min(limit, hardMax)
}

// GetSmartMatches ranks userID's candidate pool by overall score.
//
// Behavior:
//   - Stored fresh scores are served as-is; stale ones are served and trigger
//     a background refresh.
//   - Candidates without a stored score are scored on the fly (not persisted)
//     and also trigger a refresh.
//   - Candidates that cannot be scored are skipped.
//   - Sorted by overall DESC, candidate ID ASC; at most limit results.
//
// An empty pool returns an empty slice and no error.
func (r *Ranker) GetSmartMatches(ctx context.Context, userID uint64, limit int) ([]Match, error) {
	log := logger.FromContext(ctx, r.log)
	limit = ClampLimit(limit, DefaultSmartMatchLimit, MaxSmartMatchLimit)
	now := r.now()

	user, err := r.scorer.extractor.Extract(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids, err := r.pool.Candidates(ctx, userID, r.poolSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPoolUnavailable, err)
	}
	ids = slices.DeleteFunc(ids, func(id uint64) bool { return id == userID })
	if len(ids) == 0 {
		return []Match{}, nil
	}

	stored, err := r.scores.GetScores(ctx, userID, ids)
	if err != nil {
		// scores are a cache; a failing lookup degrades to a full miss
		log.Warn("stored score lookup failed, computing on the fly", "user_id", userID, "err", err)
		stored = nil
	}

	matches := make([]Match, 0, len(ids))
	var missing, stale []uint64
	for _, id := range ids {
		s, ok := stored[id]
		switch {
		case !ok:
			metrics.ScoreLookups.WithLabelValues(metrics.LookupMiss).Inc()
			missing = append(missing, id)
		case s.IsStale(now, r.ttl):
			metrics.ScoreLookups.WithLabelValues(metrics.LookupStale).Inc()
			matches = append(matches, matchFromScore(s, SourceStale))
			stale = append(stale, id)
		default:
			metrics.ScoreLookups.WithLabelValues(metrics.LookupHit).Inc()
			matches = append(matches, matchFromScore(s, SourceStored))
		}
	}

	if len(missing) > 0 {
		computed, skipped := r.scoreOnTheFly(ctx, log, user, missing, now)
		matches = append(matches, computed...)
		if skipped > 0 {
			log.Warn("candidates skipped on read path", "user_id", userID, "skipped", skipped)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if targets := append(missing, stale...); len(targets) > 0 {
		r.requestRefresh(ctx, log, userID, targets)
	}

	SortMatches(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	log.Debug("smart matches ranked",
		"user_id", userID,
		"pool", len(ids),
		"computed", len(missing),
		"returned", len(matches),
	)
	return matches, nil
}

// CalculateAndStoreScores scores up to limit candidates and upserts each
// row independently. A candidate that fails is skipped and counted; the batch
// carries on. On context cancellation the partial result is returned with the
// context error; rows already written stay valid.
func (r *Ranker) CalculateAndStoreScores(ctx context.Context, userID uint64, limit int) (*RefreshResult, error) {
	limit = ClampLimit(limit, DefaultRefreshLimit, MaxRefreshLimit)
	return r.refresh(ctx, userID, func(ctx context.Context) ([]uint64, error) {
		return r.pool.Candidates(ctx, userID, limit)
	})
}

// RefreshTargets scores and stores exactly targetIDs for userID, as reported
// missing or stale by the read path. Duplicates and userID itself are
// dropped and at most PoolSize targets are scored. Failures are handled as in
// CalculateAndStoreScores.
func (r *Ranker) RefreshTargets(ctx context.Context, userID uint64, targetIDs []uint64) (*RefreshResult, error) {
	return r.refresh(ctx, userID, func(context.Context) ([]uint64, error) {
		ids := slices.Clone(targetIDs)
		slices.Sort(ids)
		ids = slices.Compact(ids)
		ids = slices.DeleteFunc(ids, func(id uint64) bool { return id == 0 || id == userID })
		if len(ids) > r.poolSize {
			ids = ids[:r.poolSize]
		}
		return ids, nil
	})
}

func (r *Ranker) refresh(ctx context.Context, userID uint64, candidates func(context.Context) ([]uint64, error)) (*RefreshResult, error) {
	started := time.Now()
	defer func() { metrics.RefreshDuration.Observe(time.Since(started).Seconds()) }()

	now := r.now()
	runID := uuid.NewString()
	log := logger.FromContext(ctx, r.log).With("run_id", runID, "user_id", userID)

	user, err := r.scorer.extractor.Extract(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids, err := candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPoolUnavailable, err)
	}

	res := &RefreshResult{
		RunID:  runID,
		UserID: userID,
		Stored: make([]Score, 0, len(ids)),
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(r.concurrency)

	skip := func(candidateID uint64, err error) {
		metrics.CandidatesSkipped.WithLabelValues(metrics.PathRefresh).Inc()
		log.Warn("skipping candidate", "candidate_id", candidateID, "err", err)
		mu.Lock()
		res.Skipped++
		mu.Unlock()
	}

	for _, id := range ids {
		if id == userID {
			continue
		}
		id := id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				skip(id, err)
				return nil
			}
			candidate, err := r.scorer.extractor.Extract(ctx, id)
			if err != nil {
				skip(id, err)
				return nil
			}
			score := r.scorer.ScoreSignals(user, candidate, now)
			if err := r.scores.UpsertScore(ctx, score); err != nil {
				skip(id, fmt.Errorf("upsert: %w", err))
				return nil
			}
			metrics.ScoresComputed.WithLabelValues(metrics.PathRefresh).Inc()

			mu.Lock()
			res.Stored = append(res.Stored, score)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	log.Info("scores refreshed", "stored", len(res.Stored), "skipped", res.Skipped, "took", time.Since(started))

	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// Wait blocks until in-flight refresh requests have been dispatched.
func (r *Ranker) Wait() { r.wg.Wait() }

func (r *Ranker) scoreOnTheFly(ctx context.Context, log *slog.Logger, user UserSignal, ids []uint64, now time.Time) ([]Match, int) {
	var (
		mu      sync.Mutex
		g       errgroup.Group
		out     = make([]Match, 0, len(ids))
		skipped int
	)
	g.SetLimit(r.concurrency)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			candidate, err := r.scorer.extractor.Extract(ctx, id)
			if err != nil {
				metrics.CandidatesSkipped.WithLabelValues(metrics.PathRead).Inc()
				log.Debug("cannot score candidate on the fly", "candidate_id", id, "err", err)
				mu.Lock()
				skipped++
				mu.Unlock()
				return nil
			}
			s := r.scorer.ScoreSignals(user, candidate, now)
			metrics.ScoresComputed.WithLabelValues(metrics.PathRead).Inc()

			mu.Lock()
			out = append(out, matchFromScore(s, SourceComputed))
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out, skipped
}

// requestRefresh fires a refresh request without blocking the caller.
func (r *Ranker) requestRefresh(ctx context.Context, log *slog.Logger, userID uint64, targetIDs []uint64) {
	if r.refresher == nil {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.refreshTimeout)
		defer cancel()
		if err := r.refresher.RequestRefresh(rctx, userID, targetIDs); err != nil {
			metrics.RefreshRequests.WithLabelValues("failed").Inc()
			log.Warn("refresh request failed", "user_id", userID, "err", err)
		}
	}()
}

func matchFromScore(s Score, src Source) Match {
	return Match{
		CandidateID: s.TargetUserID,
		Overall:     s.Overall,
		SubScores:   s.SubScores,
		ComputedAt:  s.ComputedAt,
		Source:      src,
	}
}

// SortMatches orders by overall score descending, then candidate ID ascending.
func SortMatches(m []Match) {
	slices.SortFunc(m, func(a, b Match) int {
		if c := cmp.Compare(b.Overall, a.Overall); c != 0 {
			return c
		}
		return cmp.Compare(a.CandidateID, b.CandidateID)
	})
}
