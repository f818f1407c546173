package smartmatch

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	pb "github.com/oggyb/muzz-smartmatch/internal/api/smartmatchv1"
	"github.com/oggyb/muzz-smartmatch/internal/app"
	svcErr "github.com/oggyb/muzz-smartmatch/internal/errors"
	"github.com/oggyb/muzz-smartmatch/internal/matching"
	"github.com/oggyb/muzz-smartmatch/internal/messaging"
	"github.com/oggyb/muzz-smartmatch/internal/repository"
)

// Stored score listing page sizes.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Service implements the SmartMatch gRPC API.
// It contains the request handling on top of the matching engine, the
// repositories and the Redis presence cache.
type Service struct {
	appCtx *app.AppContext
	log    *slog.Logger

	users  *repository.UserRepository
	scores *repository.ScoreRepository
	ranker *matching.Ranker

	now func() time.Time

	pb.UnimplementedSmartMatchServiceServer
}

// NewSmartMatchService wires the matching engine from AppContext.
// Dependencies include:
//   - DB connection (users, candidate pool, stored scores)
//   - RedisCache for presence and the refresh cooldown (optional)
//   - NATS for refresh hand-off; without it refreshes run in-process
func NewSmartMatchService(appCtx *app.AppContext) (*Service, error) {
	mc := appCtx.Config.Matching
	log := appCtx.Logger.With("component", "smartmatch")

	opts, err := ScorerOptionsFromConfig(mc)
	if err != nil {
		return nil, err
	}

	s := &Service{
		appCtx: appCtx,
		log:    log,
		users:  repository.NewUserRepository(appCtx.DB),
		scores: repository.NewScoreRepository(appCtx.DB),
		now:    time.Now,
	}

	var (
		activity matching.ActivitySource
		locks    RefreshLocker
	)
	if appCtx.RedisCache != nil {
		activity = appCtx.RedisCache
		locks = appCtx.RedisCache
	}

	scorer, err := matching.NewScorer(matching.NewExtractor(s.users, activity, log), opts)
	if err != nil {
		return nil, fmt.Errorf("scorer: %w", err)
	}

	var dispatch Dispatcher
	if appCtx.NATS != nil {
		dispatch = NewNATSDispatcher(appCtx.NATS)
	} else {
		dispatch = DispatchFunc(func(ctx context.Context, req messaging.RefreshRequest) error {
			_, err := runRefresh(ctx, s.ranker, req)
			return err
		})
	}

	s.ranker = matching.NewRanker(matching.RankerConfig{
		Scorer:      scorer,
		Pool:        repository.NewCandidateRepository(appCtx.DB),
		Scores:      s.scores,
		Refresher:   NewRefresher(locks, dispatch, mc.RefreshCooldown, log),
		Logger:      log,
		ScoreTTL:    mc.ScoreTTL,
		PoolSize:    mc.PoolSize,
		Concurrency: mc.RefreshConcurrency,
	})
	return s, nil
}

// Ranker exposes the engine, e.g. for the NATS refresh worker.
func (s *Service) Ranker() *matching.Ranker { return s.ranker }

// Wait blocks until background refresh requests have finished dispatching.
func (s *Service) Wait() { s.ranker.Wait() }

// GetSmartMatches returns the user's candidates ranked by compatibility.
//
// Behavior:
//   - limit ≤ 0 → 20; anything above 50 is clamped.
//   - Unknown user → NotFound; pool failure → Unavailable.
//   - Stale or missing scores are served and refreshed in the background.
//
// Example:
//
//	svc.GetSmartMatches(ctx, &pb.GetSmartMatchesRequest{UserId: "42", Limit: 10})
func (s *Service) GetSmartMatches(ctx context.Context, req *pb.GetSmartMatchesRequest) (*pb.GetSmartMatchesResponse, error) {
	s.log.Debug("GetSmartMatches called", "user", req.GetUserId(), "limit", req.Limit)

	userID, err := parseUserID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	matches, err := s.ranker.GetSmartMatches(ctx, userID, int(req.Limit))
	if err != nil {
		s.log.Error("GetSmartMatches failed", "user_id", userID, "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.GetSmartMatchesResponse{Matches: make([]*pb.SmartMatch, 0, len(matches))}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, &pb.SmartMatch{
			CandidateId:      strconv.FormatUint(m.CandidateID, 10),
			OverallScore:     m.Overall,
			InterestScore:    m.SubScores.Interest,
			BioScore:         m.SubScores.Bio,
			LocationScore:    m.SubScores.Location,
			ActivityScore:    m.SubScores.Activity,
			ComputedAtUnixMs: m.ComputedAt.UnixMilli(),
			Source:           string(m.Source),
		})
	}

	s.log.Debug("GetSmartMatches result", "user_id", userID, "count", len(resp.Matches))
	return resp, nil
}

// RefreshScores recomputes and stores scores for up to limit candidates.
//
// Behavior:
//   - limit ≤ 0 → 50; anything above 100 is clamped.
//   - Candidates that fail are skipped and reported in Skipped.
func (s *Service) RefreshScores(ctx context.Context, req *pb.RefreshScoresRequest) (*pb.RefreshScoresResponse, error) {
	s.log.Debug("RefreshScores called", "user", req.GetUserId(), "limit", req.Limit)

	userID, err := parseUserID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	res, err := s.ranker.CalculateAndStoreScores(ctx, userID, int(req.Limit))
	if err != nil {
		s.log.Error("RefreshScores failed", "user_id", userID, "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.RefreshScoresResponse{
		RunId:   res.RunID,
		Stored:  make([]*pb.StoredScore, 0, len(res.Stored)),
		Skipped: int32(res.Skipped),
	}
	for _, sc := range res.Stored {
		resp.Stored = append(resp.Stored, toStoredScore(sc))
	}
	return resp, nil
}

// ListStoredScores pages through persisted scores, best first.
//
// Behavior:
//   - Ordered by overall DESC, target ASC.
//   - page_size ≤ 0 → 20; capped at 100.
//   - Invalid pagination_token → InvalidArgument.
func (s *Service) ListStoredScores(ctx context.Context, req *pb.ListStoredScoresRequest) (*pb.ListStoredScoresResponse, error) {
	s.log.Debug("ListStoredScores called", "user", req.GetUserId(), "token", req.PaginationToken)

	userID, err := parseUserID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	pageSize := matching.ClampLimit(int(req.PageSize), DefaultPageSize, MaxPageSize)
	scores, next, err := s.scores.ListScores(ctx, userID, req.PaginationToken, pageSize)
	if err != nil {
		s.log.Error("ListScores failed", "user_id", userID, "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListStoredScoresResponse{
		Scores:              make([]*pb.StoredScore, 0, len(scores)),
		NextPaginationToken: next,
	}
	for _, sc := range scores {
		resp.Scores = append(resp.Scores, toStoredScore(sc))
	}
	return resp, nil
}

// RecordActivity marks the user active now.
//
// Behavior:
//   - users.last_active_at is updated first; unknown user → NotFound.
//   - The Redis heartbeat is best effort; its failures are logged only.
func (s *Service) RecordActivity(ctx context.Context, req *pb.RecordActivityRequest) (*pb.RecordActivityResponse, error) {
	userID, err := parseUserID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if err := s.users.TouchActivity(ctx, userID, now); err != nil {
		return nil, svcErr.Map(err)
	}

	if s.appCtx.RedisCache != nil {
		if err := s.appCtx.RedisCache.TouchActivity(ctx, userID, now); err != nil {
			s.log.Warn("presence update failed", "user_id", userID, "err", err)
		}
	}
	return &pb.RecordActivityResponse{}, nil
}

func parseUserID(field, raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, svcErr.InvalidArgument(field + " must be a positive integer")
	}
	return id, nil
}

func toStoredScore(sc matching.Score) *pb.StoredScore {
	return &pb.StoredScore{
		TargetUserId:     strconv.FormatUint(sc.TargetUserID, 10),
		OverallScore:     sc.Overall,
		InterestScore:    sc.Interest,
		BioScore:         sc.Bio,
		LocationScore:    sc.Location,
		ActivityScore:    sc.Activity,
		ComputedAtUnixMs: sc.ComputedAt.UnixMilli(),
	}
}
