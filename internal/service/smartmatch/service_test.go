package smartmatch_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	pb "github.com/oggyb/muzz-smartmatch/internal/api/smartmatchv1"
	"github.com/oggyb/muzz-smartmatch/internal/app"
	"github.com/oggyb/muzz-smartmatch/internal/cache"
	"github.com/oggyb/muzz-smartmatch/internal/config"
	"github.com/oggyb/muzz-smartmatch/internal/db"
	"github.com/oggyb/muzz-smartmatch/internal/logger"
	"github.com/oggyb/muzz-smartmatch/internal/server"
	"github.com/oggyb/muzz-smartmatch/internal/service/smartmatch"
)

//
// Test helpers
//

func ptr[T any](v T) *T { return &v }

// seedProfiles wipes the DB and inserts a small, deterministic dataset.
//
// Dataset (from user 1's point of view):
//   - user2: same interests, same bio, same spot, active now → best match
//   - user3: nothing in common, no bio, no location, never active → worst
//   - user4: one shared interest, 260 km away (past the cap), active 2 days ago
//   - user5: blocked by user 1 → excluded
//   - user6: already liked by user 1 → excluded
func seedProfiles(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	now := time.Now().UTC()
	bio := "Weekend hiker who reads mountain novels"
	users := []db.User{
		{ID: 1, Interests: "hiking,reading", Bio: bio, Latitude: ptr(51.5074), Longitude: ptr(-0.1278), LastActiveAt: &now},
		{ID: 2, Interests: "Reading, hiking", Bio: bio, Latitude: ptr(51.5074), Longitude: ptr(-0.1278), LastActiveAt: &now},
		{ID: 3, Interests: "gaming"},
		{ID: 4, Interests: "hiking", Latitude: ptr(53.4808), Longitude: ptr(-2.2426), LastActiveAt: ptr(now.Add(-48 * time.Hour))},
		{ID: 5, Interests: "hiking,reading", LastActiveAt: &now},
		{ID: 6, Interests: "hiking,reading", LastActiveAt: &now},
	}
	for i := range users {
		u := &users[i]
		u.Username = fmt.Sprintf("user%d", u.ID)
		u.Email = u.Username + "@test.com"
		u.PasswordHash = "x"
		u.Gender = "female"
		u.Active = true
	}
	require.NoError(t, gdb.Create(&users).Error)
	require.NoError(t, gdb.Create(&db.Block{BlockerID: 1, BlockedID: 5}).Error)
	require.NoError(t, gdb.Create(&db.Decision{ActorID: 1, RecipientID: 6, Liked: true}).Error)
}

type fixture struct {
	svc *smartmatch.Service
	db  *gorm.DB
	mr  *miniredis.Miniredis
}

// setupService spins up an in-memory SQLite DB, applies migrations,
// seeds test data, starts a miniredis, and wires everything into a
// SmartMatch Service with in-process refreshes.
//
// Each test gets its own isolated DB + Redis.
func setupService(t *testing.T) fixture {
	t.Helper()

	// In-memory SQLite, single connection so every query sees the same db
	dbase, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  gormlogger.Discard,
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	require.NoError(t, err)
	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(dbase))
	seedProfiles(t, dbase)

	// Fake Redis
	mr := miniredis.RunT(t)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	cfg.NATS.URL = ""

	redisCache := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = redisCache.Close() })

	appCtx := app.New(cfg, dbase, redisCache, nil, logger.Discard())
	svc, err := smartmatch.NewSmartMatchService(appCtx)
	require.NoError(t, err)
	t.Cleanup(svc.Wait)

	return fixture{svc: svc, db: dbase, mr: mr}
}

func candidateIDs(matches []*pb.SmartMatch) []string {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.CandidateId)
	}
	return ids
}

func storedCount(t *testing.T, gdb *gorm.DB, userID uint64) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(&db.CompatibilityScore{}).Where("user_id = ?", userID).Count(&n).Error)
	return n
}

//
// Tests
//

// TestGetSmartMatches_ComputesThenServesStored checks the full read loop:
// the first call computes on the fly and schedules a refresh; once the
// refresh has run, the same ranking is served from stored scores.
func TestGetSmartMatches_ComputesThenServesStored(t *testing.T) {
	ctx := context.Background()
	f := setupService(t)

	first, err := f.svc.GetSmartMatches(ctx, &pb.GetSmartMatchesRequest{UserId: "1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "4", "3"}, candidateIDs(first.Matches))
	for _, m := range first.Matches {
		assert.Equal(t, "computed", m.Source)
	}
	assert.InDelta(t, 100.0, first.Matches[0].OverallScore, 0.01)
	assert.Equal(t, 0.0, first.Matches[1].LocationScore, "past the distance cap")
	assert.Equal(t, 0.0, first.Matches[2].OverallScore)

	f.svc.Wait()
	assert.Equal(t, int64(3), storedCount(t, f.db, 1))
	assert.True(t, f.mr.Exists("scores:refresh:1"))

	second, err := f.svc.GetSmartMatches(ctx, &pb.GetSmartMatchesRequest{UserId: "1"})
	require.NoError(t, err)
	assert.Equal(t, candidateIDs(first.Matches), candidateIDs(second.Matches))
	for i, m := range second.Matches {
		assert.Equal(t, "stored", m.Source)
		assert.InDelta(t, first.Matches[i].OverallScore, m.OverallScore, 0.01)
	}
}

// TestGetSmartMatches_StaleScoresDedupedRefresh serves stale rows and only
// refreshes them once the cooldown lock has expired.
func TestGetSmartMatches_StaleScoresDedupedRefresh(t *testing.T) {
	ctx := context.Background()
	f := setupService(t)

	_, err := f.svc.RefreshScores(ctx, &pb.RefreshScoresRequest{UserId: "1"})
	require.NoError(t, err)

	old := time.Now().UTC().Add(-48 * time.Hour)
	require.NoError(t, f.db.Model(&db.CompatibilityScore{}).Where("user_id = ?", 1).Update("computed_at", old).Error)

	// lock held by a recent refresh → stale rows stay stale
	require.NoError(t, f.mr.Set("scores:refresh:1", "1"))
	f.mr.SetTTL("scores:refresh:1", time.Minute)

	resp, err := f.svc.GetSmartMatches(ctx, &pb.GetSmartMatchesRequest{UserId: "1"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Matches)
	for _, m := range resp.Matches {
		assert.Equal(t, "stale", m.Source)
	}
	f.svc.Wait()

	var staleRows int64
	require.NoError(t, f.db.Model(&db.CompatibilityScore{}).Where("user_id = ? AND computed_at < ?", 1, old.Add(time.Minute)).Count(&staleRows).Error)
	assert.Equal(t, int64(3), staleRows, "refresh was deduplicated")

	// cooldown over → the next read refreshes
	f.mr.FastForward(2 * time.Minute)
	_, err = f.svc.GetSmartMatches(ctx, &pb.GetSmartMatchesRequest{UserId: "1"})
	require.NoError(t, err)
	f.svc.Wait()

	require.NoError(t, f.db.Model(&db.CompatibilityScore{}).Where("user_id = ? AND computed_at < ?", 1, old.Add(time.Minute)).Count(&staleRows).Error)
	assert.Equal(t, int64(0), staleRows)
}

func TestGetSmartMatches_Limit(t *testing.T) {
	f := setupService(t)

	resp, err := f.svc.GetSmartMatches(context.Background(), &pb.GetSmartMatchesRequest{UserId: "1", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, candidateIDs(resp.Matches))
}

func TestGetSmartMatches_Errors(t *testing.T) {
	ctx := context.Background()
	f := setupService(t)

	for _, id := range []string{"", "abc", "0", "-1"} {
		_, err := f.svc.GetSmartMatches(ctx, &pb.GetSmartMatchesRequest{UserId: id})
		assert.Equal(t, codes.InvalidArgument, status.Code(err), id)
	}

	_, err := f.svc.GetSmartMatches(ctx, &pb.GetSmartMatchesRequest{UserId: "99"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	// a broken pool query must not look like "no matches"
	require.NoError(t, f.db.Exec("DROP TABLE blocks").Error)
	_, err = f.svc.GetSmartMatches(ctx, &pb.GetSmartMatchesRequest{UserId: "1"})
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestGetSmartMatches_EmptyPool(t *testing.T) {
	ctx := context.Background()
	f := setupService(t)
	require.NoError(t, f.db.Model(&db.User{}).Where("id <> ?", 1).Update("active", false).Error)

	resp, err := f.svc.GetSmartMatches(ctx, &pb.GetSmartMatchesRequest{UserId: "1"})
	require.NoError(t, err)
	assert.NotNil(t, resp.Matches)
	assert.Empty(t, resp.Matches)
}

func TestRefreshScoresAndList(t *testing.T) {
	ctx := context.Background()
	f := setupService(t)

	refreshed, err := f.svc.RefreshScores(ctx, &pb.RefreshScoresRequest{UserId: "1"})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.RunId)
	assert.Len(t, refreshed.Stored, 3)
	assert.Equal(t, int32(0), refreshed.Skipped)

	page1, err := f.svc.ListStoredScores(ctx, &pb.ListStoredScoresRequest{UserId: "1", PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page1.Scores, 2)
	assert.Equal(t, "2", page1.Scores[0].TargetUserId)
	assert.NotEmpty(t, page1.NextPaginationToken)

	page2, err := f.svc.ListStoredScores(ctx, &pb.ListStoredScoresRequest{
		UserId: "1", PageSize: 2, PaginationToken: page1.NextPaginationToken,
	})
	require.NoError(t, err)
	require.Len(t, page2.Scores, 1)
	assert.Equal(t, "3", page2.Scores[0].TargetUserId)
	assert.Empty(t, page2.NextPaginationToken)

	_, err = f.svc.ListStoredScores(ctx, &pb.ListStoredScoresRequest{UserId: "1", PaginationToken: "garbage!"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = f.svc.RefreshScores(ctx, &pb.RefreshScoresRequest{UserId: "99"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestRecordActivity(t *testing.T) {
	ctx := context.Background()
	f := setupService(t)

	before := time.Now().UTC().Add(-time.Second)
	_, err := f.svc.RecordActivity(ctx, &pb.RecordActivityRequest{UserId: "3"})
	require.NoError(t, err)

	var u db.User
	require.NoError(t, f.db.First(&u, 3).Error)
	require.NotNil(t, u.LastActiveAt)
	assert.True(t, u.LastActiveAt.After(before))
	assert.True(t, f.mr.Exists("activity:last:3"))

	_, err = f.svc.RecordActivity(ctx, &pb.RecordActivityRequest{UserId: "99"})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.False(t, f.mr.Exists("activity:last:99"))
}

// TestGRPC_EndToEnd drives the service through a real gRPC server over bufconn.
func TestGRPC_EndToEnd(t *testing.T) {
	f := setupService(t)

	lis := bufconn.Listen(1 << 20)
	srv := server.NewGRPCServer(logger.Discard(), smartmatch.NewRegistrar(f.svc))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	client := pb.NewSmartMatchServiceClient(conn)

	resp, err := client.GetSmartMatches(context.Background(), &pb.GetSmartMatchesRequest{UserId: "1", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "4"}, candidateIDs(resp.Matches))

	_, err = client.GetSmartMatches(context.Background(), &pb.GetSmartMatchesRequest{UserId: "99"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

// TestGetSmartMatches_WarmsPoolBeyondOneBatch: a pool larger than one refresh
// batch is fully stored after the first read's background refresh, and the
// next read is served from storage.
func TestGetSmartMatches_WarmsPoolBeyondOneBatch(t *testing.T) {
	ctx := context.Background()
	f := setupService(t)

	now := time.Now().UTC()
	extra := make([]db.User, 0, 60)
	for i := 0; i < 60; i++ {
		id := uint64(100 + i)
		extra = append(extra, db.User{
			ID:           id,
			Username:     fmt.Sprintf("extra%d", id),
			Email:        fmt.Sprintf("extra%d@test.com", id),
			PasswordHash: "x",
			Gender:       "male",
			Interests:    "hiking",
			Active:       true,
			LastActiveAt: &now,
		})
	}
	require.NoError(t, f.db.Create(&extra).Error)
	pool := int64(3 + len(extra))

	first, err := f.svc.GetSmartMatches(ctx, &pb.GetSmartMatchesRequest{UserId: "1", Limit: 50})
	require.NoError(t, err)
	require.Len(t, first.Matches, 50)
	f.svc.Wait()
	assert.Equal(t, pool, storedCount(t, f.db, 1), "every candidate the read found missing is stored")

	second, err := f.svc.GetSmartMatches(ctx, &pb.GetSmartMatchesRequest{UserId: "1", Limit: 50})
	require.NoError(t, err)
	for _, m := range second.Matches {
		assert.Equal(t, "stored", m.Source, m.CandidateId)
	}
}
