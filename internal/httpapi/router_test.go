package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"

	pb "github.com/oggyb/muzz-smartmatch/internal/api/smartmatchv1"
	svcErr "github.com/oggyb/muzz-smartmatch/internal/errors"
	"github.com/oggyb/muzz-smartmatch/internal/logger"
	"github.com/oggyb/muzz-smartmatch/internal/matching"
)

type fakeService struct {
	pb.UnimplementedSmartMatchServiceServer
	lastMatchesReq *pb.GetSmartMatchesRequest
	lastListReq    *pb.ListStoredScoresRequest
	activity       []string
}

func (f *fakeService) GetSmartMatches(_ context.Context, req *pb.GetSmartMatchesRequest) (*pb.GetSmartMatchesResponse, error) {
	f.lastMatchesReq = req
	switch req.GetUserId() {
	case "404":
		return nil, svcErr.Map(fmt.Errorf("user 404: %w", matching.ErrUserNotFound))
	case "503":
		return nil, svcErr.Map(fmt.Errorf("%w: db down", matching.ErrPoolUnavailable))
	case "empty":
		return &pb.GetSmartMatchesResponse{Matches: []*pb.SmartMatch{}}, nil
	}
	return &pb.GetSmartMatchesResponse{Matches: []*pb.SmartMatch{{CandidateId: "2", OverallScore: 88.5, Source: "stored"}}}, nil
}

func (f *fakeService) RefreshScores(_ context.Context, req *pb.RefreshScoresRequest) (*pb.RefreshScoresResponse, error) {
	return &pb.RefreshScoresResponse{RunId: "run-1", Stored: []*pb.StoredScore{}, Skipped: 1}, nil
}

func (f *fakeService) ListStoredScores(_ context.Context, req *pb.ListStoredScoresRequest) (*pb.ListStoredScoresResponse, error) {
	f.lastListReq = req
	return &pb.ListStoredScoresResponse{Scores: []*pb.StoredScore{}, NextPaginationToken: "next"}, nil
}

func (f *fakeService) RecordActivity(_ context.Context, req *pb.RecordActivityRequest) (*pb.RecordActivityResponse, error) {
	f.activity = append(f.activity, req.GetUserId())
	return &pb.RecordActivityResponse{}, nil
}

func setupRouter(t *testing.T) (*gin.Engine, *fakeService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := &fakeService{}
	return NewRouter(RouterConfig{Handler: NewHandler(svc), Logger: logger.Discard()}), svc
}

func do(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestSmartMatchesRoute(t *testing.T) {
	r, svc := setupRouter(t)

	w := do(r, http.MethodGet, "/v1/users/1/smart-matches?limit=5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", svc.lastMatchesReq.UserId)
	assert.Equal(t, int32(5), svc.lastMatchesReq.Limit)

	var resp pb.GetSmartMatchesResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, 88.5, resp.Matches[0].OverallScore)
}

func TestSmartMatchesRoute_EmptyIsNotAnError(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(r, http.MethodGet, "/v1/users/empty/smart-matches")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"matches":[]}`, w.Body.String())
}

func TestErrorEnvelope(t *testing.T) {
	r, _ := setupRouter(t)

	cases := map[string]struct {
		status int
		code   string
	}{
		"/v1/users/404/smart-matches":         {http.StatusNotFound, "NotFound"},
		"/v1/users/503/smart-matches":         {http.StatusServiceUnavailable, "Unavailable"},
		"/v1/users/1/smart-matches?limit=ten": {http.StatusBadRequest, "InvalidArgument"},
	}
	for target, want := range cases {
		w := do(r, http.MethodGet, target)
		assert.Equal(t, want.status, w.Code, target)

		var env ErrorEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), target)
		assert.Equal(t, want.code, env.Error.Code, target)
		assert.NotEmpty(t, env.Error.Message, target)
	}
}

func TestScoresRoutes(t *testing.T) {
	r, svc := setupRouter(t)

	w := do(r, http.MethodPost, "/v1/users/3/scores/refresh?limit=70")
	require.Equal(t, http.StatusOK, w.Code)
	var refreshed pb.RefreshScoresResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &refreshed))
	assert.Equal(t, "run-1", refreshed.RunId)
	assert.Equal(t, int32(1), refreshed.Skipped)

	w = do(r, http.MethodGet, "/v1/users/3/scores?page_size=10&pagination_token=abc")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(10), svc.lastListReq.PageSize)
	assert.Equal(t, "abc", svc.lastListReq.PaginationToken)
	var listed pb.ListStoredScoresResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &listed))
	assert.Equal(t, "next", listed.NextPaginationToken)
	assert.JSONEq(t, `{"scores":[],"next_pagination_token":"next"}`, w.Body.String())
}

func TestActivityRoute(t *testing.T) {
	r, svc := setupRouter(t)

	w := do(r, http.MethodPost, "/v1/users/9/activity")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"9"}, svc.activity)
}

func TestOpsRoutes(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(r, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	w = do(r, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "smartmatch_"), "custom collectors are exposed")
}
