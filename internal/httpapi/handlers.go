package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	pb "github.com/oggyb/muzz-smartmatch/internal/api/smartmatchv1"
	svcErr "github.com/oggyb/muzz-smartmatch/internal/errors"
)

// Handler exposes the SmartMatch service as JSON over HTTP.
type Handler struct {
	svc pb.SmartMatchServiceServer
}

func NewHandler(svc pb.SmartMatchServiceServer) *Handler {
	return &Handler{svc: svc}
}

// GET /v1/users/:id/smart-matches?limit=N
func (h *Handler) GetSmartMatches(c *gin.Context) {
	limit, ok := queryInt32(c, "limit")
	if !ok {
		return
	}
	resp, err := h.svc.GetSmartMatches(c.Request.Context(), &pb.GetSmartMatchesRequest{
		UserId: c.Param("id"),
		Limit:  limit,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, resp)
}

// POST /v1/users/:id/scores/refresh?limit=N
func (h *Handler) RefreshScores(c *gin.Context) {
	limit, ok := queryInt32(c, "limit")
	if !ok {
		return
	}
	resp, err := h.svc.RefreshScores(c.Request.Context(), &pb.RefreshScoresRequest{
		UserId: c.Param("id"),
		Limit:  limit,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, resp)
}

// GET /v1/users/:id/scores?page_size=N&pagination_token=T
func (h *Handler) ListStoredScores(c *gin.Context) {
	pageSize, ok := queryInt32(c, "page_size")
	if !ok {
		return
	}
	resp, err := h.svc.ListStoredScores(c.Request.Context(), &pb.ListStoredScoresRequest{
		UserId:          c.Param("id"),
		PageSize:        pageSize,
		PaginationToken: c.Query("pagination_token"),
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, resp)
}

// POST /v1/users/:id/activity
func (h *Handler) RecordActivity(c *gin.Context) {
	if _, err := h.svc.RecordActivity(c.Request.Context(), &pb.RecordActivityRequest{UserId: c.Param("id")}); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// queryInt32 reads an optional integer query parameter. On a bad value it
// writes a 400 and returns ok=false.
func queryInt32(c *gin.Context, key string) (int32, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		RespondError(c, svcErr.InvalidArgument(key+" must be an integer"))
		return 0, false
	}
	return int32(n), true
}
