package smartmatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/oggyb/muzz-smartmatch/internal/matching"
	"github.com/oggyb/muzz-smartmatch/internal/messaging"
)

// BatchRefresher runs one refresh batch; *matching.Ranker implements it.
type BatchRefresher interface {
	CalculateAndStoreScores(ctx context.Context, userID uint64, limit int) (*matching.RefreshResult, error)
	RefreshTargets(ctx context.Context, userID uint64, targetIDs []uint64) (*matching.RefreshResult, error)
}

// QueueSubscriber is the part of the NATS client the worker needs.
type QueueSubscriber interface {
	QueueSubscribe(subject, queue string, handler func(data []byte)) error
}

// RefreshWorker consumes refresh requests from NATS and stores fresh scores.
type RefreshWorker struct {
	refresher BatchRefresher
	timeout   time.Duration
	log       *slog.Logger
}

// NewRefreshWorker returns a worker bounding every batch by timeout.
func NewRefreshWorker(refresher BatchRefresher, timeout time.Duration, log *slog.Logger) *RefreshWorker {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &RefreshWorker{refresher: refresher, timeout: timeout, log: log.With("component", "refresh-worker")}
}

// Start joins the refresher queue group.
func (w *RefreshWorker) Start(sub QueueSubscriber) error {
	w.log.Info("subscribing", "subject", messaging.SubjectScoresRefresh, "queue", messaging.QueueScoreRefreshers)
	return sub.QueueSubscribe(messaging.SubjectScoresRefresh, messaging.QueueScoreRefreshers, w.Handle)
}

// Handle processes a single payload. Malformed payloads are logged and
// dropped; batch errors are logged.
func (w *RefreshWorker) Handle(data []byte) {
	req, err := messaging.DecodeRefreshRequest(data)
	if err != nil {
		w.log.Warn("dropping refresh request", "err", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	res, err := runRefresh(ctx, w.refresher, req)
	if err != nil {
		w.log.Error("refresh failed", "request_id", req.RequestID, "user_id", req.UserID, "err", err)
		return
	}
	w.log.Info("refresh done",
		"request_id", req.RequestID,
		"run_id", res.RunID,
		"user_id", req.UserID,
		"targets", len(req.TargetIDs),
		"stored", len(res.Stored),
		"skipped", res.Skipped,
		"lag", time.Since(req.RequestedAt),
	)
}
