package smartmatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oggyb/muzz-smartmatch/internal/matching"
	"github.com/oggyb/muzz-smartmatch/internal/messaging"
	"github.com/oggyb/muzz-smartmatch/internal/metrics"
)

// Dispatcher hands a refresh request to whatever runs it.
type Dispatcher interface {
	Dispatch(ctx context.Context, req messaging.RefreshRequest) error
}

// DispatchFunc adapts a function to Dispatcher.
type DispatchFunc func(ctx context.Context, req messaging.RefreshRequest) error

func (f DispatchFunc) Dispatch(ctx context.Context, req messaging.RefreshRequest) error {
	return f(ctx, req)
}

// Publisher is the part of the NATS client the dispatcher needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSDispatcher publishes refresh requests for the refresher workers.
type NATSDispatcher struct {
	pub Publisher
}

func NewNATSDispatcher(pub Publisher) *NATSDispatcher {
	return &NATSDispatcher{pub: pub}
}

func (d *NATSDispatcher) Dispatch(_ context.Context, req messaging.RefreshRequest) error {
	data, err := req.Encode()
	if err != nil {
		return err
	}
	if err := d.pub.Publish(messaging.SubjectScoresRefresh, data); err != nil {
		return fmt.Errorf("publish %s: %w", messaging.SubjectScoresRefresh, err)
	}
	return nil
}

const releaseTimeout = 2 * time.Second

// RefreshLocker is the cooldown lock implemented by cache.RedisCache.
type RefreshLocker interface {
	TryLockRefresh(ctx context.Context, userID uint64, ttl time.Duration) (bool, error)
	ReleaseRefresh(ctx context.Context, userID uint64) error
}

// Refresher is the read path's matching.RefreshRequester. It drops requests
// for users refreshed within the cooldown and dispatches the rest.
type Refresher struct {
	locks    RefreshLocker
	dispatch Dispatcher
	cooldown time.Duration
	log      *slog.Logger
}

// NewRefresher wires a dispatcher behind an optional cooldown lock.
// A nil locker or a non-positive cooldown disables de-duplication.
func NewRefresher(locks RefreshLocker, dispatch Dispatcher, cooldown time.Duration, log *slog.Logger) *Refresher {
	if log == nil {
		log = slog.Default()
	}
	return &Refresher{locks: locks, dispatch: dispatch, cooldown: cooldown, log: log}
}

// RequestRefresh implements matching.RefreshRequester. A request with
// targetIDs refreshes exactly those candidates; without, the next batch of
// the pool.
func (r *Refresher) RequestRefresh(ctx context.Context, userID uint64, targetIDs []uint64) error {
	locked := false
	if r.locks != nil && r.cooldown > 0 {
		ok, err := r.locks.TryLockRefresh(ctx, userID, r.cooldown)
		switch {
		case err != nil:
			// lock store down: fall through and refresh
			r.log.Warn("refresh lock unavailable", "user_id", userID, "err", err)
		case !ok:
			metrics.RefreshRequests.WithLabelValues("deduped").Inc()
			r.log.Debug("refresh deduplicated", "user_id", userID)
			return nil
		default:
			locked = true
		}
	}

	req := messaging.NewRefreshRequest(userID, 0) // default batch size
	req.TargetIDs = targetIDs
	if err := r.dispatch.Dispatch(ctx, req); err != nil {
		if locked {
			r.release(ctx, userID)
		}
		return err
	}

	metrics.RefreshRequests.WithLabelValues("published").Inc()
	r.log.Debug("refresh dispatched", "user_id", userID, "request_id", req.RequestID, "targets", len(targetIDs))
	return nil
}

// release drops the cooldown lock after a failed dispatch. It runs on its own
// deadline since ctx is often the one that just expired.
func (r *Refresher) release(ctx context.Context, userID uint64) {
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()
	if err := r.locks.ReleaseRefresh(rctx, userID); err != nil {
		r.log.Warn("release refresh lock", "user_id", userID, "err", err)
	}
}

// runRefresh executes req against b: its targets when it names any, the next
// pool batch otherwise.
func runRefresh(ctx context.Context, b BatchRefresher, req messaging.RefreshRequest) (*matching.RefreshResult, error) {
	if len(req.TargetIDs) > 0 {
		return b.RefreshTargets(ctx, req.UserID, req.TargetIDs)
	}
	return b.CalculateAndStoreScores(ctx, req.UserID, req.Limit)
}
