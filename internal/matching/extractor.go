package matching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// SignalStore returns raw profile fields for a user. It must return
// ErrUserNotFound (possibly wrapped) when the user does not exist.
type SignalStore interface {
	RawProfile(ctx context.Context, userID uint64) (RawProfile, error)
}

// ActivitySource reports presence-based activity, e.g. a Redis heartbeat.
// ok is false when nothing is recorded.
type ActivitySource interface {
	LastActivity(ctx context.Context, userID uint64) (at time.Time, ok bool, err error)
}

// Extractor builds UserSignals. Incomplete profiles are not errors.
type Extractor struct {
	store    SignalStore
	activity ActivitySource
	log      *slog.Logger
}

// NewExtractor wires a signal store and an optional activity source.
func NewExtractor(store SignalStore, activity ActivitySource, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{store: store, activity: activity, log: log}
}

// Extract returns the signal for userID. The activity source only ever
// moves LastActiveAt forward; its failures are logged and ignored.
func (e *Extractor) Extract(ctx context.Context, userID uint64) (UserSignal, error) {
	raw, err := e.store.RawProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return UserSignal{}, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
		}
		return UserSignal{}, fmt.Errorf("load profile %d: %w", userID, err)
	}
	raw.UserID = userID
	sig := signalFromProfile(raw)

	if e.activity != nil {
		at, ok, err := e.activity.LastActivity(ctx, userID)
		switch {
		case err != nil:
			e.log.Debug("activity lookup failed, using stored timestamp", "user_id", userID, "err", err)
		case ok && (sig.LastActiveAt == nil || at.After(*sig.LastActiveAt)):
			at = at.UTC()
			sig.LastActiveAt = &at
		}
	}
	return sig, nil
}
