package messaging

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidRefreshRequest is returned for payloads a worker cannot act on.
var ErrInvalidRefreshRequest = errors.New("invalid refresh request")

// RefreshRequest is the payload published on SubjectScoresRefresh.
// When TargetIDs is set exactly those candidates are refreshed and Limit is
// ignored; otherwise the next pool batch is, and a zero Limit means the
// refresh default.
type RefreshRequest struct {
	RequestID   string    `json:"request_id"`
	UserID      uint64    `json:"user_id"`
	Limit       int       `json:"limit,omitempty"`
	TargetIDs   []uint64  `json:"target_ids,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

// NewRefreshRequest stamps a request with a fresh ID and the current time.
func NewRefreshRequest(userID uint64, limit int) RefreshRequest {
	return RefreshRequest{
		RequestID:   uuid.NewString(),
		UserID:      userID,
		Limit:       limit,
		RequestedAt: time.Now().UTC(),
	}
}

// Encode marshals the request for publishing.
func (r RefreshRequest) Encode() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("messaging: marshal refresh request: %w", err)
	}
	return data, nil
}

// DecodeRefreshRequest parses and validates a refresh payload.
func DecodeRefreshRequest(data []byte) (RefreshRequest, error) {
	var r RefreshRequest
	if err := json.Unmarshal(data, &r); err != nil {
		return RefreshRequest{}, fmt.Errorf("%w: %w", ErrInvalidRefreshRequest, err)
	}
	if r.UserID == 0 {
		return RefreshRequest{}, fmt.Errorf("%w: missing user_id", ErrInvalidRefreshRequest)
	}
	return r, nil
}
