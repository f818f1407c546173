package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshRequest_EncodeDecode(t *testing.T) {
	req := NewRefreshRequest(42, 30)
	assert.NotEmpty(t, req.RequestID)
	assert.False(t, req.RequestedAt.IsZero())

	data, err := req.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"user_id":42`)

	got, err := DecodeRefreshRequest(data)
	require.NoError(t, err)
	assert.Equal(t, req.RequestID, got.RequestID)
	assert.Equal(t, uint64(42), got.UserID)
	assert.Equal(t, 30, got.Limit)
	assert.True(t, req.RequestedAt.Equal(got.RequestedAt))
}

func TestDecodeRefreshRequest_Malformed(t *testing.T) {
	for _, payload := range []string{``, `not json`, `{"user_id":"seven"}`, `{"limit":10}`} {
		_, err := DecodeRefreshRequest([]byte(payload))
		assert.ErrorIs(t, err, ErrInvalidRefreshRequest, payload)
	}
}
