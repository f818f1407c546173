package matching

import "errors"

var (
	// ErrUserNotFound is returned when a user ID does not resolve to a profile.
	// It is fatal for the requesting user and a skip for a candidate.
	ErrUserNotFound = errors.New("matching: user not found")

	// ErrPoolUnavailable wraps any failure of the candidate pool provider.
	// Callers should retry; it is never reported as an empty result.
	ErrPoolUnavailable = errors.New("matching: candidate pool unavailable")

	// ErrInvalidWeights is returned when the sub-score weights are negative
	// or do not sum to 1.
	ErrInvalidWeights = errors.New("matching: invalid weights")

	// ErrInvalidDistanceCap is returned for unparsable or non-positive caps.
	ErrInvalidDistanceCap = errors.New("matching: invalid distance cap")
)
