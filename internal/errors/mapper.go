// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/oggyb/muzz-smartmatch/internal/matching"
	"github.com/oggyb/muzz-smartmatch/internal/utils/pagination"
)

// StatusClientClosedRequest is the non-standard 499 used when the caller
// went away before the response was written.
const StatusClientClosedRequest = 499

// Map converts domain/repo/infra errors into gRPC-friendly status errors.
// Keeps service layer clean by centralizing error mapping.
// Errors that already carry a gRPC status are returned unchanged.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, matching.ErrUserNotFound):
		return status.Error(codes.NotFound, "user not found")

	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "record not found")

	case errors.Is(err, matching.ErrPoolUnavailable):
		// retryable: the caller must not read this as "no matches"
		return status.Error(codes.Unavailable, "candidate pool unavailable")

	case errors.Is(err, pagination.ErrInvalidToken):
		return status.Error(codes.InvalidArgument, "invalid pagination token")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	default:
		// fallback → bubble up error message for debugging
		return status.Error(codes.Internal, err.Error())
	}
}

// HTTPStatus maps err to an HTTP status code and a client-facing message,
// going through Map so both transports agree.
func HTTPStatus(err error) (int, string) {
	st := status.Convert(Map(err))
	return HTTPStatusFromCode(st.Code()), st.Message()
}

// HTTPStatusFromCode translates the gRPC codes this service emits.
func HTTPStatusFromCode(c codes.Code) int {
	switch c {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.Canceled:
		return StatusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

// InvalidArgument creates a gRPC InvalidArgument error.
// Use this in service layer for bad input validation.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}
