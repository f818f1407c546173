package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/oggyb/muzz-smartmatch/internal/logger"
	"github.com/oggyb/muzz-smartmatch/internal/metrics"
)

// LoggingInterceptor logs every unary call and puts a per-call logger into
// the context for the handlers.
func LoggingInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		l := log.With("method", info.FullMethod)

		resp, err := handler(logger.WithContext(ctx, l), req)

		code := status.Code(err)
		attrs := []any{"code", code.String(), "took", time.Since(start)}
		if err != nil {
			l.Warn("rpc failed", append(attrs, "err", err)...)
		} else {
			l.Debug("rpc ok", attrs...)
		}
		return resp, err
	}
}

// MetricsInterceptor records request counts and latency per method.
func MetricsInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		metrics.GRPCLatency.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		metrics.GRPCRequests.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		return resp, err
	}
}
