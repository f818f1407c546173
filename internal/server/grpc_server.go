package server

import (
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/oggyb/muzz-smartmatch/internal/config"
)

// NewGRPCServer builds a gRPC server with logging and metrics interceptors,
// the standard health service and reflection, and registers all provided
// services. Named services are reported SERVING.
func NewGRPCServer(log *slog.Logger, registrars ...Registrar) *grpc.Server {
	if log == nil {
		log = slog.Default()
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			MetricsInterceptor(),
			LoggingInterceptor(log.With("component", "grpc")),
		),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// register all services
	for _, r := range registrars {
		r.Register(grpcServer)
		if named, ok := r.(NamedRegistrar); ok {
			healthServer.SetServingStatus(named.Name(), healthpb.HealthCheckResponse_SERVING)
		}
	}
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// enable reflection for easier debugging with grpcurl
	reflection.Register(grpcServer)

	return grpcServer
}

// Listen opens the configured gRPC address.
func Listen(cfg *config.Config) (net.Listener, error) {
	addr := fmt.Sprintf("%s:%s", cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return lis, nil
}
