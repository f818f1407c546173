package server

import "google.golang.org/grpc"

// Registrar is a common interface for all gRPC service registrars
type Registrar interface {
	Register(s *grpc.Server)
}

// NamedRegistrar is a Registrar whose service is reported by the health server.
type NamedRegistrar interface {
	Registrar
	Name() string
}
