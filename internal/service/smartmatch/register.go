package smartmatch

import (
	"google.golang.org/grpc"

	pb "github.com/oggyb/muzz-smartmatch/internal/api/smartmatchv1"
)

// Registrar ties the SmartMatch service into the gRPC server
type Registrar struct {
	service *Service
}

// NewRegistrar creates a new Registrar for the SmartMatch service
func NewRegistrar(service *Service) *Registrar {
	return &Registrar{service: service}
}

// Register attaches the SmartMatch service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterSmartMatchServiceServer(s, r.service)
}

// Name is the fully qualified service name reported by the health server.
func (r *Registrar) Name() string {
	return pb.SmartMatchService_ServiceDesc.ServiceName
}
