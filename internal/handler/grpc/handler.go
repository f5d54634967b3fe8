package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-flashcards/internal/logger"
)

// ServiceName is the health service name probes may ask for. The empty name
// reports the same status.
const ServiceName = "flashcards"

// Handler serves grpc.health.v1.Health. It starts NOT_SERVING; the database
// health worker flips it with SetServing.
type Handler struct {
	health *health.Server
	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: hs,
		logger: logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing implements workers.StatusReporter.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	h.logger.Debug().Str("status", status.String()).Msg("health status updated")
}

// Shutdown reports NOT_SERVING for good; later SetServing calls are ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
