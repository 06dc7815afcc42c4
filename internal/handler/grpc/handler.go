// Package grpc exposes the gRPC side of the server. The finance API itself is
// REST only; over gRPC the server publishes the standard health service so
// orchestrators can probe it.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
)

// ServiceName is the health-check name reported next to the overall ("")
// status.
const ServiceName = "finance.v1.FinanceTracker"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both statuses start as NOT_SERVING
// until [Handler.Register] runs.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to server and marks it SERVING.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	h.logger.Debug().Str("service", ServiceName).Msg("gRPC health service registered")
}

// Shutdown flips every status to NOT_SERVING and ignores later updates, so
// probes fail before the listener goes away.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
