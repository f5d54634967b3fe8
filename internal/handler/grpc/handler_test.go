package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-flashcards/internal/logger"
)

func status(t *testing.T, h *Handler, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_StartsNotServing(t *testing.T) {
	h := NewHandler(logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h, ServiceName))
}

func TestHandler_SetServing(t *testing.T) {
	h := NewHandler(logger.Nop())

	h.SetServing(true)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, h, ServiceName))

	h.SetServing(false)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h, ServiceName))
}

func TestHandler_ShutdownIsFinal(t *testing.T) {
	h := NewHandler(logger.Nop())
	h.SetServing(true)

	h.Shutdown()
	h.SetServing(true)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h, ServiceName))
}

func TestHandler_UnknownService(t *testing.T) {
	h := NewHandler(logger.Nop())

	_, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "payments"})
	assert.Error(t, err)
}
