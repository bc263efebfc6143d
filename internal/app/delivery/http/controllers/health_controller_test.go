package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHealthController_Health(t *testing.T) {
	up := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("connection refused") }

	t.Run("all dependencies reachable", func(t *testing.T) {
		ctrl := NewHealthController(zap.NewNop(), "1.0.0", map[string]HealthCheckFunc{"mongodb": up, "redis": up})

		rr := httptest.NewRecorder()
		ctrl.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeEnvelope(t, rr)
		assert.JSONEq(t, `{"status":"ok","version":"1.0.0","dependencies":{"mongodb":"up","redis":"up"}}`, string(body.Data))
	})

	t.Run("one dependency down degrades the service", func(t *testing.T) {
		ctrl := NewHealthController(zap.NewNop(), "1.0.0", map[string]HealthCheckFunc{"mongodb": up, "redis": down})

		rr := httptest.NewRecorder()
		ctrl.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		body := decodeEnvelope(t, rr)
		assert.False(t, body.Success)
		assert.JSONEq(t, `{"status":"degraded","version":"1.0.0","dependencies":{"mongodb":"up","redis":"down"}}`, string(body.Data))
	})
}

func TestHealthController_Root(t *testing.T) {
	ctrl := NewHealthController(zap.NewNop(), "1.0.0", nil)

	rr := httptest.NewRecorder()
	ctrl.Root(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Doctors Portal Server Running", decodeEnvelope(t, rr).Message)
}
