package controllers

import (
	"context"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"
	"sort"

	"go.uber.org/zap"
)

// HealthCheckFunc reports whether one backing dependency is reachable.
type HealthCheckFunc func(ctx context.Context) error

type HealthController struct {
	Log     *zap.Logger
	Version string
	Checks  map[string]HealthCheckFunc
}

func NewHealthController(logger *zap.Logger, version string, checks map[string]HealthCheckFunc) *HealthController {
	return &HealthController{
		Log:     logger,
		Version: version,
		Checks:  checks,
	}
}

func (ctrl *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ServerRunningMessage, nil)
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), constvars.HealthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(ctrl.Checks))
	for name := range ctrl.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	result := responses.Health{
		Status:       constvars.HealthStatusOK,
		Version:      ctrl.Version,
		Dependencies: make(map[string]string, len(names)),
	}
	for _, name := range names {
		if err := ctrl.Checks[name](ctx); err != nil {
			ctrl.Log.Error("HealthController.Health dependency unreachable",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("dependency", name),
				zap.Error(err),
			)
			result.Dependencies[name] = constvars.HealthStatusDown
			result.Status = constvars.HealthStatusDegraded
			continue
		}
		result.Dependencies[name] = constvars.HealthStatusUp
	}

	if result.Status != constvars.HealthStatusOK {
		utils.BuildFailedResponse(w, constvars.StatusServiceUnavailable, constvars.HealthDegradedMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthOKMessage, result)
}
