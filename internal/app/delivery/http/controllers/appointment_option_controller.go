package controllers

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AppointmentOptionController struct {
	Log                      *zap.Logger
	AppointmentOptionUsecase contracts.AppointmentOptionUsecase
}

func NewAppointmentOptionController(logger *zap.Logger, appointmentOptionUsecase contracts.AppointmentOptionUsecase) *AppointmentOptionController {
	return &AppointmentOptionController{
		Log:                      logger,
		AppointmentOptionUsecase: appointmentOptionUsecase,
	}
}

// GetAppointmentOptions answers GET /appointmentOptions?date=. The date is
// compared verbatim with stored bookings.
func (ctrl *AppointmentOptionController) GetAppointmentOptions(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	date := r.URL.Query().Get("date")
	ctrl.Log.Info("AppointmentOptionController.GetAppointmentOptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentDate, date),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
	defer cancel()

	result, err := ctrl.AppointmentOptionUsecase.GetAppointmentOptions(ctx, date)
	if err != nil {
		ctrl.Log.Error("AppointmentOptionController.GetAppointmentOptions error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *AppointmentOptionController) GetAppointmentSpecialties(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentOptionController.GetAppointmentSpecialties called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
	defer cancel()

	result, err := ctrl.AppointmentOptionUsecase.GetAppointmentSpecialties(ctx)
	if err != nil {
		ctrl.Log.Error("AppointmentOptionController.GetAppointmentSpecialties error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
