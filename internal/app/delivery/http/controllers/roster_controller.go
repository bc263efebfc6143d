package controllers

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// RosterController serves one admin-curated collection. Resource names the
// collection in log lines.
type RosterController struct {
	Log           *zap.Logger
	Resource      string
	RosterUsecase contracts.RosterUsecase
}

func NewRosterController(logger *zap.Logger, resource string, rosterUsecase contracts.RosterUsecase) *RosterController {
	return &RosterController{
		Log:           logger,
		Resource:      resource,
		RosterUsecase: rosterUsecase,
	}
}

func (ctrl *RosterController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("RosterController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, ctrl.Resource),
	)

	record := models.RosterRecord{}
	err := json.NewDecoder(r.Body).Decode(&record)
	if err != nil {
		ctrl.Log.Error("RosterController.Create error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
	defer cancel()

	result, err := ctrl.RosterUsecase.Create(ctx, record)
	if err != nil {
		ctrl.Log.Error("RosterController.Create error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *RosterController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("RosterController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, ctrl.Resource),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
	defer cancel()

	result, err := ctrl.RosterUsecase.FindAll(ctx)
	if err != nil {
		ctrl.Log.Error("RosterController.FindAll error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *RosterController) DeleteByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	recordID := chi.URLParam(r, "id")
	ctrl.Log.Info("RosterController.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, ctrl.Resource),
		zap.String(constvars.LoggingIDKey, recordID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
	defer cancel()

	result, err := ctrl.RosterUsecase.DeleteByID(ctx, recordID)
	if err != nil {
		ctrl.Log.Error("RosterController.DeleteByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
