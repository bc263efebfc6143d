package controllers

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UserController struct {
	Log         *zap.Logger
	UserUsecase contracts.UserUsecase
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase) *UserController {
	return &UserController{
		Log:         logger,
		UserUsecase: userUsecase,
	}
}

func (ctrl *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("UserController.GetUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
	defer cancel()

	result, err := ctrl.UserUsecase.GetUsers(ctx)
	if err != nil {
		ctrl.Log.Error("UserController.GetUsers error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *UserController) SaveUser(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("UserController.SaveUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SaveUser)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("UserController.SaveUser error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("UserController.SaveUser error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
	defer cancel()

	result, err := ctrl.UserUsecase.SaveUser(ctx, request)
	if err != nil {
		ctrl.Log.Error("UserController.SaveUser error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *UserController) IsAdmin(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	email := chi.URLParam(r, "email")
	ctrl.Log.Info("UserController.IsAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
	defer cancel()

	result, err := ctrl.UserUsecase.IsAdmin(ctx, email)
	if err != nil {
		ctrl.Log.Error("UserController.IsAdmin error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *UserController) IsDoctor(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	email := chi.URLParam(r, "email")
	ctrl.Log.Info("UserController.IsDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
	defer cancel()

	result, err := ctrl.UserUsecase.IsDoctor(ctx, email)
	if err != nil {
		ctrl.Log.Error("UserController.IsDoctor error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *UserController) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	ctrl.promote(w, r, "MakeAdmin", ctrl.UserUsecase.MakeAdmin)
}

func (ctrl *UserController) MakeDoctor(w http.ResponseWriter, r *http.Request) {
	ctrl.promote(w, r, "MakeDoctor", ctrl.UserUsecase.MakeDoctor)
}

type promoteFunc func(ctx context.Context, userID string) (*responses.UpdateResult, error)

func (ctrl *UserController) promote(w http.ResponseWriter, r *http.Request, name string, fn promoteFunc) {
	requestID := utils.GetRequestID(r.Context())
	userID := chi.URLParam(r, "id")
	ctrl.Log.Info("UserController."+name+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, userID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
	defer cancel()

	result, err := fn(ctx, userID)
	if err != nil {
		ctrl.Log.Error("UserController."+name+" error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
