package controllers

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("BookingController.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateBooking)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("BookingController.CreateBooking error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("BookingController.CreateBooking error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
	defer cancel()

	result, err := ctrl.BookingUsecase.CreateBooking(ctx, request)
	if err != nil {
		ctrl.Log.Error("BookingController.CreateBooking error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	// a conflict is still a 200 carrying acknowledged=false
	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("BookingController.ListBookings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.ListBookings{
		IdentityEmail: utils.GetIdentityEmail(r.Context()),
		Email:         r.URL.Query().Get("email"),
	}
	if request.IdentityEmail == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingIdentity(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
	defer cancel()

	result, err := ctrl.BookingUsecase.ListBookings(ctx, request)
	if err != nil {
		ctrl.Log.Error("BookingController.ListBookings error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *BookingController) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	bookingID := chi.URLParam(r, "id")
	ctrl.Log.Info("BookingController.GetBookingByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, bookingID),
	)

	identityEmail := utils.GetIdentityEmail(r.Context())
	if identityEmail == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingIdentity(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
	defer cancel()

	result, err := ctrl.BookingUsecase.GetBookingByID(ctx, identityEmail, bookingID)
	if err != nil {
		ctrl.Log.Error("BookingController.GetBookingByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingSuccessMessage, result)
}

func (ctrl *BookingController) DeleteBookingByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	bookingID := chi.URLParam(r, "id")
	ctrl.Log.Info("BookingController.DeleteBookingByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, bookingID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
	defer cancel()

	result, err := ctrl.BookingUsecase.DeleteBookingByID(ctx, bookingID)
	if err != nil {
		ctrl.Log.Error("BookingController.DeleteBookingByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteBookingSuccessMessage, result)
}
