package controllers

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

// IssueToken answers GET /jwt?email=. An unknown or empty email gets 403
// with an empty accessToken.
func (ctrl *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	email := r.URL.Query().Get("email")
	ctrl.Log.Info("AuthController.IssueToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	if email == "" {
		ctrl.denyToken(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
	defer cancel()

	result, err := ctrl.AuthUsecase.IssueToken(ctx, email)
	if err != nil {
		if exceptions.HasStatusCode(err, constvars.StatusForbidden) {
			ctrl.denyToken(w)
			return
		}
		ctrl.Log.Error("AuthController.IssueToken error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *AuthController) denyToken(w http.ResponseWriter) {
	utils.BuildJSONResponse(w, constvars.StatusForbidden, responses.AccessToken{
		AccessToken: constvars.AccessTokenDeniedPlaceholder,
	})
}
