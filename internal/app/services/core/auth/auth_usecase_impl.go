package auth

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/services/shared/jwtmanager"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	JWTManager     *jwtmanager.JWTManager
	Log            *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	jwtManager *jwtmanager.JWTManager,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		JWTManager:     jwtManager,
		Log:            logger,
	}
}

// IssueToken mints an access token only for an email present in users.
func (uc *authUsecase) IssueToken(ctx context.Context, email string) (*responses.AccessToken, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.IssueToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("authUsecase.IssueToken error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		utils.LogSecurityEvent(uc.Log, "token_requested_for_unknown_email", requestID,
			zap.String(constvars.LoggingEmailKey, email),
		)
		return nil, exceptions.ErrUserNotExist(nil)
	}

	token, err := uc.JWTManager.CreateToken(ctx, &jwtmanager.CreateTokenInput{Email: user.Email})
	if err != nil {
		uc.Log.Error("authUsecase.IssueToken error signing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.IssueToken succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)
	return &responses.AccessToken{AccessToken: token.Token}, nil
}

func (uc *authUsecase) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	requestID := utils.GetRequestID(ctx)

	verified, err := uc.JWTManager.VerifyToken(ctx, &jwtmanager.VerifyTokenInput{Token: tokenString})
	if err != nil {
		return "", exceptions.ErrTokenMalformed(err)
	}
	if !verified.Valid {
		utils.LogSecurityEvent(uc.Log, "invalid_or_expired_token", requestID)
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return verified.Email, nil
}

// AuthorizeRole reads the user's current role on every call.
func (uc *authUsecase) AuthorizeRole(ctx context.Context, email, requiredRole string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.AuthorizeRole called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
		zap.String(constvars.LoggingRequiredRoleKey, requiredRole),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("authUsecase.AuthorizeRole error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if !user.HasRole(requiredRole) {
		role := constvars.RoleNone
		if user != nil {
			role = user.Role
		}
		utils.LogSecurityEvent(uc.Log, "role_mismatch", requestID,
			zap.String(constvars.LoggingEmailKey, email),
			zap.String(constvars.LoggingRoleKey, role),
			zap.String(constvars.LoggingRequiredRoleKey, requiredRole),
		)
		return exceptions.ErrNotMatchRoleType(nil)
	}
	return nil
}
