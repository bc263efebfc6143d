package users

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

func (uc *userUsecase) GetUsers(ctx context.Context) ([]responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GetUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	users, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("userUsecase.GetUsers error fetching users",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.User, len(users))
	for i, eachUser := range users {
		response[i] = eachUser.ConvertIntoResponse()
	}

	uc.Log.Info("userUsecase.GetUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response)),
	)
	return response, nil
}

func (uc *userUsecase) SaveUser(ctx context.Context, request *requests.SaveUser) (*responses.UpdateResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.SaveUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	outcome, err := uc.UserRepository.UpsertByEmail(ctx, &models.User{
		Name:  request.Name,
		Email: request.Email,
	})
	if err != nil {
		uc.Log.Error("userUsecase.SaveUser error saving user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := outcome.ConvertIntoResponse()
	uc.Log.Info("userUsecase.SaveUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCountKey, outcome.UpsertedCount),
	)
	return &response, nil
}

func (uc *userUsecase) IsAdmin(ctx context.Context, email string) (*responses.AdminFlag, error) {
	hasRole, err := uc.hasRole(ctx, email, constvars.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &responses.AdminFlag{IsAdmin: hasRole}, nil
}

func (uc *userUsecase) IsDoctor(ctx context.Context, email string) (*responses.DoctorFlag, error) {
	hasRole, err := uc.hasRole(ctx, email, constvars.RoleDoctor)
	if err != nil {
		return nil, err
	}
	return &responses.DoctorFlag{IsDoctor: hasRole}, nil
}

func (uc *userUsecase) MakeAdmin(ctx context.Context, userID string) (*responses.UpdateResult, error) {
	return uc.setRole(ctx, userID, constvars.RoleAdmin)
}

func (uc *userUsecase) MakeDoctor(ctx context.Context, userID string) (*responses.UpdateResult, error) {
	return uc.setRole(ctx, userID, constvars.RoleDoctor)
}

func (uc *userUsecase) hasRole(ctx context.Context, email, role string) (bool, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.hasRole called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
		zap.String(constvars.LoggingRequiredRoleKey, role),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("userUsecase.hasRole error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, err
	}
	return user.HasRole(role), nil
}

func (uc *userUsecase) setRole(ctx context.Context, userID, role string) (*responses.UpdateResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.setRole called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, userID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	outcome, err := uc.UserRepository.SetRoleByID(ctx, userID, role)
	if err != nil {
		uc.Log.Error("userUsecase.setRole error updating role",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := outcome.ConvertIntoResponse()
	uc.Log.Info("userUsecase.setRole succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, userID),
	)
	return &response, nil
}
