package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetUsers(ctx context.Context) ([]responses.User, error)
	SaveUser(ctx context.Context, request *requests.SaveUser) (*responses.UpdateResult, error)
	IsAdmin(ctx context.Context, email string) (*responses.AdminFlag, error)
	IsDoctor(ctx context.Context, email string) (*responses.DoctorFlag, error)
	MakeAdmin(ctx context.Context, userID string) (*responses.UpdateResult, error)
	MakeDoctor(ctx context.Context, userID string) (*responses.UpdateResult, error)
}

type UserRepository interface {
	EnsureIndexes(ctx context.Context) error
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertByEmail(ctx context.Context, user *models.User) (*models.UpdateOutcome, error)
	SetRoleByID(ctx context.Context, userID, role string) (*models.UpdateOutcome, error)
}
