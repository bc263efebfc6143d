package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/responses"
)

// RosterUsecase manages an admin-curated list of opaque documents
// such as doctors or drugs.
type RosterUsecase interface {
	Create(ctx context.Context, record models.RosterRecord) (*responses.InsertResult, error)
	FindAll(ctx context.Context) ([]models.RosterRecord, error)
	DeleteByID(ctx context.Context, recordID string) (*responses.DeleteResult, error)
}

type RosterRepository interface {
	CollectionName() string
	Insert(ctx context.Context, record models.RosterRecord) (string, error)
	FindAll(ctx context.Context) ([]models.RosterRecord, error)
	DeleteByID(ctx context.Context, recordID string) (int64, error)
}
