package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type AppointmentOptionUsecase interface {
	GetAppointmentOptions(ctx context.Context, date string) ([]responses.AppointmentOption, error)
	GetAppointmentSpecialties(ctx context.Context) ([]responses.AppointmentSpecialty, error)
}

type AppointmentOptionRepository interface {
	FindAll(ctx context.Context) ([]models.AppointmentOption, error)
	FindAllNames(ctx context.Context) ([]models.AppointmentOption, error)
}
