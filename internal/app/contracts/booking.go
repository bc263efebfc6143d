package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBooking, error)
	ListBookings(ctx context.Context, request *requests.ListBookings) ([]responses.Booking, error)
	GetBookingByID(ctx context.Context, identityEmail, bookingID string) (*responses.Booking, error)
	DeleteBookingByID(ctx context.Context, bookingID string) (*responses.DeleteResult, error)
}

type BookingRepository interface {
	EnsureIndexes(ctx context.Context) error
	FindByConflictKey(ctx context.Context, key models.BookingConflictKey) ([]models.Booking, error)
	FindByAppointmentDate(ctx context.Context, appointmentDate string) ([]models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	// CreateBooking fails with a 409 CustomError when the conflict key is already taken.
	CreateBooking(ctx context.Context, booking *models.Booking) (string, error)
	DeleteByID(ctx context.Context, bookingID string) (int64, error)
}

type BookingEventPublisher interface {
	PublishBookingCreated(ctx context.Context, booking *models.Booking) error
}
