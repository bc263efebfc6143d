package bookings

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Settings tunes the optional redis-backed guards around booking creation.
type Settings struct {
	LockTTL time.Duration
	// AttemptWindow and MaxAttemptsPerWindow bound booking attempts per email.
	AttemptWindow        time.Duration
	MaxAttemptsPerWindow int
}

type bookingUsecase struct {
	BookingRepository     contracts.BookingRepository
	UserRepository        contracts.UserRepository
	LockerService         contracts.LockerService
	AttemptLimiter        contracts.ResourceLimiter
	BookingEventPublisher contracts.BookingEventPublisher
	Settings              Settings
	Log                   *zap.Logger
}

// NewBookingUsecase builds the booking usecase. lockerService,
// attemptLimiter and bookingEventPublisher are optional and may be nil.
func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	userRepository contracts.UserRepository,
	lockerService contracts.LockerService,
	attemptLimiter contracts.ResourceLimiter,
	bookingEventPublisher contracts.BookingEventPublisher,
	settings Settings,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingRepository:     bookingRepository,
		UserRepository:        userRepository,
		LockerService:         lockerService,
		AttemptLimiter:        attemptLimiter,
		BookingEventPublisher: bookingEventPublisher,
		Settings:              settings,
		Log:                   logger,
	}
}

// CreateBooking stores the booking unless the patient already holds one for
// the same date and treatment. A conflict is reported in the result, not as
// an error.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBooking, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentDate, request.AppointmentDate),
		zap.String(constvars.LoggingTreatmentKey, request.Treatment),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	booking := &models.Booking{
		AppointmentDate: request.AppointmentDate,
		Treatment:       request.Treatment,
		Slot:            request.Slot,
		Email:           request.Email,
		PatientName:     request.PatientName,
		PatientPhone:    request.PatientPhone,
		Price:           request.Price,
		CreatedAt:       time.Now().UTC(),
	}
	booking.SetExtra(request.Extra)

	if !uc.allowAttempt(ctx, booking.Email) {
		return nil, exceptions.ErrTooManyRequests(nil)
	}

	if uc.LockerService != nil {
		lockKey := utils.BuildBookingLockKey(booking.AppointmentDate, booking.Email, booking.Treatment)
		acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, uc.Settings.LockTTL)
		if err != nil {
			// the unique index still guards the insert
			uc.Log.Warn("bookingUsecase.CreateBooking error acquiring booking lock, continuing without it",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		} else if !acquired {
			uc.Log.Info("bookingUsecase.CreateBooking booking for the same key is in progress",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
			)
			return uc.inProgress(booking.AppointmentDate), nil
		} else {
			defer uc.releaseLock(ctx, lockKey, lockValue)
		}
	}

	existing, err := uc.BookingRepository.FindByConflictKey(ctx, booking.ConflictKey())
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking error fetching existing bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if len(existing) > 0 {
		uc.Log.Info("bookingUsecase.CreateBooking booking already exists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingCountKey, len(existing)),
		)
		return uc.conflict(booking.AppointmentDate), nil
	}

	insertedID, err := uc.BookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		if exceptions.HasStatusCode(err, constvars.StatusConflict) {
			uc.Log.Info("bookingUsecase.CreateBooking lost the race to a concurrent booking",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return uc.conflict(booking.AppointmentDate), nil
		}
		uc.Log.Error("bookingUsecase.CreateBooking error inserting booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	booking.ID = insertedID

	if uc.BookingEventPublisher != nil {
		err = uc.BookingEventPublisher.PublishBookingCreated(ctx, booking)
		if err != nil {
			uc.Log.Warn("bookingUsecase.CreateBooking error publishing booking event",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingIDKey, insertedID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("bookingUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, insertedID),
	)
	return &responses.CreateBooking{
		Acknowledged: true,
		InsertedID:   insertedID,
	}, nil
}

// ListBookings returns every booking to an admin. Anyone else may only ask
// for their own email and only gets their own bookings.
func (uc *bookingUsecase) ListBookings(ctx context.Context, request *requests.ListBookings) ([]responses.Booking, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.ListBookings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	isAdmin, err := uc.isAdmin(ctx, request.IdentityEmail)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if isAdmin {
		bookings, err = uc.BookingRepository.FindAll(ctx)
	} else {
		if request.Email != request.IdentityEmail {
			utils.LogSecurityEvent(uc.Log, "booking_list_ownership_mismatch", requestID,
				zap.String(constvars.LoggingEmailKey, request.Email),
			)
			return nil, exceptions.ErrForbiddenOwnership(nil)
		}
		bookings, err = uc.BookingRepository.FindByEmail(ctx, request.IdentityEmail)
	}
	if err != nil {
		uc.Log.Error("bookingUsecase.ListBookings error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Booking, len(bookings))
	for i, eachBooking := range bookings {
		response[i] = eachBooking.ConvertIntoResponse()
	}

	uc.Log.Info("bookingUsecase.ListBookings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response)),
	)
	return response, nil
}

func (uc *bookingUsecase) GetBookingByID(ctx context.Context, identityEmail, bookingID string) (*responses.Booking, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.GetBookingByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, bookingID),
	)

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.GetBookingByID error fetching booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotExist(nil)
	}

	if booking.Email != identityEmail {
		isAdmin, err := uc.isAdmin(ctx, identityEmail)
		if err != nil {
			return nil, err
		}
		if !isAdmin {
			utils.LogSecurityEvent(uc.Log, "booking_read_ownership_mismatch", requestID,
				zap.String(constvars.LoggingIDKey, bookingID),
			)
			return nil, exceptions.ErrForbiddenOwnership(nil)
		}
	}

	response := booking.ConvertIntoResponse()
	uc.Log.Info("bookingUsecase.GetBookingByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, bookingID),
	)
	return &response, nil
}

func (uc *bookingUsecase) DeleteBookingByID(ctx context.Context, bookingID string) (*responses.DeleteResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.DeleteBookingByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, bookingID),
	)

	deletedCount, err := uc.BookingRepository.DeleteByID(ctx, bookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.DeleteBookingByID error deleting booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.DeleteBookingByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCountKey, deletedCount),
	)
	return &responses.DeleteResult{
		Acknowledged: true,
		DeletedCount: deletedCount,
	}, nil
}

func (uc *bookingUsecase) isAdmin(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, exceptions.ErrMissingIdentity(nil)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("bookingUsecase.isAdmin error fetching user",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return false, err
	}
	return user.HasRole(constvars.RoleAdmin), nil
}

func (uc *bookingUsecase) conflict(appointmentDate string) *responses.CreateBooking {
	return &responses.CreateBooking{
		Acknowledged: false,
		Message:      fmt.Sprintf(constvars.BookingConflictMessageFormat, appointmentDate),
	}
}

func (uc *bookingUsecase) inProgress(appointmentDate string) *responses.CreateBooking {
	return &responses.CreateBooking{
		Acknowledged: false,
		Message:      fmt.Sprintf(constvars.BookingInProgressMessageFormat, appointmentDate),
	}
}

func (uc *bookingUsecase) releaseLock(ctx context.Context, lockKey, lockValue string) {
	err := uc.LockerService.Unlock(ctx, lockKey, lockValue)
	if err != nil {
		uc.Log.Warn("bookingUsecase.releaseLock error releasing booking lock",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Error(err),
		)
	}
}

// allowAttempt fails open when the limiter backend is unavailable.
func (uc *bookingUsecase) allowAttempt(ctx context.Context, email string) bool {
	if uc.AttemptLimiter == nil {
		return true
	}

	requestID := utils.GetRequestID(ctx)
	out, err := uc.AttemptLimiter.ApplyResourceLimiter(ctx, &contracts.ApplyResourceLimiterInput{
		ResourceName:     email,
		LimiterGroupName: constvars.LimiterGroupBookingAttempt,
		Window:           uc.Settings.AttemptWindow,
		MaxQuota:         uc.Settings.MaxAttemptsPerWindow,
	})
	if err != nil {
		uc.Log.Warn("bookingUsecase.allowAttempt error applying limiter, letting the attempt through",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return true
	}

	if !out.Allowed {
		utils.LogSecurityEvent(uc.Log, "booking_attempts_exceeded", requestID,
			zap.String(constvars.LoggingEmailKey, email),
			zap.Int("retry_after_secs", out.RetryAfterSecs),
		)
	}
	return out.Allowed
}
