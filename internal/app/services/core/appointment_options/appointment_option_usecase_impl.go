package appointmentOptions

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type appointmentOptionUsecase struct {
	AppointmentOptionRepository contracts.AppointmentOptionRepository
	BookingRepository           contracts.BookingRepository
	RedisRepository             contracts.RedisRepository
	CatalogCacheTTL             time.Duration
	Log                         *zap.Logger
}

func NewAppointmentOptionUsecase(
	appointmentOptionRepository contracts.AppointmentOptionRepository,
	bookingRepository contracts.BookingRepository,
	redisRepository contracts.RedisRepository,
	catalogCacheTTL time.Duration,
	logger *zap.Logger,
) contracts.AppointmentOptionUsecase {
	return &appointmentOptionUsecase{
		AppointmentOptionRepository: appointmentOptionRepository,
		BookingRepository:           bookingRepository,
		RedisRepository:             redisRepository,
		CatalogCacheTTL:             catalogCacheTTL,
		Log:                         logger,
	}
}

func (uc *appointmentOptionUsecase) GetAppointmentOptions(ctx context.Context, date string) ([]responses.AppointmentOption, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentOptionUsecase.GetAppointmentOptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentDate, date),
	)

	templates, err := uc.getCatalog(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.BookingRepository.FindByAppointmentDate(ctx, date)
	if err != nil {
		uc.Log.Error("appointmentOptionUsecase.GetAppointmentOptions error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	available := ComputeAvailability(date, templates, bookings)

	response := make([]responses.AppointmentOption, len(available))
	for i, eachOption := range available {
		response[i] = eachOption.ConvertIntoResponse()
	}

	uc.Log.Info("appointmentOptionUsecase.GetAppointmentOptions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response)),
	)
	return response, nil
}

func (uc *appointmentOptionUsecase) GetAppointmentSpecialties(ctx context.Context) ([]responses.AppointmentSpecialty, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentOptionUsecase.GetAppointmentSpecialties called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	names, err := uc.AppointmentOptionRepository.FindAllNames(ctx)
	if err != nil {
		uc.Log.Error("appointmentOptionUsecase.GetAppointmentSpecialties error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.AppointmentSpecialty, len(names))
	for i, eachName := range names {
		response[i] = eachName.ConvertIntoSpecialtyResponse()
	}

	uc.Log.Info("appointmentOptionUsecase.GetAppointmentSpecialties succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response)),
	)
	return response, nil
}

// getCatalog reads the templates through the Redis cache. Cache failures
// fall back to MongoDB.
func (uc *appointmentOptionUsecase) getCatalog(ctx context.Context) ([]models.AppointmentOption, error) {
	requestID := utils.GetRequestID(ctx)

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyAppointmentOptionCatalog)
	if err != nil {
		uc.Log.Warn("appointmentOptionUsecase.getCatalog error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	if cached != "" {
		var templates []models.AppointmentOption
		err = json.Unmarshal([]byte(cached), &templates)
		if err == nil {
			uc.Log.Info("appointmentOptionUsecase.getCatalog data found in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return templates, nil
		}
		uc.Log.Warn("appointmentOptionUsecase.getCatalog error parsing JSON from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	templates, err := uc.AppointmentOptionRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("appointmentOptionUsecase.getCatalog error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyAppointmentOptionCatalog, templates, uc.CatalogCacheTTL)
	if err != nil {
		uc.Log.Warn("appointmentOptionUsecase.getCatalog error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return templates, nil
}
