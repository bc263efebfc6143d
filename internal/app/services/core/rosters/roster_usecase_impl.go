package rosters

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type rosterUsecase struct {
	RosterRepository contracts.RosterRepository
	Log              *zap.Logger
}

func NewRosterUsecase(rosterRepository contracts.RosterRepository, logger *zap.Logger) contracts.RosterUsecase {
	return &rosterUsecase{
		RosterRepository: rosterRepository,
		Log:              logger,
	}
}

func (uc *rosterUsecase) Create(ctx context.Context, record models.RosterRecord) (*responses.InsertResult, error) {
	requestID := utils.GetRequestID(ctx)
	collection := uc.RosterRepository.CollectionName()
	uc.Log.Info("rosterUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collection),
	)

	insertedID, err := uc.RosterRepository.Insert(ctx, record)
	if err != nil {
		uc.Log.Error("rosterUsecase.Create error inserting record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("rosterUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collection),
		zap.String(constvars.LoggingIDKey, insertedID),
	)
	return &responses.InsertResult{Acknowledged: true, InsertedID: insertedID}, nil
}

func (uc *rosterUsecase) FindAll(ctx context.Context) ([]models.RosterRecord, error) {
	requestID := utils.GetRequestID(ctx)
	collection := uc.RosterRepository.CollectionName()
	uc.Log.Info("rosterUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collection),
	)

	records, err := uc.RosterRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("rosterUsecase.FindAll error fetching records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("rosterUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(records)),
	)
	return records, nil
}

func (uc *rosterUsecase) DeleteByID(ctx context.Context, recordID string) (*responses.DeleteResult, error) {
	requestID := utils.GetRequestID(ctx)
	collection := uc.RosterRepository.CollectionName()
	uc.Log.Info("rosterUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collection),
		zap.String(constvars.LoggingIDKey, recordID),
	)

	deletedCount, err := uc.RosterRepository.DeleteByID(ctx, recordID)
	if err != nil {
		uc.Log.Error("rosterUsecase.DeleteByID error deleting record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.Error(err),
		)
		return nil, err
	}
	return &responses.DeleteResult{Acknowledged: true, DeletedCount: deletedCount}, nil
}
