package appointmentOptions

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentOptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentOptionMongoRepository(db *mongo.Database) contracts.AppointmentOptionRepository {
	return &AppointmentOptionMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionAppointmentOptions),
	}
}

func (repo *AppointmentOptionMongoRepository) FindAll(ctx context.Context) ([]models.AppointmentOption, error) {
	return repo.find(ctx, options.Find())
}

// FindAllNames returns the catalog with only _id and name populated.
func (repo *AppointmentOptionMongoRepository) FindAllNames(ctx context.Context) ([]models.AppointmentOption, error) {
	return repo.find(ctx, options.Find().SetProjection(bson.M{"name": 1}))
}

func (repo *AppointmentOptionMongoRepository) find(ctx context.Context, opts *options.FindOptions) ([]models.AppointmentOption, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointmentOptions := make([]models.AppointmentOption, 0)
	err = cursor.All(ctx, &appointmentOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointmentOptions, nil
}
