package rosters

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RosterMongoRepository stores schemaless records in one collection.
// Doctors and drugs each get their own instance.
type RosterMongoRepository struct {
	Collection *mongo.Collection
}

func NewRosterMongoRepository(db *mongo.Database, collectionName string) contracts.RosterRepository {
	return &RosterMongoRepository{
		Collection: db.Collection(collectionName),
	}
}

func (repo *RosterMongoRepository) CollectionName() string {
	return repo.Collection.Name()
}

func (repo *RosterMongoRepository) Insert(ctx context.Context, record models.RosterRecord) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, bson.M(record))
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	switch insertedID := result.InsertedID.(type) {
	case primitive.ObjectID:
		return insertedID.Hex(), nil
	case string:
		return insertedID, nil
	default:
		return "", nil
	}
}

func (repo *RosterMongoRepository) FindAll(ctx context.Context) ([]models.RosterRecord, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	records := make([]models.RosterRecord, 0)
	err = cursor.All(ctx, &records)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}

func (repo *RosterMongoRepository) DeleteByID(ctx context.Context, recordID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return 0, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
