package bookings

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Database) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionBookings),
	}
}

// EnsureIndexes creates the unique index that keeps one booking per
// appointment date, email and treatment.
func (repo *BookingMongoRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys: bson.D{
			{Key: "appointmentDate", Value: 1},
			{Key: "email", Value: 1},
			{Key: "treatment", Value: 1},
		},
		Options: options.Index().
			SetName(constvars.MongoIndexBookingConflictTriple).
			SetUnique(true),
	}
	_, err := repo.Collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoIndexBookingConflictTriple, constvars.MongoCollectionBookings)
	}
	return nil
}

func (repo *BookingMongoRepository) FindByConflictKey(ctx context.Context, key models.BookingConflictKey) ([]models.Booking, error) {
	filter := bson.M{
		"appointmentDate": key.AppointmentDate,
		"email":           key.Email,
		"treatment":       key.Treatment,
	}
	return repo.find(ctx, filter)
}

func (repo *BookingMongoRepository) FindByAppointmentDate(ctx context.Context, appointmentDate string) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{"appointmentDate": appointmentDate})
}

func (repo *BookingMongoRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{"email": email})
}

func (repo *BookingMongoRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{})
}

func (repo *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var booking models.Booking
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (repo *BookingMongoRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrMongoDBDuplicateDocument(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return insertedID.Hex(), nil
}

func (repo *BookingMongoRepository) DeleteByID(ctx context.Context, bookingID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return 0, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (repo *BookingMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	bookings := make([]models.Booking, 0)
	err = cursor.All(ctx, &bookings)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}
