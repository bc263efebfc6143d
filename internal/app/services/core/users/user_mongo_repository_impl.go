package users

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

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Database) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionUsers),
	}
}

func (repo *UserMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateOne(ctx, userEmailIndex())
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoIndexUserEmail, constvars.MongoCollectionUsers)
	}
	return nil
}

// userEmailIndex only covers documents that carry an email, so role-only
// documents created by SetRoleByID never collide on a missing email.
func userEmailIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName(constvars.MongoIndexUserEmail).
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"email": bson.M{"$exists": true}}),
	}
}

func (repo *UserMongoRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	err = cursor.All(ctx, &users)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

func (repo *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := repo.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

// UpsertByEmail inserts the user once. An existing record keeps its name and role.
func (repo *UserMongoRepository) UpsertByEmail(ctx context.Context, user *models.User) (*models.UpdateOutcome, error) {
	filter := bson.M{"email": user.Email}
	update := bson.M{"$setOnInsert": bson.M{"email": user.Email, "name": user.Name}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return toUpdateOutcome(result), nil
}

// SetRoleByID creates the document when no user has userID.
func (repo *UserMongoRepository) SetRoleByID(ctx context.Context, userID, role string) (*models.UpdateOutcome, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter, update := setRoleUpsert(objectID, role)
	result, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return toUpdateOutcome(result), nil
}

func setRoleUpsert(objectID primitive.ObjectID, role string) (bson.M, bson.M) {
	return bson.M{"_id": objectID}, bson.M{"$set": bson.M{"role": role}}
}

func toUpdateOutcome(result *mongo.UpdateResult) *models.UpdateOutcome {
	outcome := &models.UpdateOutcome{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}
	if upsertedID, ok := result.UpsertedID.(primitive.ObjectID); ok {
		outcome.UpsertedID = upsertedID.Hex()
	}
	return outcome
}
