package users

import (
	"context"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserEmailIndex(t *testing.T) {
	index := userEmailIndex()

	assert.Equal(t, bson.D{{Key: "email", Value: 1}}, index.Keys)
	require.NotNil(t, index.Options)
	require.NotNil(t, index.Options.Unique)
	assert.True(t, *index.Options.Unique)
	require.NotNil(t, index.Options.Name)
	assert.Equal(t, constvars.MongoIndexUserEmail, *index.Options.Name)
	assert.Equal(t, bson.M{"email": bson.M{"$exists": true}}, index.Options.PartialFilterExpression)
}

func TestSetRoleUpsertLeavesEmailOut(t *testing.T) {
	objectID := primitive.NewObjectID()

	filter, update := setRoleUpsert(objectID, constvars.RoleDoctor)

	assert.Equal(t, bson.M{"_id": objectID}, filter)
	assert.Equal(t, bson.M{"$set": bson.M{"role": constvars.RoleDoctor}}, update)

	// an upserted document holds only _id and role, which the partial
	// email index skips, so two such upserts cannot collide
	partial := userEmailIndex().Options.PartialFilterExpression.(bson.M)
	_, filterHasEmail := filter["email"]
	_, setHasEmail := update["$set"].(bson.M)["email"]
	assert.False(t, filterHasEmail)
	assert.False(t, setHasEmail)
	assert.Equal(t, bson.M{"$exists": true}, partial["email"])
}

func TestSetRoleByIDRejectsMalformedID(t *testing.T) {
	repo := &UserMongoRepository{}

	result, err := repo.SetRoleByID(context.Background(), "not-an-object-id", constvars.RoleAdmin)

	assert.Nil(t, result)
	assert.True(t, exceptions.HasStatusCode(err, constvars.StatusBadRequest))
}
