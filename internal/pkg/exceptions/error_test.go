package exceptions

import (
	"context"
	"doctors-portal-service/internal/pkg/constvars"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomErrorKeepsCause(t *testing.T) {
	err := ErrMongoDBFindDocument(context.DeadlineExceeded)

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.ErrorIs(t, WrapWithError(context.Canceled, constvars.StatusInternalServerError, "client", "dev"), context.Canceled)
	assert.Nil(t, WrapWithoutError(constvars.StatusBadRequest, "client", "dev").Unwrap())
}

func TestHasStatusCodeMatchesOutermostError(t *testing.T) {
	inner := ErrMongoDBDuplicateDocument(errors.New("E11000"))
	outer := ErrServerDeadlineExceeded(inner)

	assert.True(t, HasStatusCode(outer, constvars.StatusGatewayTimeout))
	assert.False(t, HasStatusCode(outer, constvars.StatusConflict))
	assert.True(t, HasStatusCode(inner, constvars.StatusConflict))
	assert.False(t, HasStatusCode(errors.New("plain"), constvars.StatusConflict))
}

func TestCustomErrorCauseIsNotSerialized(t *testing.T) {
	raw, err := json.Marshal(ErrMongoDBFindDocument(context.DeadlineExceeded))
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "Err")
	assert.Contains(t, fields["dev_message"], context.DeadlineExceeded.Error())
}
