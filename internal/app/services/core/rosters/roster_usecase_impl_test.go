package rosters

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRosterRepository struct {
	mock.Mock
}

func (m *MockRosterRepository) CollectionName() string {
	return "doctors"
}

func (m *MockRosterRepository) Insert(ctx context.Context, record models.RosterRecord) (string, error) {
	args := m.Called(ctx, record)
	return args.String(0), args.Error(1)
}

func (m *MockRosterRepository) FindAll(ctx context.Context) ([]models.RosterRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RosterRecord), args.Error(1)
}

func (m *MockRosterRepository) DeleteByID(ctx context.Context, recordID string) (int64, error) {
	args := m.Called(ctx, recordID)
	return args.Get(0).(int64), args.Error(1)
}

func TestRosterUsecase(t *testing.T) {
	ctx := context.Background()
	doctor := models.RosterRecord{"name": "Dr. Smith", "specialty": "Teeth Orthodontics"}

	t.Run("create stores the record as given", func(t *testing.T) {
		repo := new(MockRosterRepository)
		uc := NewRosterUsecase(repo, zap.NewNop())
		repo.On("Insert", ctx, doctor).Return("62fdc0b4c6a1f3a3b3c0ffee", nil)

		result, err := uc.Create(ctx, doctor)
		require.NoError(t, err)
		assert.True(t, result.Acknowledged)
		assert.Equal(t, "62fdc0b4c6a1f3a3b3c0ffee", result.InsertedID)
	})

	t.Run("find all", func(t *testing.T) {
		repo := new(MockRosterRepository)
		uc := NewRosterUsecase(repo, zap.NewNop())
		repo.On("FindAll", ctx).Return([]models.RosterRecord{doctor}, nil)

		result, err := uc.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.RosterRecord{doctor}, result)
	})

	t.Run("delete reports count", func(t *testing.T) {
		repo := new(MockRosterRepository)
		uc := NewRosterUsecase(repo, zap.NewNop())
		repo.On("DeleteByID", ctx, "62fdc0b4c6a1f3a3b3c0ffee").Return(int64(0), nil)

		result, err := uc.DeleteByID(ctx, "62fdc0b4c6a1f3a3b3c0ffee")
		require.NoError(t, err)
		assert.True(t, result.Acknowledged)
		assert.Zero(t, result.DeletedCount)
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		repo := new(MockRosterRepository)
		uc := NewRosterUsecase(repo, zap.NewNop())
		repo.On("FindAll", ctx).Return(nil, exceptions.ErrMongoDBFindDocument(errors.New("timeout")))

		_, err := uc.FindAll(ctx)
		assert.Error(t, err)
	})
}
