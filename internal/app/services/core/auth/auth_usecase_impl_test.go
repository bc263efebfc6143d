package auth

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/app/services/shared/jwtmanager"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpsertByEmail(ctx context.Context, user *models.User) (*models.UpdateOutcome, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(*models.UpdateOutcome), args.Error(1)
}

func (m *MockUserRepository) SetRoleByID(ctx context.Context, userID, role string) (*models.UpdateOutcome, error) {
	args := m.Called(ctx, userID, role)
	return args.Get(0).(*models.UpdateOutcome), args.Error(1)
}

const (
	testSecret   = "test-secret"
	patientEmail = "patient@example.com"
)

func newTestAuthUsecase(t *testing.T, userRepo *MockUserRepository) *authUsecase {
	manager, err := jwtmanager.NewJWTManager(testSecret, zap.NewNop())
	require.NoError(t, err)
	return NewAuthUsecase(userRepo, manager, zap.NewNop()).(*authUsecase)
}

func TestIssueToken(t *testing.T) {
	ctx := context.Background()

	t.Run("known email gets a token for that email valid at most one hour", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newTestAuthUsecase(t, userRepo)
		userRepo.On("FindByEmail", ctx, patientEmail).Return(&models.User{Email: patientEmail}, nil)

		result, err := uc.IssueToken(ctx, patientEmail)
		require.NoError(t, err)
		require.NotEmpty(t, result.AccessToken)

		claims := jwt.MapClaims{}
		_, err = jwt.ParseWithClaims(result.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		assert.Equal(t, patientEmail, claims["email"])

		expiresAt := time.Unix(int64(claims["exp"].(float64)), 0)
		assert.True(t, expiresAt.After(time.Now()))
		assert.False(t, expiresAt.After(time.Now().Add(time.Hour+time.Second)))

		email, err := uc.VerifyToken(ctx, result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, patientEmail, email)
	})

	t.Run("unknown email is denied without a token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newTestAuthUsecase(t, userRepo)
		userRepo.On("FindByEmail", ctx, "stranger@example.com").Return(nil, nil)

		result, err := uc.IssueToken(ctx, "stranger@example.com")
		assert.Nil(t, result)
		assert.True(t, exceptions.HasStatusCode(err, constvars.StatusForbidden))
	})

	t.Run("lookup failure is a server error", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newTestAuthUsecase(t, userRepo)
		userRepo.On("FindByEmail", ctx, patientEmail).Return(nil, exceptions.ErrMongoDBFindDocument(errors.New("timeout")))

		_, err := uc.IssueToken(ctx, patientEmail)
		assert.True(t, exceptions.HasStatusCode(err, constvars.StatusInternalServerError))
	})
}

func TestVerifyToken(t *testing.T) {
	ctx := context.Background()
	uc := newTestAuthUsecase(t, new(MockUserRepository))

	t.Run("expired token is forbidden", func(t *testing.T) {
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"email": patientEmail,
			"exp":   time.Now().Add(-time.Minute).Unix(),
		}).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = uc.VerifyToken(ctx, expired)
		assert.True(t, exceptions.HasStatusCode(err, constvars.StatusForbidden))
	})

	t.Run("tampered token is forbidden", func(t *testing.T) {
		_, err := uc.VerifyToken(ctx, "eyJhbGciOiJIUzI1NiJ9.eyJlbWFpbCI6ImEifQ.invalid")
		assert.True(t, exceptions.HasStatusCode(err, constvars.StatusForbidden))
	})

	t.Run("empty token is forbidden", func(t *testing.T) {
		_, err := uc.VerifyToken(ctx, "")
		assert.True(t, exceptions.HasStatusCode(err, constvars.StatusForbidden))
	})
}

func TestAuthorizeRole(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name       string
		user       *models.User
		lookupErr  error
		wantStatus int
	}{
		{name: "admin passes", user: &models.User{Email: patientEmail, Role: constvars.RoleAdmin}},
		{name: "plain user is forbidden", user: &models.User{Email: patientEmail}, wantStatus: constvars.StatusForbidden},
		{name: "doctor is not admin", user: &models.User{Email: patientEmail, Role: constvars.RoleDoctor}, wantStatus: constvars.StatusForbidden},
		{name: "missing user is forbidden", wantStatus: constvars.StatusForbidden},
		{name: "lookup failure is a server error", lookupErr: exceptions.ErrMongoDBFindDocument(errors.New("timeout")), wantStatus: constvars.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			uc := newTestAuthUsecase(t, userRepo)
			if tc.user != nil {
				userRepo.On("FindByEmail", ctx, patientEmail).Return(tc.user, tc.lookupErr)
			} else {
				userRepo.On("FindByEmail", ctx, patientEmail).Return(nil, tc.lookupErr)
			}

			err := uc.AuthorizeRole(ctx, patientEmail, constvars.RoleAdmin)
			if tc.wantStatus == 0 {
				assert.NoError(t, err)
				return
			}
			assert.True(t, exceptions.HasStatusCode(err, tc.wantStatus))
		})
	}
}
