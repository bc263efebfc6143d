package middlewares

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) IssueToken(ctx context.Context, email string) (*responses.AccessToken, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AccessToken), args.Error(1)
}

func (m *MockAuthUsecase) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	args := m.Called(ctx, tokenString)
	return args.String(0), args.Error(1)
}

func (m *MockAuthUsecase) AuthorizeRole(ctx context.Context, email, requiredRole string) error {
	return m.Called(ctx, email, requiredRole).Error(0)
}

func newTestRouter(authUsecase *MockAuthUsecase) *chi.Mux {
	m := NewMiddlewares(zap.NewNop(), authUsecase, &config.InternalConfig{})

	ok := func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, utils.GetIdentityEmail(r.Context()), nil)
	}

	router := chi.NewRouter()
	router.Use(m.RequestIDMiddleware)
	router.With(m.Authenticate).Get("/protected", ok)
	router.With(m.Authenticate, m.RequireRole(constvars.RoleAdmin)).Get("/admin", ok)
	return router
}

func TestAuthenticate(t *testing.T) {
	t.Run("missing header is unauthorized", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		router := newTestRouter(authUsecase)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		authUsecase.AssertNotCalled(t, "VerifyToken", mock.Anything, mock.Anything)
	})

	t.Run("header without token part is forbidden", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		router := newTestRouter(authUsecase)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("invalid token is forbidden", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		router := newTestRouter(authUsecase)
		authUsecase.On("VerifyToken", mock.Anything, "expired-token").Return("", exceptions.ErrTokenInvalidOrExpired(nil))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("valid token reaches handler with identity", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		router := newTestRouter(authUsecase)
		authUsecase.On("VerifyToken", mock.Anything, "good-token").Return("patient@example.com", nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "patient@example.com")
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("valid token with wrong role is forbidden", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		router := newTestRouter(authUsecase)
		authUsecase.On("VerifyToken", mock.Anything, "good-token").Return("patient@example.com", nil)
		authUsecase.On("AuthorizeRole", mock.Anything, "patient@example.com", constvars.RoleAdmin).Return(exceptions.ErrNotMatchRoleType(nil))

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		router := newTestRouter(authUsecase)
		authUsecase.On("VerifyToken", mock.Anything, "good-token").Return("admin@example.com", nil)
		authUsecase.On("AuthorizeRole", mock.Anything, "admin@example.com", constvars.RoleAdmin).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("role lookup failure is a server error", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		router := newTestRouter(authUsecase)
		authUsecase.On("VerifyToken", mock.Anything, "good-token").Return("admin@example.com", nil)
		authUsecase.On("AuthorizeRole", mock.Anything, "admin@example.com", constvars.RoleAdmin).
			Return(exceptions.ErrMongoDBFindDocument(errors.New("timeout")))

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("role lookup past its deadline is a gateway timeout", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		router := newTestRouter(authUsecase)
		authUsecase.On("VerifyToken", mock.Anything, "good-token").Return("admin@example.com", nil)
		authUsecase.On("AuthorizeRole", mock.Anything, "admin@example.com", constvars.RoleAdmin).
			Return(exceptions.ErrMongoDBFindDocument(context.DeadlineExceeded))

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})

	t.Run("missing token never reaches the role check", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		router := newTestRouter(authUsecase)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		authUsecase.AssertNotCalled(t, "AuthorizeRole", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), new(MockAuthUsecase), &config.InternalConfig{})
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestErrorHandlerLogsPanicWithRequestContext(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	m := NewMiddlewares(zap.New(core), new(MockAuthUsecase), &config.InternalConfig{})
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New("nil roster"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/doctors", nil)
	req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_REQUEST_ID_KEY, "req-42"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	recovered := logs.FilterMessage("Middlewares.ErrorHandler recovered from panic").All()
	require.Len(t, recovered, 1)
	fields := recovered[0].ContextMap()
	assert.Equal(t, "req-42", fields[constvars.LoggingRequestIDKey])
	assert.Equal(t, http.MethodPost, fields[constvars.LoggingMethodKey])
	assert.Equal(t, "/doctors", fields[constvars.LoggingEndpointKey])
	assert.Contains(t, fields["error"], "nil roster")
	assert.NotEmpty(t, fields["stack"])
}

func TestErrorHandlerReraisesAbort(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), new(MockAuthUsecase), &config.InternalConfig{})
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestPanicToError(t *testing.T) {
	assert.EqualError(t, panicToError("boom"), "boom")
	assert.EqualError(t, panicToError(errors.New("broken")), "broken")
	assert.EqualError(t, panicToError(42), "panic: 42")
}
