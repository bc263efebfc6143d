package middlewares

import (
	"context"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate verifies the bearer token and puts its email in the request
// context. A missing header is 401, anything unverifiable is 403.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.LogSecurityEvent(m.Log, "missing_authorization_header", requestID,
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		// the scheme word itself is not checked
		fields := strings.Fields(authHeader)
		if len(fields) < 2 {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMalformed(nil))
			return
		}

		email, err := m.AuthUsecase.VerifyToken(r.Context(), fields[1])
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_IDENTITY_EMAIL_KEY, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole must run after Authenticate. It rereads the caller's role
// from storage on every request.
func (m *Middlewares) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := utils.GetIdentityEmail(r.Context())
			if email == "" {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingIdentity(nil))
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeout)
			defer cancel()

			err := m.AuthUsecase.AuthorizeRole(ctx, email, role)
			if err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
					return
				}
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
