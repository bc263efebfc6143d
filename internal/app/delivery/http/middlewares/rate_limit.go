package middlewares

import (
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit limits every client IP to MaxRequests per second.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	return m.limitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}

// TokenRateLimit is the stricter per-minute limit for token issuance, which
// otherwise reveals whether an email is registered.
func (m *Middlewares) TokenRateLimit() func(next http.Handler) http.Handler {
	return m.limitByIP(m.InternalConfig.App.TokenMaxRequestsPerMinute, time.Minute)
}

func (m *Middlewares) limitByIP(requestLimit int, windowLength time.Duration) func(next http.Handler) http.Handler {
	return httprate.Limit(
		requestLimit,
		windowLength,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
