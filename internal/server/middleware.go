// internal/server/middleware.go
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"club-portal/internal/common/auth"
	"club-portal/internal/common/errors"
	"club-portal/internal/common/logger"
	"club-portal/internal/common/metrics"
)

type contextKey string

const sessionContextKey contextKey = "session"

// withObservability wraps a handler with request logging and the request
// duration histogram. The route label is the registered pattern, not the
// concrete path, to keep metric cardinality bounded.
func withObservability(route string, log logger.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log.Debug("request started", map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
			"remote": r.RemoteAddr,
		})

		next(w, r)

		duration := time.Since(start)
		metrics.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(duration.Seconds())
		log.Info("request completed", map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"duration_ms": duration.Milliseconds(),
		})
	}
}

// requireSession rejects requests without a live admin session. The verified
// session is stashed in the request context for handlers that care.
func requireSession(sessions *auth.SessionClient, log logger.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, log, errors.NewSessionInvalidError("missing bearer token"))
			return
		}

		session, err := sessions.Verify(r.Context(), token)
		if err != nil {
			log.Warn("session check rejected request", map[string]interface{}{
				"error": err.Error(),
				"path":  r.URL.Path,
			})
			writeError(w, log, err)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next(w, r.WithContext(ctx))
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// SessionFromContext returns the verified session, if any.
func SessionFromContext(ctx context.Context) (*auth.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(*auth.Session)
	return session, ok
}
