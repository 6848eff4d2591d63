package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/server/auth"
)

// requireAuth is the auth gateway guarding every authenticated route. It
// distinguishes three failure modes:
//   - no bearer token at all: 401 before any verification
//   - token present but invalid or expired: 403
//   - token valid but the user no longer exists: 401
//
// On success the resolved Identity is attached to the request context.
func requireAuth(log logging.Logger, users UserService, secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(common.AuthorizationHeaderName)
			if !strings.HasPrefix(header, common.BearerPrefix) {
				respondFailure(w, http.StatusUnauthorized, "Not authorized, no token", nil)
				return
			}

			tokenString := strings.TrimPrefix(header, common.BearerPrefix)
			userID, err := auth.GetUserIDFromToken(tokenString, secretKey)
			if err != nil {
				respondFailure(w, http.StatusForbidden, "Forbidden: Invalid or expired token", nil)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					respondFailure(w, http.StatusUnauthorized, "User not found", nil)
					return
				}
				log.Error(r.Context(), "identity lookup failed", "error", err)
				respondFailure(w, http.StatusInternalServerError, "Server error", nil)
				return
			}

			identity := &Identity{
				ID:        user.ID,
				Name:      user.Name,
				Email:     user.Email,
				CreatedAt: user.CreatedAt,
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// requestLogger logs one line per request with method, path, status and
// duration.
func requestLogger(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info(r.Context(), "request",
				"method", r.Method, "path", r.URL.Path,
				"status", ww.Status(), "duration", time.Since(started))
		})
	}
}
