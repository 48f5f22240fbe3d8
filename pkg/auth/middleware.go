package auth

//go:generate mockgen -source=middleware.go -destination=mock_middleware.go -package=auth

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
	"github.com/likhilliki/ATM-Simulator/pkg/utils"
)

type ContextKey string

const (
	UserIDKey    ContextKey = "userID"
	SessionIDKey ContextKey = "sessionID"
)

type Gatekeeper interface {
	RequireAuthenticated(ctx context.Context, sessionID string) (int, error)
}

// SessionMiddleware admits only requests bound to an authenticated, unexpired
// session and slides the cookie expiry forward on every admitted request.
func SessionMiddleware(guard Gatekeeper, cookies *SessionCookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := cookies.SessionID(r)
			userID, err := guard.RequireAuthenticated(r.Context(), sessionID)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					cookies.Clear(w)
					utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
				zap.L().Error("session lookup failed", zap.Error(err))
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if err := cookies.Set(w, sessionID); err != nil {
				zap.L().Error("failed to refresh session cookie", zap.Error(err))
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			ctx = context.WithValue(ctx, SessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
