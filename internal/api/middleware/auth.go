package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/devtask-api/internal/api/shared"
	"github.com/phrazzld/devtask-api/internal/domain"
	"github.com/phrazzld/devtask-api/internal/platform/logger"
	"github.com/phrazzld/devtask-api/internal/service/auth"
	"github.com/phrazzld/devtask-api/internal/store"
)

// AuthMiddleware provides bearer-token authentication for protected routes.
// It validates the token and resolves the encoded subject to a full User
// record; handlers obtain the current user exclusively through the request
// context populated here.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates the bearer token from the Authorization header,
// loads the corresponding user, and stores it in the request context.
// Missing or malformed headers, rejected tokens, and tokens for users that
// no longer exist all produce a 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid authorization format")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			// Expired and invalid tokens are distinct internally but produce
			// the same response.
			shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		user, err := m.userStore.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				// A valid token for a user that no longer exists.
				shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			log := logger.FromContext(r.Context())
			log.Error("failed to resolve user for valid token",
				"error", err,
				"user_id", claims.UserID)
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "authentication error", err)
			return
		}

		ctx := context.WithValue(r.Context(), shared.CurrentUserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUser extracts the authenticated user from the request context.
// Returns the user and a boolean indicating if it was found.
func CurrentUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.CurrentUserContextKey).(*domain.User)
	return user, ok && user != nil
}
