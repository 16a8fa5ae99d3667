package middleware

import (
	"context"
	"net/http"

	"club-management-platform/internal/models"
	"club-management-platform/internal/services"

	"github.com/gorilla/sessions"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// SessionName is the cookie under which the user session is stored.
const SessionName = "session"

// AuthMiddleware resolves the session cookie to a user
type AuthMiddleware struct {
	authService services.AuthServiceInterface
	store       sessions.Store
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(authService services.AuthServiceInterface, store sessions.Store) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		store:       store,
	}
}

// LoadUser loads the current user from the session cookie and adds it to
// the request context. Requests without a valid session continue
// anonymously.
func (m *AuthMiddleware) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := session.Values["user_id"].(int)
		if !ok || userID == 0 {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.authService.GetUserByID(userID)
		if err != nil {
			// Stale session pointing at a deleted user, drop it
			session.Values["user_id"] = nil
			session.Options.MaxAge = -1
			session.Save(r, w)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests that do not carry an authenticated user
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserFromContext(r.Context()) == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"authentication required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests from users without the admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r.Context())
		if user == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"authentication required"}`))
			return
		}
		if !user.IsAdmin() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"admin access required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext retrieves the user from request context
func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// SetUserContext sets the user in the context (for testing)
func SetUserContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
