package handlers

import (
	"log"
	"net/http"

	"club-management-platform/internal/middleware"
	"club-management-platform/internal/models"
	"club-management-platform/internal/services"

	"github.com/gorilla/sessions"
)

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	authService services.AuthServiceInterface
	cartService services.CartServiceInterface
	store       sessions.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthServiceInterface, cartService services.CartServiceInterface, store sessions.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cartService: cartService,
		store:       store,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.UserCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	// Public registration always creates fan accounts
	req.Role = models.RoleFan

	user, err := h.authService.Register(&req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.authService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		// A corrupt cookie still yields a fresh session, anything else is fatal
		respondError(w, err)
		return
	}

	session.Values["user_id"] = user.ID
	if err := session.Save(r, w); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// Logout handles POST /auth/logout. Logging out discards the session and
// the user's cart.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	session, err := h.store.Get(r, middleware.SessionName)
	if err == nil {
		session.Values["user_id"] = nil
		session.Options.MaxAge = -1
		if err := session.Save(r, w); err != nil {
			respondError(w, err)
			return
		}
	}

	if user != nil {
		if err := h.cartService.Clear(user.ID); err != nil {
			log.Printf("Failed to clear cart for user %d on logout: %v", user.ID, err)
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, models.ErrNotAuthenticated)
		return
	}
	respondJSON(w, http.StatusOK, user)
}
