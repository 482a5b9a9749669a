package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"travelindia-backend/internal/apperrors"
	"travelindia-backend/internal/middleware"
	"travelindia-backend/internal/models"
	"travelindia-backend/internal/session"
	"travelindia-backend/pkg/utils"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	UserType string `json:"user_type"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	OK      bool            `json:"ok"`
	Token   string          `json:"token,omitempty"`
	Profile *models.Profile `json:"profile,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Register creates an account and signs the caller in.
func Register(provider *session.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		log.Printf("🔐 Registration attempt for: %s (%s)", req.Email, req.UserType)

		sess, err := provider.Register(r.Context(), req.Email, req.Password, req.FullName, models.UserType(req.UserType))
		if err != nil {
			// Duplicate accounts are a conflict, not bad credentials.
			var authErr *apperrors.AuthError
			if errors.As(err, &authErr) {
				utils.RespondJSON(w, http.StatusConflict, AuthResponse{OK: false, Error: authErr.Message})
				return
			}
			respondAppError(w, err)
			return
		}

		log.Printf("✅ Registered: %s (%s)", sess.Profile.Email, sess.Profile.UserType)
		utils.RespondJSON(w, http.StatusCreated, AuthResponse{OK: true, Token: sess.Token, Profile: &sess.Profile})
	}
}

// Login verifies credentials and returns a session token.
func Login(provider *session.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		log.Printf("🔐 Login attempt for: %s", req.Email)

		sess, err := provider.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			respondAppError(w, err)
			return
		}

		log.Printf("✅ Login successful: %s (%s)", sess.Profile.Email, sess.Profile.UserType)
		utils.RespondJSON(w, http.StatusOK, AuthResponse{OK: true, Token: sess.Token, Profile: &sess.Profile})
	}
}

// Logout ends the session. Tokens are stateless, so the server only
// acknowledges; the client discards its token.
func Logout(provider *session.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetUserFromContext(r)
		if ok {
			log.Printf("👋 Session ended: %s", claims.Email)
		}
		utils.RespondJSON(w, http.StatusOK, AuthResponse{OK: true})
	}
}

// GetAuthStatus returns the current identity's profile.
func GetAuthStatus(provider *session.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetUserFromContext(r)
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		profile, err := provider.ProfileFor(r.Context(), claims)
		if err != nil {
			respondAppError(w, err)
			return
		}

		utils.RespondJSON(w, http.StatusOK, AuthResponse{OK: true, Profile: profile})
	}
}
