package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"travelindia-backend/internal/middleware"
	"travelindia-backend/pkg/utils"
)

type tokenRegistrar interface {
	Register(ctx context.Context, userID, token, deviceType string) error
}

type RegisterFCMTokenRequest struct {
	Token      string `json:"token"`
	DeviceType string `json:"device_type"` // "ios" or "android"
}

// RegisterFCMToken stores a device token so booking pushes can reach the
// current identity's devices.
func RegisterFCMToken(tokens tokenRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetUserFromContext(r)
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req RegisterFCMTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Token == "" {
			utils.RespondError(w, http.StatusBadRequest, "Token is required")
			return
		}
		if req.DeviceType == "" {
			req.DeviceType = "android"
		}

		if err := tokens.Register(r.Context(), claims.UserID, req.Token, req.DeviceType); err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to register token")
			return
		}

		utils.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
