package handlers

import (
	"errors"
	"log"
	"net/http"

	"travelindia-backend/internal/apperrors"
	"travelindia-backend/pkg/utils"
)

// respondAppError maps the shared error taxonomy onto HTTP statuses. Store
// failures are logged with their cause but surfaced as a generic
// retry-suggesting message.
func respondAppError(w http.ResponseWriter, err error) {
	var validationErr *apperrors.ValidationError
	var authErr *apperrors.AuthError
	var stateErr *apperrors.StateError
	var storeErr *apperrors.StoreError

	switch {
	case errors.As(err, &validationErr):
		utils.RespondError(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &authErr):
		utils.RespondError(w, http.StatusUnauthorized, authErr.Message)
	case errors.As(err, &stateErr):
		utils.RespondError(w, http.StatusConflict, stateErr.Reason)
	case errors.As(err, &storeErr):
		log.Printf("❌ Store error: %v", storeErr)
		utils.RespondError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
	default:
		log.Printf("❌ Unexpected error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
