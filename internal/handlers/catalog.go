package handlers

import (
	"context"
	"net/http"

	"travelindia-backend/internal/apperrors"
	"travelindia-backend/internal/catalog"
	"travelindia-backend/internal/models"
	"travelindia-backend/pkg/utils"
)

type destinationLister interface {
	ListByRating(ctx context.Context) ([]models.Destination, error)
}

type guideLister interface {
	ListAvailable(ctx context.Context) ([]models.GuideWithProfile, error)
}

// GetDestinations returns the destination catalog ordered by rating, with
// optional q / category filters applied over the fetched snapshot.
func GetDestinations(destinations destinationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := destinations.ListByRating(r.Context())
		if err != nil {
			respondAppError(w, apperrors.Store("list destinations", err))
			return
		}

		query := r.URL.Query().Get("q")
		category := models.DestinationCategory(r.URL.Query().Get("category"))

		filtered := catalog.FilterDestinations(snapshot, query, category)
		utils.RespondJSON(w, http.StatusOK, filtered)
	}
}

// GetGuides returns every available guide with profile, ordered by rating,
// with the optional q filter applied over the fetched snapshot.
func GetGuides(guides guideLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := guides.ListAvailable(r.Context())
		if err != nil {
			respondAppError(w, apperrors.Store("list guides", err))
			return
		}

		filtered := catalog.FilterGuides(snapshot, r.URL.Query().Get("q"))
		utils.RespondJSON(w, http.StatusOK, filtered)
	}
}
