package handlers

import (
	"context"
	"log"
	"net/http"

	"travelindia-backend/internal/middleware"
	"travelindia-backend/internal/models"
	"travelindia-backend/pkg/utils"
)

type rideLister interface {
	ListByTourist(ctx context.Context, touristID string) ([]models.RideWithDriver, error)
}

type guideBookingLister interface {
	ListByTourist(ctx context.Context, touristID string) ([]models.GuideBookingDetail, error)
}

type DashboardResponse struct {
	Rides              []models.RideWithDriver     `json:"rides"`
	GuideBookings      []models.GuideBookingDetail `json:"guide_bookings"`
	TotalRides         int                         `json:"total_rides"`
	TotalGuideBookings int                         `json:"total_guide_bookings"`
	ActiveCount        int                         `json:"active_count"`
}

// GetDashboard aggregates the current identity's bookings: two independent
// join fetches grouped for display. A failed fetch leaves its collection
// empty rather than failing the whole summary; reloading the page is the
// recovery path.
func GetDashboard(rides rideLister, guideBookings guideBookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetUserFromContext(r)
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		rideRows, err := rides.ListByTourist(r.Context(), claims.UserID)
		if err != nil {
			log.Printf("⚠️ Dashboard rides fetch failed for %s: %v", claims.UserID, err)
			rideRows = []models.RideWithDriver{}
		}

		bookingRows, err := guideBookings.ListByTourist(r.Context(), claims.UserID)
		if err != nil {
			log.Printf("⚠️ Dashboard guide bookings fetch failed for %s: %v", claims.UserID, err)
			bookingRows = []models.GuideBookingDetail{}
		}

		utils.RespondJSON(w, http.StatusOK, DashboardResponse{
			Rides:              rideRows,
			GuideBookings:      bookingRows,
			TotalRides:         len(rideRows),
			TotalGuideBookings: len(bookingRows),
			ActiveCount:        models.CountActive(rideRows, bookingRows),
		})
	}
}
