package handlers

import (
	"net/http"

	"travelindia-backend/internal/booking"
	"travelindia-backend/internal/models"
	"travelindia-backend/pkg/utils"
)

type AvailableDriversResponse struct {
	Drivers         []models.Driver `json:"drivers"`
	DefaultDriverID string          `json:"default_driver_id,omitempty"`
}

// GetAvailableDrivers returns the candidate list for a vehicle type: up to
// three available drivers, best rated first, with the top one marked as the
// default selection.
func GetAvailableDrivers(drivers booking.DriverSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleType := models.VehicleType(r.URL.Query().Get("vehicle_type"))

		wf := booking.NewRideWorkflow(drivers, nil)
		if err := wf.LoadCandidates(r.Context(), vehicleType); err != nil {
			respondAppError(w, err)
			return
		}

		resp := AvailableDriversResponse{Drivers: wf.Candidates()}
		if selected := wf.Selected(); selected != nil {
			resp.DefaultDriverID = selected.ID
		}
		utils.RespondJSON(w, http.StatusOK, resp)
	}
}
