package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"travelindia-backend/internal/booking"
	"travelindia-backend/internal/middleware"
	"travelindia-backend/internal/models"
	"travelindia-backend/internal/services"
	"travelindia-backend/internal/websocket"
	"travelindia-backend/pkg/utils"
)

// notifier delivers booking events to connected users.
type notifier interface {
	NotifyUser(userID string, data interface{})
}

type tokenLister interface {
	TokensForUser(ctx context.Context, userID string) ([]string, error)
}

type BookRideRequest struct {
	DriverID          string `json:"driver_id"` // optional override of the default candidate
	PickupLocation    string `json:"pickup_location"`
	DropoffLocation   string `json:"dropoff_location"`
	PickupTime        string `json:"pickup_time"` // RFC 3339
	Passengers        int    `json:"passengers"`
	VehiclePreference string `json:"vehicle_preference"`
}

type BookRideResponse struct {
	Success  bool         `json:"success"`
	Ride     *models.Ride `json:"ride,omitempty"`
	Error    string       `json:"error,omitempty"`
	Redirect string       `json:"redirect,omitempty"`
}

// BookRide runs one ride booking attempt end to end: reload candidates for
// the requested vehicle type, honor the driver override if sent, confirm.
func BookRide(drivers booking.DriverSource, rides booking.RideWriter, tokens tokenLister, hub notifier, fcm *services.FCMService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookRideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		touristID := ""
		if claims, ok := middleware.GetUserFromContext(r); ok {
			touristID = claims.UserID
		}

		pickupTime, _ := time.Parse(time.RFC3339, req.PickupTime)

		wf := booking.NewRideWorkflow(drivers, rides)
		if err := wf.LoadCandidates(r.Context(), models.VehicleType(req.VehiclePreference)); err != nil {
			respondAppError(w, err)
			return
		}
		if req.DriverID != "" && wf.Selected() != nil {
			if err := wf.Select(req.DriverID); err != nil {
				respondAppError(w, err)
				return
			}
		}

		driver := wf.Selected()
		ride, err := wf.Submit(r.Context(), touristID, booking.RideDetails{
			PickupLocation:    req.PickupLocation,
			DropoffLocation:   req.DropoffLocation,
			PickupTime:        pickupTime,
			Passengers:        req.Passengers,
			VehiclePreference: models.VehicleType(req.VehiclePreference),
		})
		if err != nil {
			if errors.Is(err, booking.ErrUnauthenticated) {
				utils.RespondJSON(w, http.StatusUnauthorized, BookRideResponse{
					Error:    "Please sign in to book a ride",
					Redirect: "signin",
				})
				return
			}
			if errors.Is(err, booking.ErrNoCandidate) {
				utils.RespondJSON(w, http.StatusConflict, BookRideResponse{
					Error: "No drivers available for the selected vehicle type",
				})
				return
			}
			respondAppError(w, err)
			return
		}

		log.Printf("✅ Ride booked: %s (tourist %s, driver %s)", ride.ID, touristID, driver.ID)

		event := websocket.BookingEvent{Type: "booking_created", Kind: "ride", BookingID: ride.ID, Booking: ride}
		hub.NotifyUser(touristID, event)
		hub.NotifyUser(driver.UserID, event)

		notifyRideBooked(r.Context(), tokens, fcm, driver.UserID, ride)

		utils.RespondJSON(w, http.StatusCreated, BookRideResponse{Success: true, Ride: ride})
	}
}

// notifyRideBooked pushes the new ride to the driver's devices, best effort.
func notifyRideBooked(ctx context.Context, tokens tokenLister, fcm *services.FCMService, driverUserID string, ride *models.Ride) {
	if fcm == nil {
		return
	}

	deviceTokens, err := tokens.TokensForUser(ctx, driverUserID)
	if err != nil {
		log.Printf("⚠️ Failed to load FCM tokens for %s: %v", driverUserID, err)
		return
	}

	for _, token := range deviceTokens {
		if err := fcm.SendRideBookedNotification(token, ride.PickupLocation, ride.DropoffLocation); err != nil {
			log.Printf("⚠️ FCM send failed: %v", err)
		}
	}
}
