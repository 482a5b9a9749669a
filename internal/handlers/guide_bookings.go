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

type BookGuideRequest struct {
	GuideID       string  `json:"guide_id"`
	DestinationID *string `json:"destination_id"`
	BookingDate   string  `json:"booking_date"` // "2006-01-02" or RFC 3339
	DurationHours int     `json:"duration_hours"`
}

type BookGuideResponse struct {
	Success  bool                 `json:"success"`
	Booking  *models.GuideBooking `json:"booking,omitempty"`
	Error    string               `json:"error,omitempty"`
	Redirect string               `json:"redirect,omitempty"`
}

// BookGuide runs one guide booking attempt: load the available guides,
// select the requested one, confirm with the cost computed at submission.
func BookGuide(guides booking.GuideSource, bookings booking.GuideBookingWriter, tokens tokenLister, hub notifier, fcm *services.FCMService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookGuideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		touristID := ""
		if claims, ok := middleware.GetUserFromContext(r); ok {
			touristID = claims.UserID
		}

		wf := booking.NewGuideWorkflow(guides, bookings)
		if err := wf.LoadCandidates(r.Context()); err != nil {
			respondAppError(w, err)
			return
		}
		if req.GuideID != "" && wf.Selected() != nil {
			if err := wf.Select(req.GuideID); err != nil {
				respondAppError(w, err)
				return
			}
		}

		guide := wf.Selected()
		bookingRecord, err := wf.Submit(r.Context(), touristID, booking.GuideBookingDetails{
			BookingDate:   parseBookingDate(req.BookingDate),
			DurationHours: req.DurationHours,
			DestinationID: req.DestinationID,
		})
		if err != nil {
			if errors.Is(err, booking.ErrUnauthenticated) {
				utils.RespondJSON(w, http.StatusUnauthorized, BookGuideResponse{
					Error:    "Please sign in to book a guide",
					Redirect: "signin",
				})
				return
			}
			if errors.Is(err, booking.ErrNoCandidate) {
				utils.RespondJSON(w, http.StatusConflict, BookGuideResponse{
					Error: "No guides are available right now",
				})
				return
			}
			respondAppError(w, err)
			return
		}

		log.Printf("✅ Guide booked: %s (tourist %s, guide %s, ₹%.0f)", bookingRecord.ID, touristID, guide.ID, bookingRecord.TotalCost)

		event := websocket.BookingEvent{Type: "booking_created", Kind: "guide_booking", BookingID: bookingRecord.ID, Booking: bookingRecord}
		hub.NotifyUser(touristID, event)
		hub.NotifyUser(guide.UserID, event)

		notifyGuideBooked(r.Context(), tokens, fcm, guide.UserID, bookingRecord)

		utils.RespondJSON(w, http.StatusCreated, BookGuideResponse{Success: true, Booking: bookingRecord})
	}
}

// parseBookingDate accepts the date-picker format first, then full RFC 3339.
// A zero time falls through to the workflow's validation.
func parseBookingDate(s string) time.Time {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// notifyGuideBooked pushes the new booking to the guide's devices, best
// effort.
func notifyGuideBooked(ctx context.Context, tokens tokenLister, fcm *services.FCMService, guideUserID string, b *models.GuideBooking) {
	if fcm == nil {
		return
	}

	deviceTokens, err := tokens.TokensForUser(ctx, guideUserID)
	if err != nil {
		log.Printf("⚠️ Failed to load FCM tokens for %s: %v", guideUserID, err)
		return
	}

	for _, token := range deviceTokens {
		if err := fcm.SendGuideBookedNotification(token, b.BookingDate.Format("2006-01-02"), b.DurationHours, b.TotalCost); err != nil {
			log.Printf("⚠️ FCM send failed: %v", err)
		}
	}
}
