// Package booking implements the availability and fare-confirmation
// workflow. Each booking attempt is one workflow value moving through
// Idle → CandidatesLoaded → Selected → Submitting → Succeeded/Failed.
// Candidates are drivers or guides, filtered by availability and ranked by
// rating; the top-ranked one is pre-selected and the user may override it
// any time before confirming.
package booking

import (
	"context"
	"time"

	"travelindia-backend/internal/apperrors"
	"travelindia-backend/internal/models"

	"github.com/google/uuid"
)

type State string

const (
	StateIdle             State = "idle"
	StateCandidatesLoaded State = "candidates_loaded"
	StateSelected         State = "selected"
	StateSubmitting       State = "submitting"
	StateSucceeded        State = "succeeded"
	StateFailed           State = "failed"
)

const (
	// MaxDriverCandidates caps how many drivers are offered per attempt.
	MaxDriverCandidates = 3

	MinDurationHours = 1
	MaxDurationHours = 12
)

// Sentinel state errors. ErrUnauthenticated leaves the attempt dead and the
// caller redirects to sign-in; every other failure returns the attempt to
// its selectable state.
var (
	ErrUnauthenticated = &apperrors.StateError{Reason: "Please sign in to book"}
	ErrNoCandidate     = &apperrors.StateError{Reason: "No candidates available for the selected type"}
)

// Candidate is a driver or guide eligible for the current attempt.
type Candidate interface {
	CandidateID() string
	CandidateRating() float64
}

// DriverSource lists available drivers for a vehicle type, best rated first.
type DriverSource interface {
	AvailableByVehicleType(ctx context.Context, vehicleType models.VehicleType, limit int) ([]models.Driver, error)
}

// GuideSource lists available guides with their profiles, best rated first.
type GuideSource interface {
	ListAvailable(ctx context.Context) ([]models.GuideWithProfile, error)
}

type RideWriter interface {
	Insert(ctx context.Context, ride *models.Ride) error
}

type GuideBookingWriter interface {
	Insert(ctx context.Context, booking *models.GuideBooking) error
}

// RideDetails is the user input confirmed alongside the selected driver.
type RideDetails struct {
	PickupLocation    string
	DropoffLocation   string
	PickupTime        time.Time
	Passengers        int
	VehiclePreference models.VehicleType
}

// GuideBookingDetails is the user input confirmed alongside the selected
// guide.
type GuideBookingDetails struct {
	BookingDate   time.Time
	DurationHours int
	DestinationID *string
}

// RideWorkflow drives one ride booking attempt.
type RideWorkflow struct {
	drivers DriverSource
	rides   RideWriter

	state      State
	candidates []models.Driver
	selected   *models.Driver
	reloadSeq  uint64
}

func NewRideWorkflow(drivers DriverSource, rides RideWriter) *RideWorkflow {
	return &RideWorkflow{drivers: drivers, rides: rides, state: StateIdle}
}

func (w *RideWorkflow) State() State                 { return w.state }
func (w *RideWorkflow) Candidates() []models.Driver  { return w.candidates }
func (w *RideWorkflow) Selected() *models.Driver     { return w.selected }

// LoadCandidates fetches up to MaxDriverCandidates available drivers for the
// vehicle type and pre-selects the top-ranked one. An empty result is a
// valid state that blocks submission. A reload triggered while an earlier
// one is still unresolved supersedes it: only the latest reload's result is
// applied.
func (w *RideWorkflow) LoadCandidates(ctx context.Context, vehicleType models.VehicleType) error {
	if !models.ValidVehicleTypes[vehicleType] {
		return apperrors.Validation("vehicle_type", "Unknown vehicle type %q", vehicleType)
	}

	w.reloadSeq++
	seq := w.reloadSeq

	drivers, err := w.drivers.AvailableByVehicleType(ctx, vehicleType, MaxDriverCandidates)
	if err != nil {
		return apperrors.Store("load drivers", err)
	}
	if seq != w.reloadSeq {
		// Superseded by a later reload, discard this result.
		return nil
	}

	w.candidates = drivers
	if len(drivers) > 0 {
		w.selected = &w.candidates[0]
		w.state = StateSelected
	} else {
		w.selected = nil
		w.state = StateCandidatesLoaded
	}
	return nil
}

// Select overrides the default candidate. The driver must be in the current
// candidate list.
func (w *RideWorkflow) Select(driverID string) error {
	for i := range w.candidates {
		if w.candidates[i].ID == driverID {
			w.selected = &w.candidates[i]
			w.state = StateSelected
			return nil
		}
	}
	return &apperrors.StateError{Reason: "Selected driver is not in the candidate list"}
}

// Submit confirms the attempt and persists a pending ride for the identity.
// Fare is left unset; an external dispatch process assigns it later.
func (w *RideWorkflow) Submit(ctx context.Context, touristID string, details RideDetails) (*models.Ride, error) {
	if touristID == "" {
		w.state = StateFailed
		return nil, ErrUnauthenticated
	}
	if w.selected == nil {
		return nil, ErrNoCandidate
	}

	if err := validateRideDetails(details); err != nil {
		return nil, err
	}

	w.state = StateSubmitting
	now := time.Now().Unix()
	driverID := w.selected.ID
	ride := &models.Ride{
		ID:                uuid.New().String(),
		TouristID:         touristID,
		DriverID:          &driverID,
		PickupLocation:    details.PickupLocation,
		DropoffLocation:   details.DropoffLocation,
		PickupTime:        details.PickupTime,
		Passengers:        details.Passengers,
		VehiclePreference: details.VehiclePreference,
		Status:            models.StatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := w.rides.Insert(ctx, ride); err != nil {
		// Failed but re-submittable: the attempt drops back to Selected.
		w.state = StateSelected
		return nil, apperrors.Store("insert ride", err)
	}

	w.state = StateSucceeded
	return ride, nil
}

func validateRideDetails(d RideDetails) error {
	if d.PickupLocation == "" {
		return apperrors.Validation("pickup_location", "Pickup location is required")
	}
	if d.DropoffLocation == "" {
		return apperrors.Validation("dropoff_location", "Dropoff location is required")
	}
	if d.PickupTime.IsZero() {
		return apperrors.Validation("pickup_time", "Pickup time is required")
	}
	if d.Passengers < 1 || d.Passengers > 12 {
		return apperrors.Validation("passengers", "Passengers must be between 1 and 12")
	}
	return nil
}

// GuideWorkflow drives one guide booking attempt.
type GuideWorkflow struct {
	guides   GuideSource
	bookings GuideBookingWriter

	state      State
	candidates []models.GuideWithProfile
	selected   *models.GuideWithProfile
	reloadSeq  uint64
}

func NewGuideWorkflow(guides GuideSource, bookings GuideBookingWriter) *GuideWorkflow {
	return &GuideWorkflow{guides: guides, bookings: bookings, state: StateIdle}
}

func (w *GuideWorkflow) State() State                           { return w.state }
func (w *GuideWorkflow) Candidates() []models.GuideWithProfile  { return w.candidates }
func (w *GuideWorkflow) Selected() *models.GuideWithProfile     { return w.selected }

// LoadCandidates fetches every available guide, best rated first, and
// pre-selects the top-ranked one.
func (w *GuideWorkflow) LoadCandidates(ctx context.Context) error {
	w.reloadSeq++
	seq := w.reloadSeq

	guides, err := w.guides.ListAvailable(ctx)
	if err != nil {
		return apperrors.Store("load guides", err)
	}
	if seq != w.reloadSeq {
		return nil
	}

	w.candidates = guides
	if len(guides) > 0 {
		w.selected = &w.candidates[0]
		w.state = StateSelected
	} else {
		w.selected = nil
		w.state = StateCandidatesLoaded
	}
	return nil
}

func (w *GuideWorkflow) Select(guideID string) error {
	for i := range w.candidates {
		if w.candidates[i].ID == guideID {
			w.selected = &w.candidates[i]
			w.state = StateSelected
			return nil
		}
	}
	return &apperrors.StateError{Reason: "Selected guide is not in the candidate list"}
}

// Submit confirms the attempt and persists a pending guide booking. Total
// cost is computed exactly once here, from the selected guide's hourly rate
// at selection time, and never recomputed afterwards.
func (w *GuideWorkflow) Submit(ctx context.Context, touristID string, details GuideBookingDetails) (*models.GuideBooking, error) {
	if touristID == "" {
		w.state = StateFailed
		return nil, ErrUnauthenticated
	}
	if w.selected == nil {
		return nil, ErrNoCandidate
	}

	if details.BookingDate.IsZero() {
		return nil, apperrors.Validation("booking_date", "Booking date is required")
	}
	if details.DurationHours < MinDurationHours || details.DurationHours > MaxDurationHours {
		return nil, apperrors.Validation("duration_hours", "Duration must be between %d and %d hours", MinDurationHours, MaxDurationHours)
	}

	w.state = StateSubmitting
	booking := &models.GuideBooking{
		ID:            uuid.New().String(),
		TouristID:     touristID,
		GuideID:       w.selected.ID,
		DestinationID: details.DestinationID,
		BookingDate:   details.BookingDate,
		DurationHours: details.DurationHours,
		Status:        models.StatusPending,
		TotalCost:     w.selected.HourlyRate * float64(details.DurationHours),
		CreatedAt:     time.Now().Unix(),
	}

	if err := w.bookings.Insert(ctx, booking); err != nil {
		w.state = StateSelected
		return nil, apperrors.Store("insert guide booking", err)
	}

	w.state = StateSucceeded
	return booking, nil
}
