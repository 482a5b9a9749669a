package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"travelindia-backend/internal/apperrors"
	"travelindia-backend/internal/models"
)

type fakeDriverSource struct {
	drivers []models.Driver
	err     error
	gotType models.VehicleType
	gotLim  int
}

func (f *fakeDriverSource) AvailableByVehicleType(_ context.Context, vt models.VehicleType, limit int) ([]models.Driver, error) {
	f.gotType = vt
	f.gotLim = limit
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Driver, 0, limit)
	for _, d := range f.drivers {
		if d.VehicleType == vt && d.Available {
			out = append(out, d)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeGuideSource struct {
	guides []models.GuideWithProfile
	err    error
}

func (f *fakeGuideSource) ListAvailable(context.Context) ([]models.GuideWithProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.guides, nil
}

type fakeRideWriter struct {
	inserted []*models.Ride
	err      error
}

func (f *fakeRideWriter) Insert(_ context.Context, ride *models.Ride) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, ride)
	return nil
}

type fakeGuideBookingWriter struct {
	inserted []*models.GuideBooking
	err      error
}

func (f *fakeGuideBookingWriter) Insert(_ context.Context, b *models.GuideBooking) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, b)
	return nil
}

// sedanFleet mirrors the seeded setup: three available sedans plus drivers
// that must never surface for a sedan request.
func sedanFleet() []models.Driver {
	return []models.Driver{
		{ID: "drv-1", UserID: "user-driver-1", VehicleType: models.VehicleSedan, Rating: 4.9, Available: true},
		{ID: "drv-2", UserID: "user-driver-2", VehicleType: models.VehicleSedan, Rating: 4.7, Available: true},
		{ID: "drv-3", UserID: "user-driver-3", VehicleType: models.VehicleSedan, Rating: 4.5, Available: true},
		{ID: "drv-4", UserID: "user-driver-4", VehicleType: models.VehicleSUV, Rating: 5.0, Available: true},
		{ID: "drv-5", UserID: "user-driver-5", VehicleType: models.VehicleSedan, Rating: 4.8, Available: false},
	}
}

func validRideDetails() RideDetails {
	return RideDetails{
		PickupLocation:    "Connaught Place",
		DropoffLocation:   "Indira Gandhi International Airport",
		PickupTime:        time.Date(2026, 9, 12, 9, 30, 0, 0, time.UTC),
		Passengers:        2,
		VehiclePreference: models.VehicleSedan,
	}
}

func TestRideWorkflowLoadsRankedCandidatesAndPreselectsTop(t *testing.T) {
	source := &fakeDriverSource{drivers: sedanFleet()}
	w := NewRideWorkflow(source, &fakeRideWriter{})

	if err := w.LoadCandidates(context.Background(), models.VehicleSedan); err != nil {
		t.Fatalf("LoadCandidates: %v", err)
	}

	if source.gotLim != MaxDriverCandidates {
		t.Errorf("limit: got %d, want %d", source.gotLim, MaxDriverCandidates)
	}
	candidates := w.Candidates()
	if len(candidates) != 3 {
		t.Fatalf("candidates: got %d, want 3", len(candidates))
	}
	wantRatings := []float64{4.9, 4.7, 4.5}
	for i, d := range candidates {
		if d.Rating != wantRatings[i] {
			t.Errorf("candidate %d rating: got %v, want %v", i, d.Rating, wantRatings[i])
		}
		if d.VehicleType != models.VehicleSedan {
			t.Errorf("candidate %d vehicle type: got %q, want sedan", i, d.VehicleType)
		}
	}
	if w.Selected() == nil || w.Selected().ID != "drv-1" {
		t.Errorf("pre-selected: got %+v, want drv-1", w.Selected())
	}
	if w.State() != StateSelected {
		t.Errorf("state: got %q, want %q", w.State(), StateSelected)
	}
}

func TestRideWorkflowRejectsUnknownVehicleType(t *testing.T) {
	w := NewRideWorkflow(&fakeDriverSource{}, &fakeRideWriter{})

	err := w.LoadCandidates(context.Background(), "rickshaw")
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if verr.Field != "vehicle_type" {
		t.Errorf("field: got %q, want vehicle_type", verr.Field)
	}
}

func TestRideWorkflowEmptyCandidatesBlocksSubmit(t *testing.T) {
	source := &fakeDriverSource{drivers: sedanFleet()}
	writer := &fakeRideWriter{}
	w := NewRideWorkflow(source, writer)

	// No tempo in the fleet.
	if err := w.LoadCandidates(context.Background(), models.VehicleTempo); err != nil {
		t.Fatalf("LoadCandidates: %v", err)
	}
	if w.State() != StateCandidatesLoaded {
		t.Errorf("state: got %q, want %q", w.State(), StateCandidatesLoaded)
	}
	if w.Selected() != nil {
		t.Errorf("selected: got %+v, want nil", w.Selected())
	}

	_, err := w.Submit(context.Background(), "user-tourist-1", validRideDetails())
	if !errors.Is(err, ErrNoCandidate) {
		t.Fatalf("got %v, want ErrNoCandidate", err)
	}
	if len(writer.inserted) != 0 {
		t.Errorf("inserted %d rides, want 0", len(writer.inserted))
	}
}

func TestRideWorkflowSelectOverridesDefault(t *testing.T) {
	w := NewRideWorkflow(&fakeDriverSource{drivers: sedanFleet()}, &fakeRideWriter{})
	if err := w.LoadCandidates(context.Background(), models.VehicleSedan); err != nil {
		t.Fatalf("LoadCandidates: %v", err)
	}

	if err := w.Select("drv-3"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if w.Selected().ID != "drv-3" {
		t.Errorf("selected: got %q, want drv-3", w.Selected().ID)
	}

	err := w.Select("drv-4")
	var serr *apperrors.StateError
	if !errors.As(err, &serr) {
		t.Fatalf("selecting an off-list driver: got %v, want StateError", err)
	}
	if w.Selected().ID != "drv-3" {
		t.Errorf("selection changed after rejected override: got %q", w.Selected().ID)
	}
}

func TestRideWorkflowSubmitPersistsPendingRide(t *testing.T) {
	writer := &fakeRideWriter{}
	w := NewRideWorkflow(&fakeDriverSource{drivers: sedanFleet()}, writer)
	if err := w.LoadCandidates(context.Background(), models.VehicleSedan); err != nil {
		t.Fatalf("LoadCandidates: %v", err)
	}

	details := validRideDetails()
	ride, err := w.Submit(context.Background(), "user-tourist-1", details)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if w.State() != StateSucceeded {
		t.Errorf("state: got %q, want %q", w.State(), StateSucceeded)
	}
	if len(writer.inserted) != 1 {
		t.Fatalf("inserted %d rides, want 1", len(writer.inserted))
	}

	if ride.Status != models.StatusPending {
		t.Errorf("status: got %q, want pending", ride.Status)
	}
	if ride.Fare != nil {
		t.Errorf("fare: got %v, want unset", *ride.Fare)
	}
	if ride.DriverID == nil || *ride.DriverID != "drv-1" {
		t.Errorf("driver: got %v, want drv-1", ride.DriverID)
	}
	if ride.TouristID != "user-tourist-1" {
		t.Errorf("tourist: got %q", ride.TouristID)
	}
	if !ride.PickupTime.Equal(details.PickupTime) {
		t.Errorf("pickup time: got %v, want %v", ride.PickupTime, details.PickupTime)
	}
}

func TestRideWorkflowUnauthenticatedSubmitWritesNothing(t *testing.T) {
	writer := &fakeRideWriter{}
	w := NewRideWorkflow(&fakeDriverSource{drivers: sedanFleet()}, writer)
	if err := w.LoadCandidates(context.Background(), models.VehicleSedan); err != nil {
		t.Fatalf("LoadCandidates: %v", err)
	}

	_, err := w.Submit(context.Background(), "", validRideDetails())
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("got %v, want ErrUnauthenticated", err)
	}
	if len(writer.inserted) != 0 {
		t.Errorf("inserted %d rides, want 0", len(writer.inserted))
	}
	if w.State() != StateFailed {
		t.Errorf("state: got %q, want %q", w.State(), StateFailed)
	}
}

func TestRideWorkflowSubmitValidatesDetails(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RideDetails)
		field  string
	}{
		{"missing pickup", func(d *RideDetails) { d.PickupLocation = "" }, "pickup_location"},
		{"missing dropoff", func(d *RideDetails) { d.DropoffLocation = "" }, "dropoff_location"},
		{"missing time", func(d *RideDetails) { d.PickupTime = time.Time{} }, "pickup_time"},
		{"zero passengers", func(d *RideDetails) { d.Passengers = 0 }, "passengers"},
		{"too many passengers", func(d *RideDetails) { d.Passengers = 13 }, "passengers"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			writer := &fakeRideWriter{}
			w := NewRideWorkflow(&fakeDriverSource{drivers: sedanFleet()}, writer)
			if err := w.LoadCandidates(context.Background(), models.VehicleSedan); err != nil {
				t.Fatalf("LoadCandidates: %v", err)
			}

			details := validRideDetails()
			tc.mutate(&details)

			_, err := w.Submit(context.Background(), "user-tourist-1", details)
			var verr *apperrors.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Errorf("field: got %q, want %q", verr.Field, tc.field)
			}
			if len(writer.inserted) != 0 {
				t.Errorf("inserted %d rides, want 0", len(writer.inserted))
			}
		})
	}
}

func TestRideWorkflowInsertFailureReturnsToSelected(t *testing.T) {
	writer := &fakeRideWriter{err: errors.New("connection reset")}
	w := NewRideWorkflow(&fakeDriverSource{drivers: sedanFleet()}, writer)
	if err := w.LoadCandidates(context.Background(), models.VehicleSedan); err != nil {
		t.Fatalf("LoadCandidates: %v", err)
	}

	_, err := w.Submit(context.Background(), "user-tourist-1", validRideDetails())
	var serr *apperrors.StoreError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want StoreError", err)
	}
	if w.State() != StateSelected {
		t.Errorf("state: got %q, want %q", w.State(), StateSelected)
	}
	if w.Selected() == nil || w.Selected().ID != "drv-1" {
		t.Errorf("selection lost after failed submit: %+v", w.Selected())
	}

	// The attempt stays live: a retry with a working store succeeds.
	writer.err = nil
	if _, err := w.Submit(context.Background(), "user-tourist-1", validRideDetails()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if w.State() != StateSucceeded {
		t.Errorf("state after retry: got %q, want %q", w.State(), StateSucceeded)
	}
}

func availableGuides() []models.GuideWithProfile {
	return []models.GuideWithProfile{
		{Guide: models.Guide{ID: "gd-1", HourlyRate: 500, Rating: 4.9, Available: true}, FullName: "Priya Nair"},
		{Guide: models.Guide{ID: "gd-2", HourlyRate: 350, Rating: 4.6, Available: true}, FullName: "Arjun Mehta"},
	}
}

func TestGuideWorkflowCostIsRateTimesDuration(t *testing.T) {
	writer := &fakeGuideBookingWriter{}
	w := NewGuideWorkflow(&fakeGuideSource{guides: availableGuides()}, writer)
	if err := w.LoadCandidates(context.Background()); err != nil {
		t.Fatalf("LoadCandidates: %v", err)
	}
	if w.Selected() == nil || w.Selected().ID != "gd-1" {
		t.Fatalf("pre-selected: got %+v, want gd-1", w.Selected())
	}

	booking, err := w.Submit(context.Background(), "user-tourist-1", GuideBookingDetails{
		BookingDate:   time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		DurationHours: 4,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if booking.TotalCost != 2000 {
		t.Errorf("total cost: got %v, want 2000", booking.TotalCost)
	}
	if booking.Status != models.StatusPending {
		t.Errorf("status: got %q, want pending", booking.Status)
	}
	if booking.GuideID != "gd-1" {
		t.Errorf("guide: got %q, want gd-1", booking.GuideID)
	}
	if len(writer.inserted) != 1 {
		t.Errorf("inserted %d bookings, want 1", len(writer.inserted))
	}
}

func TestGuideWorkflowCostFollowsOverriddenSelection(t *testing.T) {
	w := NewGuideWorkflow(&fakeGuideSource{guides: availableGuides()}, &fakeGuideBookingWriter{})
	if err := w.LoadCandidates(context.Background()); err != nil {
		t.Fatalf("LoadCandidates: %v", err)
	}
	if err := w.Select("gd-2"); err != nil {
		t.Fatalf("Select: %v", err)
	}

	booking, err := w.Submit(context.Background(), "user-tourist-1", GuideBookingDetails{
		BookingDate:   time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		DurationHours: 3,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if booking.TotalCost != 1050 {
		t.Errorf("total cost: got %v, want 1050", booking.TotalCost)
	}
}

func TestGuideWorkflowRejectsOutOfRangeDuration(t *testing.T) {
	for _, hours := range []int{0, -1, 13} {
		writer := &fakeGuideBookingWriter{}
		w := NewGuideWorkflow(&fakeGuideSource{guides: availableGuides()}, writer)
		if err := w.LoadCandidates(context.Background()); err != nil {
			t.Fatalf("LoadCandidates: %v", err)
		}

		_, err := w.Submit(context.Background(), "user-tourist-1", GuideBookingDetails{
			BookingDate:   time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
			DurationHours: hours,
		})
		var verr *apperrors.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("duration %d: got %v, want ValidationError", hours, err)
		}
		if len(writer.inserted) != 0 {
			t.Errorf("duration %d: inserted %d bookings, want 0", hours, len(writer.inserted))
		}
	}

	// Boundary durations are accepted.
	for _, hours := range []int{1, 12} {
		w := NewGuideWorkflow(&fakeGuideSource{guides: availableGuides()}, &fakeGuideBookingWriter{})
		if err := w.LoadCandidates(context.Background()); err != nil {
			t.Fatalf("LoadCandidates: %v", err)
		}
		if _, err := w.Submit(context.Background(), "user-tourist-1", GuideBookingDetails{
			BookingDate:   time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
			DurationHours: hours,
		}); err != nil {
			t.Errorf("duration %d: %v", hours, err)
		}
	}
}

func TestGuideWorkflowUnauthenticatedSubmitWritesNothing(t *testing.T) {
	writer := &fakeGuideBookingWriter{}
	w := NewGuideWorkflow(&fakeGuideSource{guides: availableGuides()}, writer)
	if err := w.LoadCandidates(context.Background()); err != nil {
		t.Fatalf("LoadCandidates: %v", err)
	}

	_, err := w.Submit(context.Background(), "", GuideBookingDetails{
		BookingDate:   time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		DurationHours: 2,
	})
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("got %v, want ErrUnauthenticated", err)
	}
	if len(writer.inserted) != 0 {
		t.Errorf("inserted %d bookings, want 0", len(writer.inserted))
	}
	if w.State() != StateFailed {
		t.Errorf("state: got %q, want %q", w.State(), StateFailed)
	}
}

func TestGuideWorkflowNoGuidesBlocksSubmit(t *testing.T) {
	writer := &fakeGuideBookingWriter{}
	w := NewGuideWorkflow(&fakeGuideSource{}, writer)
	if err := w.LoadCandidates(context.Background()); err != nil {
		t.Fatalf("LoadCandidates: %v", err)
	}
	if w.State() != StateCandidatesLoaded {
		t.Errorf("state: got %q, want %q", w.State(), StateCandidatesLoaded)
	}

	_, err := w.Submit(context.Background(), "user-tourist-1", GuideBookingDetails{
		BookingDate:   time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		DurationHours: 2,
	})
	if !errors.Is(err, ErrNoCandidate) {
		t.Fatalf("got %v, want ErrNoCandidate", err)
	}
	if len(writer.inserted) != 0 {
		t.Errorf("inserted %d bookings, want 0", len(writer.inserted))
	}
}
