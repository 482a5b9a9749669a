package models

import (
	"database/sql"
	"time"
)

// BookingStatus is the lifecycle state of a ride or guide booking.
// This application only ever writes "pending"; every later transition
// belongs to an external process.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"  // rides only
	StatusConfirmed BookingStatus = "confirmed" // guide bookings only
	StatusOngoing   BookingStatus = "ongoing"   // rides only
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ActiveBookingStatuses are the statuses counted as "active" on the dashboard.
var ActiveBookingStatuses = map[BookingStatus]bool{
	StatusPending:   true,
	StatusAccepted:  true,
	StatusConfirmed: true,
	StatusOngoing:   true,
}

// Ride is a ride booking request. DriverID is nullable until matched and
// Fare stays unset at creation; an external dispatch process assigns it.
type Ride struct {
	ID                string        `json:"id" db:"id"`
	TouristID         string        `json:"tourist_id" db:"tourist_id"`
	DriverID          *string       `json:"driver_id" db:"driver_id"`
	PickupLocation    string        `json:"pickup_location" db:"pickup_location"`
	DropoffLocation   string        `json:"dropoff_location" db:"dropoff_location"`
	PickupTime        time.Time     `json:"pickup_time" db:"pickup_time"`
	Passengers        int           `json:"passengers" db:"passengers"`
	VehiclePreference VehicleType   `json:"vehicle_preference" db:"vehicle_preference"`
	Status            BookingStatus `json:"status" db:"status"`
	Fare              *float64      `json:"fare" db:"fare"`
	CreatedAt         int64         `json:"created_at" db:"created_at"`
	UpdatedAt         int64         `json:"updated_at" db:"updated_at"`
}

// GuideBooking is a guide booking request. TotalCost is computed once at
// submission from the guide's rate at selection time and never recomputed.
type GuideBooking struct {
	ID            string        `json:"id" db:"id"`
	TouristID     string        `json:"tourist_id" db:"tourist_id"`
	GuideID       string        `json:"guide_id" db:"guide_id"`
	DestinationID *string       `json:"destination_id" db:"destination_id"`
	BookingDate   time.Time     `json:"booking_date" db:"booking_date"`
	DurationHours int           `json:"duration_hours" db:"duration_hours"`
	Status        BookingStatus `json:"status" db:"status"`
	TotalCost     float64       `json:"total_cost" db:"total_cost"`
	CreatedAt     int64         `json:"created_at" db:"created_at"`
}

// RideWithDriver joins a ride with the matched driver's display fields,
// all nullable because DriverID may still be unset.
type RideWithDriver struct {
	Ride
	DriverVehicleType   *string  `json:"driver_vehicle_type" db:"driver_vehicle_type"`
	DriverVehicleNumber *string  `json:"driver_vehicle_number" db:"driver_vehicle_number"`
	DriverRating        *float64 `json:"driver_rating" db:"driver_rating"`
}

// GuideBookingDetail joins a guide booking with its guide, the guide's
// profile name and the optional destination name.
type GuideBookingDetail struct {
	GuideBooking
	GuideHourlyRate float64 `json:"guide_hourly_rate" db:"guide_hourly_rate"`
	GuideRating     float64 `json:"guide_rating" db:"guide_rating"`
	GuideFullName   string  `json:"guide_full_name" db:"guide_full_name"`
	DestinationName *string `json:"destination_name" db:"destination_name"`
}

// CountActive returns how many bookings across both collections are in one
// of the active statuses.
func CountActive(rides []RideWithDriver, bookings []GuideBookingDetail) int {
	count := 0
	for _, r := range rides {
		if ActiveBookingStatuses[r.Status] {
			count++
		}
	}
	for _, b := range bookings {
		if ActiveBookingStatuses[b.Status] {
			count++
		}
	}
	return count
}

// ToNullString converts a pointer to string to sql.NullString
func ToNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

// FromNullString converts sql.NullString to pointer to string
func FromNullString(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	return &n.String
}
