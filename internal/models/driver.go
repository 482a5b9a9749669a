package models

// VehicleType is the class of vehicle a driver operates
type VehicleType string

const (
	VehicleSedan  VehicleType = "sedan"
	VehicleSUV    VehicleType = "suv"
	VehicleLuxury VehicleType = "luxury"
	VehicleTempo  VehicleType = "tempo"
)

var ValidVehicleTypes = map[VehicleType]bool{
	VehicleSedan:  true,
	VehicleSUV:    true,
	VehicleLuxury: true,
	VehicleTempo:  true,
}

// Driver is a driver record owned by a user account.
// Availability and ratings are maintained externally.
type Driver struct {
	ID              string      `json:"id" db:"id"`
	UserID          string      `json:"user_id" db:"user_id"`
	VehicleType     VehicleType `json:"vehicle_type" db:"vehicle_type"`
	VehicleNumber   string      `json:"vehicle_number" db:"vehicle_number"`
	LicenseNumber   string      `json:"license_number" db:"license_number"`
	Rating          float64     `json:"rating" db:"rating"`
	TotalRides      int         `json:"total_rides" db:"total_rides"`
	Available       bool        `json:"available" db:"available"`
	CurrentLocation *string     `json:"current_location" db:"current_location"`
	CreatedAt       int64       `json:"created_at" db:"created_at"`
}

// CandidateID implements booking.Candidate
func (d Driver) CandidateID() string { return d.ID }

// CandidateRating implements booking.Candidate
func (d Driver) CandidateRating() float64 { return d.Rating }
