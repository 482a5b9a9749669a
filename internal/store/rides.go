package store

import (
	"context"

	"travelindia-backend/internal/models"

	"github.com/jmoiron/sqlx"
)

type RideStore struct {
	db *sqlx.DB
}

func NewRideStore(db *sqlx.DB) *RideStore {
	return &RideStore{db: db}
}

func (s *RideStore) Insert(ctx context.Context, ride *models.Ride) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO rides (id, tourist_id, driver_id, pickup_location, dropoff_location,
		                   pickup_time, passengers, vehicle_preference, status, fare,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, ride.ID, ride.TouristID, ride.DriverID, ride.PickupLocation, ride.DropoffLocation,
		ride.PickupTime, ride.Passengers, ride.VehiclePreference, ride.Status, ride.Fare,
		ride.CreatedAt, ride.UpdatedAt)
	return err
}

// ListByTourist returns the tourist's rides joined with the matched driver's
// display fields, newest first. Driver columns are NULL until matched.
func (s *RideStore) ListByTourist(ctx context.Context, touristID string) ([]models.RideWithDriver, error) {
	rides := []models.RideWithDriver{}
	err := s.db.SelectContext(ctx, &rides, `
		SELECT r.*,
		       d.vehicle_type   AS driver_vehicle_type,
		       d.vehicle_number AS driver_vehicle_number,
		       d.rating         AS driver_rating
		FROM rides r
		LEFT JOIN drivers d ON d.id = r.driver_id
		WHERE r.tourist_id = $1
		ORDER BY r.created_at DESC
	`, touristID)
	if err != nil {
		return nil, err
	}
	return rides, nil
}
