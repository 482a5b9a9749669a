package store

import (
	"context"

	"travelindia-backend/internal/models"

	"github.com/jmoiron/sqlx"
)

type DriverStore struct {
	db *sqlx.DB
}

func NewDriverStore(db *sqlx.DB) *DriverStore {
	return &DriverStore{db: db}
}

// AvailableByVehicleType returns up to limit available drivers of the given
// vehicle type, best rated first.
func (s *DriverStore) AvailableByVehicleType(ctx context.Context, vehicleType models.VehicleType, limit int) ([]models.Driver, error) {
	drivers := []models.Driver{}
	err := s.db.SelectContext(ctx, &drivers, `
		SELECT * FROM drivers
		WHERE vehicle_type = $1 AND available = TRUE
		ORDER BY rating DESC
		LIMIT $2
	`, vehicleType, limit)
	if err != nil {
		return nil, err
	}
	return drivers, nil
}
