package store

import (
	"context"

	"travelindia-backend/internal/models"

	"github.com/jmoiron/sqlx"
)

type DestinationStore struct {
	db *sqlx.DB
}

func NewDestinationStore(db *sqlx.DB) *DestinationStore {
	return &DestinationStore{db: db}
}

// ListByRating returns the full catalog snapshot ordered by rating
// descending. Filtering happens client-side over this snapshot.
func (s *DestinationStore) ListByRating(ctx context.Context) ([]models.Destination, error) {
	destinations := []models.Destination{}
	err := s.db.SelectContext(ctx, &destinations, `
		SELECT * FROM destinations ORDER BY rating DESC
	`)
	if err != nil {
		return nil, err
	}
	return destinations, nil
}
