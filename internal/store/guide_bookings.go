package store

import (
	"context"

	"travelindia-backend/internal/models"

	"github.com/jmoiron/sqlx"
)

type GuideBookingStore struct {
	db *sqlx.DB
}

func NewGuideBookingStore(db *sqlx.DB) *GuideBookingStore {
	return &GuideBookingStore{db: db}
}

func (s *GuideBookingStore) Insert(ctx context.Context, booking *models.GuideBooking) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO guide_bookings (id, tourist_id, guide_id, destination_id, booking_date,
		                            duration_hours, status, total_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, booking.ID, booking.TouristID, booking.GuideID, booking.DestinationID, booking.BookingDate,
		booking.DurationHours, booking.Status, booking.TotalCost, booking.CreatedAt)
	return err
}

// ListByTourist returns the tourist's guide bookings joined with the guide,
// the guide's profile name and the optional destination name, newest first.
func (s *GuideBookingStore) ListByTourist(ctx context.Context, touristID string) ([]models.GuideBookingDetail, error) {
	bookings := []models.GuideBookingDetail{}
	err := s.db.SelectContext(ctx, &bookings, `
		SELECT b.*,
		       g.hourly_rate AS guide_hourly_rate,
		       g.rating      AS guide_rating,
		       u.full_name   AS guide_full_name,
		       dst.name      AS destination_name
		FROM guide_bookings b
		JOIN guides g ON g.id = b.guide_id
		JOIN users u ON u.id = g.user_id
		LEFT JOIN destinations dst ON dst.id = b.destination_id
		WHERE b.tourist_id = $1
		ORDER BY b.created_at DESC
	`, touristID)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
