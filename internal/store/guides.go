package store

import (
	"context"

	"travelindia-backend/internal/models"

	"github.com/jmoiron/sqlx"
)

type GuideStore struct {
	db *sqlx.DB
}

func NewGuideStore(db *sqlx.DB) *GuideStore {
	return &GuideStore{db: db}
}

// ListAvailable returns every available guide joined with the owning user's
// display name and avatar, best rated first.
func (s *GuideStore) ListAvailable(ctx context.Context) ([]models.GuideWithProfile, error) {
	guides := []models.GuideWithProfile{}
	err := s.db.SelectContext(ctx, &guides, `
		SELECT g.*, u.full_name, u.avatar_url
		FROM guides g
		JOIN users u ON u.id = g.user_id
		WHERE g.available = TRUE
		ORDER BY g.rating DESC
	`)
	if err != nil {
		return nil, err
	}
	return guides, nil
}
