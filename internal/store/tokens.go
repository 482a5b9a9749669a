package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type TokenStore struct {
	db *sqlx.DB
}

func NewTokenStore(db *sqlx.DB) *TokenStore {
	return &TokenStore{db: db}
}

// Register upserts a device token for a user.
func (s *TokenStore) Register(ctx context.Context, userID, token, deviceType string) error {
	now := time.Now().Unix()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fcm_tokens (user_id, token, device_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (token)
		DO UPDATE SET user_id = EXCLUDED.user_id,
		              device_type = EXCLUDED.device_type,
		              updated_at = EXCLUDED.updated_at
	`, userID, token, deviceType, now)
	return err
}

// TokensForUser returns every registered device token for a user.
func (s *TokenStore) TokensForUser(ctx context.Context, userID string) ([]string, error) {
	tokens := []string{}
	err := s.db.SelectContext(ctx, &tokens, `
		SELECT token FROM fcm_tokens WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}
