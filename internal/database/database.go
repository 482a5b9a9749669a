package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func Connect(dbURL string) (*sqlx.DB, error) {
	log.Println("🔌 Connecting to Postgres...")

	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("✅ Database connection established")
	return db, nil
}

func Migrate(db *sqlx.DB) error {
	migrations := []string{
		// Create users table (auth identity + profile in one row)
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			full_name TEXT NOT NULL,
			phone TEXT,
			avatar_url TEXT,
			user_type TEXT NOT NULL CHECK(user_type IN ('tourist', 'driver', 'guide')),
			created_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT,
			updated_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT
		)`,

		// Create destinations table (read-only catalog)
		`CREATE TABLE IF NOT EXISTS destinations (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			state TEXT NOT NULL,
			city TEXT NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL CHECK(category IN ('heritage', 'nature', 'adventure', 'spiritual', 'beach')),
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			popular BOOLEAN NOT NULL DEFAULT FALSE,
			created_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT
		)`,

		// Create drivers table
		`CREATE TABLE IF NOT EXISTS drivers (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			vehicle_type TEXT NOT NULL CHECK(vehicle_type IN ('sedan', 'suv', 'luxury', 'tempo')),
			vehicle_number TEXT NOT NULL,
			license_number TEXT NOT NULL,
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_rides INT NOT NULL DEFAULT 0,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			current_location TEXT,
			created_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`,

		// Create guides table
		`CREATE TABLE IF NOT EXISTS guides (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			specialization TEXT[] NOT NULL DEFAULT '{}',
			languages TEXT[] NOT NULL DEFAULT '{}',
			experience_years INT NOT NULL DEFAULT 0,
			hourly_rate DOUBLE PRECISION NOT NULL,
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_bookings INT NOT NULL DEFAULT 0,
			bio TEXT,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`,

		// Create rides table (insert-only from this application)
		`CREATE TABLE IF NOT EXISTS rides (
			id TEXT PRIMARY KEY,
			tourist_id TEXT NOT NULL,
			driver_id TEXT,
			pickup_location TEXT NOT NULL,
			dropoff_location TEXT NOT NULL,
			pickup_time TIMESTAMPTZ NOT NULL,
			passengers INT NOT NULL DEFAULT 1,
			vehicle_preference TEXT NOT NULL,
			status TEXT NOT NULL CHECK(status IN ('pending', 'accepted', 'ongoing', 'completed', 'cancelled')),
			fare DOUBLE PRECISION,
			created_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT,
			updated_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT,
			FOREIGN KEY (tourist_id) REFERENCES users(id) ON DELETE CASCADE,
			FOREIGN KEY (driver_id) REFERENCES drivers(id) ON DELETE SET NULL
		)`,

		// Create guide_bookings table (insert-only from this application)
		`CREATE TABLE IF NOT EXISTS guide_bookings (
			id TEXT PRIMARY KEY,
			tourist_id TEXT NOT NULL,
			guide_id TEXT NOT NULL,
			destination_id TEXT,
			booking_date TIMESTAMPTZ NOT NULL,
			duration_hours INT NOT NULL CHECK(duration_hours BETWEEN 1 AND 12),
			status TEXT NOT NULL CHECK(status IN ('pending', 'confirmed', 'completed', 'cancelled')),
			total_cost DOUBLE PRECISION NOT NULL,
			created_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT,
			FOREIGN KEY (tourist_id) REFERENCES users(id) ON DELETE CASCADE,
			FOREIGN KEY (guide_id) REFERENCES guides(id) ON DELETE CASCADE,
			FOREIGN KEY (destination_id) REFERENCES destinations(id) ON DELETE SET NULL
		)`,

		// Create fcm_tokens table (one row per device token)
		`CREATE TABLE IF NOT EXISTS fcm_tokens (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			token TEXT NOT NULL UNIQUE,
			device_type TEXT NOT NULL DEFAULT 'android',
			created_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT,
			updated_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`,

		// Indexes for the hot queries: candidate lookup and dashboard reads
		`CREATE INDEX IF NOT EXISTS idx_drivers_vehicle_available ON drivers(vehicle_type, available)`,
		`CREATE INDEX IF NOT EXISTS idx_guides_available ON guides(available)`,
		`CREATE INDEX IF NOT EXISTS idx_rides_tourist ON rides(tourist_id)`,
		`CREATE INDEX IF NOT EXISTS idx_guide_bookings_tourist ON guide_bookings(tourist_id)`,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}
