package main

import (
	"log"
	"os"

	"travelindia-backend/internal/database"

	"github.com/joho/godotenv"
)

// Standalone migrate+seed, for provisioning a database without starting the
// server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using system environment")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	db, err := database.Connect(dbURL)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}
	log.Println("✅ Migrations completed")

	if err := database.SeedUsers(db); err != nil {
		log.Fatalf("User seeding failed: %v", err)
	}
	if err := database.SeedCatalog(db); err != nil {
		log.Fatalf("Catalog seeding failed: %v", err)
	}
	log.Println("✅ Seed data in place")
}
