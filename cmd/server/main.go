package main

import (
	"log"
	"net/http"
	"os"

	"travelindia-backend/internal/database"
	"travelindia-backend/internal/handlers"
	"travelindia-backend/internal/middleware"
	"travelindia-backend/internal/services"
	"travelindia-backend/internal/session"
	"travelindia-backend/internal/store"
	"travelindia-backend/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Println("🚀 TRAVELINDIA BACKEND SERVER STARTING")
	log.Println("═══════════════════════════════════════════════════════════════════")

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Warning: .env file not found, using environment variables from system")
	}

	// Both connection settings are required; refusing to start without them
	// beats failing on the first request.
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("❌ FATAL: DATABASE_URL environment variable is required")
	}

	jwtSecret := os.Getenv("APP_JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ FATAL: APP_JWT_SECRET environment variable is required")
	}

	// Connect to database
	db, err := database.Connect(dbURL)
	if err != nil {
		log.Fatalf("❌ FATAL: Database connection failed: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ FATAL: Database migrations failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	// Seed demo accounts and the catalog
	if err := database.SeedUsers(db); err != nil {
		log.Fatalf("❌ FATAL: User seeding failed: %v", err)
	}
	if err := database.SeedCatalog(db); err != nil {
		log.Fatalf("❌ FATAL: Catalog seeding failed: %v", err)
	}
	log.Println("✅ Seed data in place")

	stores := store.New(db)
	provider := session.NewProvider(stores.Users, jwtSecret)

	// Initialize Firebase Cloud Messaging. Push is optional: the server runs
	// without it when no credentials are configured.
	var fcmService *services.FCMService
	if credsBase64 := os.Getenv("FIREBASE_CREDENTIALS_BASE64"); credsBase64 != "" {
		fcmService, err = services.NewFCMServiceFromBase64(credsBase64)
		if err != nil {
			log.Printf("⚠️  Failed to initialize FCM from base64: %v (push notifications disabled)", err)
			fcmService = nil
		} else {
			log.Println("✅ Firebase Cloud Messaging initialized from base64 credentials")
		}
	} else if credsFile := os.Getenv("FIREBASE_CREDENTIALS_FILE"); credsFile != "" {
		fcmService, err = services.NewFCMService(credsFile)
		if err != nil {
			log.Printf("⚠️  Failed to initialize FCM from file: %v (push notifications disabled)", err)
			fcmService = nil
		} else {
			log.Println("✅ Firebase Cloud Messaging initialized from file")
		}
	} else {
		log.Println("⚠️  No Firebase credentials configured, push notifications disabled")
	}

	// Initialize WebSocket hub
	wsHub := websocket.NewHub()
	go wsHub.Run()
	log.Println("✅ WebSocket hub started")

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// WebSocket endpoint (authentication handled in handler via query param)
	r.Get("/ws", websocket.HandleWebSocket(wsHub, provider))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Authentication (no auth required)
		r.Post("/auth/register", handlers.Register(provider))
		r.Post("/auth/login", handlers.Login(provider))

		// Catalog browsing (no auth required)
		r.Get("/destinations", handlers.GetDestinations(stores.Destinations))
		r.Get("/guides", handlers.GetGuides(stores.Guides))
		r.Get("/drivers/available", handlers.GetAvailableDrivers(stores.Drivers))

		// Booking submission: anonymous requests reach the workflow so it
		// can answer with the sign-in redirect instead of a bare 401.
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(provider))

			r.Post("/rides", handlers.BookRide(stores.Drivers, stores.Rides, stores.Tokens, wsHub, fcmService))
			r.Post("/guide-bookings", handlers.BookGuide(stores.Guides, stores.GuideBookings, stores.Tokens, wsHub, fcmService))
		})

		// Signed-in surface
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(provider))

			r.Get("/auth/status", handlers.GetAuthStatus(provider))
			r.Post("/auth/logout", handlers.Logout(provider))
			r.Get("/dashboard", handlers.GetDashboard(stores.Rides, stores.GuideBookings))
			r.Post("/fcm-token", handlers.RegisterFCMToken(stores.Tokens))
		})
	})

	// Get port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Println("✅ ALL INITIALIZATION COMPLETE")
	log.Printf("🚀 Server starting on http://localhost:%s", port)
	log.Println("═══════════════════════════════════════════════════════════════════")

	// Start server
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("❌ FATAL: Server failed to start: %v", err)
	}
}
