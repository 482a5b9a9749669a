package database

import (
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// SeedUsers creates demo accounts plus the user rows that back the seeded
// drivers and guides. Safe to run repeatedly.
func SeedUsers(db *sqlx.DB) error {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM users"); err != nil {
		return err
	}

	if count > 0 {
		log.Println("✓ Users already seeded, skipping...")
		return nil
	}

	password, err := bcrypt.GenerateFromPassword([]byte("travel123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []struct {
		id       string
		email    string
		fullName string
		userType string
	}{
		{"user-tourist-1", "tourist@travelindia.demo", "Aarav Sharma", "tourist"},
		{"user-driver-1", "ramesh.driver@travelindia.demo", "Ramesh Kumar", "driver"},
		{"user-driver-2", "suresh.driver@travelindia.demo", "Suresh Patel", "driver"},
		{"user-driver-3", "vijay.driver@travelindia.demo", "Vijay Singh", "driver"},
		{"user-driver-4", "anil.driver@travelindia.demo", "Anil Yadav", "driver"},
		{"user-driver-5", "manoj.driver@travelindia.demo", "Manoj Verma", "driver"},
		{"user-driver-6", "rakesh.driver@travelindia.demo", "Rakesh Gupta", "driver"},
		{"user-guide-1", "priya.guide@travelindia.demo", "Priya Nair", "guide"},
		{"user-guide-2", "arjun.guide@travelindia.demo", "Arjun Mehta", "guide"},
		{"user-guide-3", "kavita.guide@travelindia.demo", "Kavita Iyer", "guide"},
	}

	log.Printf("🌱 Seeding %d users...", len(users))
	for _, u := range users {
		_, err := db.Exec(`
			INSERT INTO users (id, email, password, full_name, user_type)
			VALUES ($1, $2, $3, $4, $5)
		`, u.id, u.email, string(password), u.fullName, u.userType)
		if err != nil {
			return err
		}
	}

	return nil
}

// SeedCatalog loads the destination, driver and guide records the booking
// flows read from. Assumes SeedUsers has run.
func SeedCatalog(db *sqlx.DB) error {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM destinations"); err != nil {
		return err
	}

	if count > 0 {
		log.Println("✓ Catalog already seeded, skipping...")
		return nil
	}

	destinations := []map[string]interface{}{
		{"name": "Taj Mahal", "description": "Ivory-white marble mausoleum on the banks of the Yamuna, the most recognised monument in India.", "state": "Uttar Pradesh", "city": "Agra", "category": "heritage", "rating": 4.9, "popular": true},
		{"name": "Jaipur City Palace", "description": "Royal residence of the Pink City blending Rajput and Mughal architecture.", "state": "Rajasthan", "city": "Jaipur", "category": "heritage", "rating": 4.7, "popular": true},
		{"name": "Backwaters of Alleppey", "description": "Palm-lined canals and houseboat cruises through Kerala's backwater villages.", "state": "Kerala", "city": "Alappuzha", "category": "nature", "rating": 4.8, "popular": true},
		{"name": "Valley of Flowers", "description": "High-altitude Himalayan valley carpeted with alpine flowers every monsoon.", "state": "Uttarakhand", "city": "Chamoli", "category": "nature", "rating": 4.6, "popular": false},
		{"name": "Rishikesh Rafting", "description": "White-water rafting and bungee jumping in the yoga capital of the world.", "state": "Uttarakhand", "city": "Rishikesh", "category": "adventure", "rating": 4.5, "popular": true},
		{"name": "Spiti Valley Circuit", "description": "Cold-desert mountain valley with high passes, monasteries and star-filled skies.", "state": "Himachal Pradesh", "city": "Kaza", "category": "adventure", "rating": 4.7, "popular": false},
		{"name": "Varanasi Ghats", "description": "Ancient riverside steps along the Ganges where evening aarti draws thousands.", "state": "Uttar Pradesh", "city": "Varanasi", "category": "spiritual", "rating": 4.8, "popular": true},
		{"name": "Golden Temple", "description": "Holiest gurdwara of Sikhism, plated in gold and surrounded by a sacred pool.", "state": "Punjab", "city": "Amritsar", "category": "spiritual", "rating": 4.9, "popular": true},
		{"name": "Palolem Beach", "description": "Crescent-shaped beach in south Goa known for calm waters and beach huts.", "state": "Goa", "city": "Canacona", "category": "beach", "rating": 4.6, "popular": true},
		{"name": "Radhanagar Beach", "description": "White-sand beach on Havelock Island, regularly rated among Asia's best.", "state": "Andaman and Nicobar", "city": "Havelock", "category": "beach", "rating": 4.8, "popular": false},
	}

	log.Printf("🌱 Seeding %d destinations...", len(destinations))
	for _, d := range destinations {
		_, err := db.Exec(`
			INSERT INTO destinations (id, name, description, state, city, category, rating, popular)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, uuid.New().String(), d["name"], d["description"], d["state"], d["city"], d["category"], d["rating"], d["popular"])
		if err != nil {
			return err
		}
	}

	drivers := []map[string]interface{}{
		{"user_id": "user-driver-1", "vehicle_type": "sedan", "vehicle_number": "DL 01 AB 1234", "license_number": "DL-0420110012345", "rating": 4.9, "total_rides": 412},
		{"user_id": "user-driver-2", "vehicle_type": "sedan", "vehicle_number": "DL 03 CD 5678", "license_number": "DL-0420110067890", "rating": 4.7, "total_rides": 289},
		{"user_id": "user-driver-3", "vehicle_type": "sedan", "vehicle_number": "UP 16 EF 9012", "license_number": "UP-1620120034567", "rating": 4.5, "total_rides": 198},
		{"user_id": "user-driver-4", "vehicle_type": "suv", "vehicle_number": "RJ 14 GH 3456", "license_number": "RJ-1420130078901", "rating": 4.8, "total_rides": 325},
		{"user_id": "user-driver-5", "vehicle_type": "luxury", "vehicle_number": "MH 02 IJ 7890", "license_number": "MH-0220140023456", "rating": 4.6, "total_rides": 156},
		{"user_id": "user-driver-6", "vehicle_type": "tempo", "vehicle_number": "KA 05 KL 2345", "license_number": "KA-0520150045678", "rating": 4.4, "total_rides": 240},
	}

	log.Printf("🌱 Seeding %d drivers...", len(drivers))
	for _, d := range drivers {
		_, err := db.Exec(`
			INSERT INTO drivers (id, user_id, vehicle_type, vehicle_number, license_number, rating, total_rides, available)
			VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		`, uuid.New().String(), d["user_id"], d["vehicle_type"], d["vehicle_number"], d["license_number"], d["rating"], d["total_rides"])
		if err != nil {
			return err
		}
	}

	guides := []map[string]interface{}{
		{"user_id": "user-guide-1", "specialization": "{heritage,spiritual}", "languages": "{English,Hindi,Malayalam}", "experience_years": 8, "hourly_rate": 500, "rating": 4.9, "total_bookings": 176, "bio": "Heritage walks and temple circuits across north and south India."},
		{"user_id": "user-guide-2", "specialization": "{adventure,nature}", "languages": "{English,Hindi}", "experience_years": 5, "hourly_rate": 400, "rating": 4.6, "total_bookings": 94, "bio": "Trekking and rafting specialist based out of Rishikesh."},
		{"user_id": "user-guide-3", "specialization": "{heritage,beach}", "languages": "{English,Hindi,Konkani,French}", "experience_years": 11, "hourly_rate": 650, "rating": 4.8, "total_bookings": 231, "bio": "Goa and coastal Karnataka, from Portuguese quarters to hidden beaches."},
	}

	log.Printf("🌱 Seeding %d guides...", len(guides))
	for _, g := range guides {
		_, err := db.Exec(`
			INSERT INTO guides (id, user_id, specialization, languages, experience_years, hourly_rate, rating, total_bookings, bio, available)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
		`, uuid.New().String(), g["user_id"], g["specialization"], g["languages"], g["experience_years"], g["hourly_rate"], g["rating"], g["total_bookings"], g["bio"])
		if err != nil {
			return err
		}
	}

	return nil
}
