// Package store is the record-store client: one repository per collection,
// all reads and inserts against the shared Postgres connection. Bookings are
// insert-only; everything else is read-only here.
package store

import "github.com/jmoiron/sqlx"

// Stores bundles every repository over one connection.
type Stores struct {
	Users         *UserStore
	Destinations  *DestinationStore
	Drivers       *DriverStore
	Guides        *GuideStore
	Rides         *RideStore
	GuideBookings *GuideBookingStore
	Tokens        *TokenStore
}

func New(db *sqlx.DB) *Stores {
	return &Stores{
		Users:         NewUserStore(db),
		Destinations:  NewDestinationStore(db),
		Drivers:       NewDriverStore(db),
		Guides:        NewGuideStore(db),
		Rides:         NewRideStore(db),
		GuideBookings: NewGuideBookingStore(db),
		Tokens:        NewTokenStore(db),
	}
}
