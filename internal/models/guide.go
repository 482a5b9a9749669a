package models

import "github.com/lib/pq"

// Guide is a local guide record owned by a user account.
type Guide struct {
	ID              string         `json:"id" db:"id"`
	UserID          string         `json:"user_id" db:"user_id"`
	Specialization  pq.StringArray `json:"specialization" db:"specialization"`
	Languages       pq.StringArray `json:"languages" db:"languages"`
	ExperienceYears int            `json:"experience_years" db:"experience_years"`
	HourlyRate      float64        `json:"hourly_rate" db:"hourly_rate"`
	Rating          float64        `json:"rating" db:"rating"`
	TotalBookings   int            `json:"total_bookings" db:"total_bookings"`
	Bio             *string        `json:"bio" db:"bio"`
	Available       bool           `json:"available" db:"available"`
	CreatedAt       int64          `json:"created_at" db:"created_at"`
}

// GuideWithProfile joins a guide with the display fields of its owning user.
type GuideWithProfile struct {
	Guide
	FullName  string  `json:"full_name" db:"full_name"`
	AvatarURL *string `json:"avatar_url" db:"avatar_url"`
}

// CandidateID implements booking.Candidate
func (g GuideWithProfile) CandidateID() string { return g.ID }

// CandidateRating implements booking.Candidate
func (g GuideWithProfile) CandidateRating() float64 { return g.Rating }
