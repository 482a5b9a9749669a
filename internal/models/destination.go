package models

// DestinationCategory classifies a destination for catalog filtering
type DestinationCategory string

const (
	CategoryHeritage  DestinationCategory = "heritage"
	CategoryNature    DestinationCategory = "nature"
	CategoryAdventure DestinationCategory = "adventure"
	CategorySpiritual DestinationCategory = "spiritual"
	CategoryBeach     DestinationCategory = "beach"

	// CategoryAll is the filter value that matches every category.
	// It is never stored on a destination row.
	CategoryAll DestinationCategory = "all"
)

// Destination is a place tourists can browse and attach guide bookings to.
// Rows are read-only from this application's perspective.
type Destination struct {
	ID          string              `json:"id" db:"id"`
	Name        string              `json:"name" db:"name"`
	Description string              `json:"description" db:"description"`
	State       string              `json:"state" db:"state"`
	City        string              `json:"city" db:"city"`
	ImageURL    string              `json:"image_url" db:"image_url"`
	Category    DestinationCategory `json:"category" db:"category"`
	Rating      float64             `json:"rating" db:"rating"`
	Popular     bool                `json:"popular" db:"popular"`
	CreatedAt   int64               `json:"created_at" db:"created_at"`
}
