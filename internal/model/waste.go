package model

import (
	"time"

	"github.com/google/uuid"
)

// WasteItem is a recyclable waste type in the catalog.
type WasteItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	PricePerKg  float64   `json:"price_per_kg" db:"price_per_kg"`
	PointPerKg  float64   `json:"point_per_kg" db:"point_per_kg"`
	Description string    `json:"description" db:"description"`
	ImageURL    *string   `json:"image_url,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
