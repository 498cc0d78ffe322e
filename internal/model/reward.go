package model

import (
	"time"

	"github.com/google/uuid"
)

// Reward is an item users can redeem points for.
type Reward struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Category       string    `json:"category" db:"category"`
	PointsRequired int64     `json:"points_required" db:"points_required"`
	Description    string    `json:"description" db:"description"`
	ImageURL       *string   `json:"image_url,omitempty" db:"image_url"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
