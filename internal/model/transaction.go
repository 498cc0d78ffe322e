package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	// Wire values kept compatible with the original mobile client.
	TransactionStatusCompleted  TransactionStatus = "Selesai"
	TransactionStatusProcessing TransactionStatus = "Proses"
)

// Transaction is one ledger entry. Positive total_points = deposit credit,
// negative = reward redemption. Rows are never updated, only inserted or
// deleted by their owner.
type Transaction struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	UserID      uuid.UUID         `json:"user_id" db:"user_id"`
	WasteID     *uuid.UUID        `json:"waste_id,omitempty" db:"waste_id"` // nil for redemptions
	WasteName   string            `json:"waste_name" db:"waste_name"`
	WeightKg    float64           `json:"weight_kg" db:"weight_kg"` // zero for redemptions
	TotalPoints int64             `json:"total_points" db:"total_points"`
	Status      TransactionStatus `json:"status" db:"status"`
	ImageURL    *string           `json:"image_url,omitempty" db:"image_url"`
	Date        time.Time         `json:"date" db:"date"`
}

// TransactionSummary aggregates a user's ledger. The balance is always
// derived from the rows, never stored.
type TransactionSummary struct {
	TotalPoints       int64   `json:"total_points"`
	TotalWeightKg     float64 `json:"total_weight_kg"`
	TotalTransactions int     `json:"total_transactions"`
}
