package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/soso009n/Ecopoint/internal/model"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInsufficientPoints  = errors.New("insufficient points")
)

// InsertDeposit creates one completed deposit row and returns it.
func (r *Repository) InsertDeposit(ctx context.Context, userID, wasteID uuid.UUID, wasteName string, weightKg float64, totalPoints int64, imageURL *string) (*model.Transaction, error) {
	var txn model.Transaction
	query := `
		INSERT INTO transactions (user_id, waste_id, waste_name, weight_kg, total_points, status, image_url, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING *`

	err := r.db.QueryRowxContext(ctx, query,
		userID, wasteID, wasteName, weightKg, totalPoints, model.TransactionStatusCompleted, imageURL,
	).StructScan(&txn)
	if err != nil {
		return nil, fmt.Errorf("failed to insert deposit: %w", err)
	}
	return &txn, nil
}

// InsertRedemption checks the derived balance and writes the debit row in a
// single database transaction. The user row is locked first so concurrent
// redemptions from the same user serialize: at most one of two competing
// requests can pass the balance check.
func (r *Repository) InsertRedemption(ctx context.Context, userID uuid.UUID, reward *model.Reward) (*model.Transaction, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var lockedID uuid.UUID
	err = tx.GetContext(ctx, &lockedID, "SELECT id FROM users WHERE id = $1 FOR UPDATE", userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}

	var balance int64
	err = tx.GetContext(ctx, &balance, "SELECT COALESCE(SUM(total_points), 0) FROM transactions WHERE user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	if balance < reward.PointsRequired {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientPoints, balance, reward.PointsRequired)
	}

	var txn model.Transaction
	query := `
		INSERT INTO transactions (user_id, waste_id, waste_name, weight_kg, total_points, status, image_url, date)
		VALUES ($1, NULL, $2, 0, $3, $4, $5, NOW())
		RETURNING *`

	err = tx.QueryRowxContext(ctx, query,
		userID, "Redeemed: "+reward.Name, -reward.PointsRequired, model.TransactionStatusCompleted, reward.ImageURL,
	).StructScan(&txn)
	if err != nil {
		return nil, fmt.Errorf("failed to insert redemption: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &txn, nil
}

// GetTransactionsByUser returns the user's ledger, most recent first. Row id
// breaks timestamp ties so the order is stable.
func (r *Repository) GetTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]model.Transaction, error) {
	transactions := []model.Transaction{}
	err := r.db.SelectContext(ctx, &transactions, `
		SELECT * FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, id DESC`,
		userID)
	return transactions, err
}

// DeleteTransaction removes a row owned by the user.
func (r *Repository) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
