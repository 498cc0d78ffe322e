package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/soso009n/Ecopoint/internal/model"
	"github.com/soso009n/Ecopoint/internal/repository"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidWeight   = errors.New("weight must be greater than 0")
)

type TransactionService struct {
	repo *repository.Repository
}

func NewTransactionService(repo *repository.Repository) *TransactionService {
	return &TransactionService{repo: repo}
}

// DepositPoints computes the points credited for a deposit:
// floor(point_per_kg * weight_kg), never negative for valid rates.
func DepositPoints(pointPerKg, weightKg float64) int64 {
	return int64(math.Floor(pointPerKg * weightKg))
}

// RecordDeposit converts a (catalog item, weight) pair into a completed
// credit transaction and returns the created row.
func (s *TransactionService) RecordDeposit(ctx context.Context, userID, wasteID uuid.UUID, weightKg float64) (*model.Transaction, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if weightKg <= 0 {
		return nil, ErrInvalidWeight
	}

	waste, err := s.repo.GetWaste(ctx, wasteID)
	if err != nil {
		return nil, err
	}

	points := DepositPoints(waste.PointPerKg, weightKg)
	return s.repo.InsertDeposit(ctx, userID, waste.ID, waste.Name, weightKg, points, waste.ImageURL)
}

// Redeem exchanges points for a reward. The balance check and the debit row
// run in one locked store transaction, so a double-tap or a second device
// cannot drive the balance negative.
func (s *TransactionService) Redeem(ctx context.Context, userID, rewardID uuid.UUID) (*model.Transaction, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	reward, err := s.repo.GetReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}

	return s.repo.InsertRedemption(ctx, userID, reward)
}

// DeleteTransaction removes a ledger row owned by the user. Rows are never
// edited in place; deletion is the only mutation after insert.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}
	return s.repo.DeleteTransaction(ctx, userID, id)
}
