package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/soso009n/Ecopoint/internal/model"
	"github.com/soso009n/Ecopoint/internal/repository"
)

type LedgerService struct {
	repo *repository.Repository
}

func NewLedgerService(repo *repository.Repository) *LedgerService {
	return &LedgerService{repo: repo}
}

// GetHistory returns the user's transactions, most recent first. An absent
// session yields an empty history rather than an error, so the client can
// render before authentication settles.
func (s *LedgerService) GetHistory(ctx context.Context, userID uuid.UUID) ([]model.Transaction, error) {
	if userID == uuid.Nil {
		return []model.Transaction{}, nil
	}
	return s.repo.GetTransactionsByUser(ctx, userID)
}

// GetSummary returns the derived totals for the user's ledger. An absent
// session yields a zero summary.
func (s *LedgerService) GetSummary(ctx context.Context, userID uuid.UUID) (*model.TransactionSummary, error) {
	if userID == uuid.Nil {
		return &model.TransactionSummary{}, nil
	}

	transactions, err := s.repo.GetTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := Summarize(transactions)
	return &summary, nil
}

// GetBalance returns the current point balance, always derived from the rows.
func (s *LedgerService) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	summary, err := s.GetSummary(ctx, userID)
	if err != nil {
		return 0, err
	}
	return summary.TotalPoints, nil
}

// Summarize folds a set of ledger rows into its totals. The summary of a
// user's ledger is by definition this fold over their history.
func Summarize(transactions []model.Transaction) model.TransactionSummary {
	var summary model.TransactionSummary
	for _, t := range transactions {
		summary.TotalPoints += t.TotalPoints
		summary.TotalWeightKg += t.WeightKg
	}
	summary.TotalTransactions = len(transactions)
	return summary
}
