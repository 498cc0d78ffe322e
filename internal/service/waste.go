package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/soso009n/Ecopoint/internal/model"
	"github.com/soso009n/Ecopoint/internal/repository"
)

var (
	ErrWasteNameRequired = errors.New("waste name is required")
	ErrNegativeRate      = errors.New("price and point rates must not be negative")
)

type WasteService struct {
	repo *repository.Repository
}

func NewWasteService(repo *repository.Repository) *WasteService {
	return &WasteService{repo: repo}
}

func (s *WasteService) GetCatalog(ctx context.Context) ([]model.WasteItem, error) {
	return s.repo.GetWasteCatalog(ctx)
}

func (s *WasteService) GetWaste(ctx context.Context, id uuid.UUID) (*model.WasteItem, error) {
	return s.repo.GetWaste(ctx, id)
}

func (s *WasteService) CreateWaste(ctx context.Context, name, category string, pricePerKg, pointPerKg float64, description string, imageURL *string) (*model.WasteItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrWasteNameRequired
	}
	if pricePerKg < 0 || pointPerKg < 0 {
		return nil, ErrNegativeRate
	}
	return s.repo.CreateWaste(ctx, name, category, pricePerKg, pointPerKg, description, imageURL)
}

func (s *WasteService) UpdateWaste(ctx context.Context, id uuid.UUID, name, category *string, pricePerKg, pointPerKg *float64, description, imageURL *string) (*model.WasteItem, error) {
	if name != nil && strings.TrimSpace(*name) == "" {
		return nil, ErrWasteNameRequired
	}
	if (pricePerKg != nil && *pricePerKg < 0) || (pointPerKg != nil && *pointPerKg < 0) {
		return nil, ErrNegativeRate
	}
	return s.repo.UpdateWaste(ctx, id, name, category, pricePerKg, pointPerKg, description, imageURL)
}

func (s *WasteService) DeleteWaste(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteWaste(ctx, id)
}
