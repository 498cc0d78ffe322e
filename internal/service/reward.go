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
	ErrRewardNameRequired  = errors.New("reward name is required")
	ErrInvalidRewardPoints = errors.New("points required must be greater than 0")
)

type RewardService struct {
	repo *repository.Repository
}

func NewRewardService(repo *repository.Repository) *RewardService {
	return &RewardService{repo: repo}
}

func (s *RewardService) GetRewards(ctx context.Context) ([]model.Reward, error) {
	return s.repo.GetRewards(ctx)
}

func (s *RewardService) GetReward(ctx context.Context, id uuid.UUID) (*model.Reward, error) {
	return s.repo.GetReward(ctx, id)
}

func (s *RewardService) CreateReward(ctx context.Context, name, category string, pointsRequired int64, description string, imageURL *string) (*model.Reward, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrRewardNameRequired
	}
	if pointsRequired <= 0 {
		return nil, ErrInvalidRewardPoints
	}
	return s.repo.CreateReward(ctx, name, category, pointsRequired, description, imageURL)
}

func (s *RewardService) UpdateReward(ctx context.Context, id uuid.UUID, name, category *string, pointsRequired *int64, description, imageURL *string) (*model.Reward, error) {
	if name != nil && strings.TrimSpace(*name) == "" {
		return nil, ErrRewardNameRequired
	}
	if pointsRequired != nil && *pointsRequired <= 0 {
		return nil, ErrInvalidRewardPoints
	}
	return s.repo.UpdateReward(ctx, id, name, category, pointsRequired, description, imageURL)
}

func (s *RewardService) DeleteReward(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteReward(ctx, id)
}
