package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/soso009n/Ecopoint/internal/model"
	"github.com/soso009n/Ecopoint/internal/repository"
)

type ProfileService struct {
	repo *repository.Repository
}

func NewProfileService(repo *repository.Repository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	return s.repo.GetProfile(ctx, userID)
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, fullName, nim, department *string) (*model.Profile, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if fullName != nil && *fullName == "" {
		return nil, ErrFullNameRequired
	}
	return s.repo.UpdateProfile(ctx, userID, fullName, nim, department)
}

func (s *ProfileService) SetAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) (*model.Profile, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	return s.repo.UpdateAvatar(ctx, userID, avatarURL)
}
