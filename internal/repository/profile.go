package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/soso009n/Ecopoint/internal/model"
)

var ErrProfileNotFound = errors.New("profile not found")

func (r *Repository) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.GetContext(ctx, &profile, "SELECT * FROM profiles WHERE id = $1", userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies the non-nil fields and returns the updated row.
func (r *Repository) UpdateProfile(ctx context.Context, userID uuid.UUID, fullName, nim, department *string) (*model.Profile, error) {
	profile, err := r.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if fullName != nil {
		profile.FullName = *fullName
	}
	if nim != nil {
		profile.NIM = nim
	}
	if department != nil {
		profile.Department = department
	}

	query := `
		UPDATE profiles SET
			full_name = $2,
			nim = $3,
			department = $4,
			updated_at = NOW()
		WHERE id = $1
		RETURNING *`

	err = r.db.QueryRowxContext(ctx, query,
		profile.ID,
		profile.FullName,
		profile.NIM,
		profile.Department,
	).StructScan(profile)

	return profile, err
}

func (r *Repository) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.QueryRowxContext(ctx, `
		UPDATE profiles SET avatar_url = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING *`,
		userID, avatarURL,
	).StructScan(&profile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
