package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/soso009n/Ecopoint/internal/model"
)

var ErrRewardNotFound = errors.New("reward not found")

func (r *Repository) GetReward(ctx context.Context, id uuid.UUID) (*model.Reward, error) {
	var reward model.Reward
	err := r.db.GetContext(ctx, &reward, "SELECT * FROM rewards_catalog WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRewardNotFound
		}
		return nil, err
	}
	return &reward, nil
}

func (r *Repository) GetRewards(ctx context.Context) ([]model.Reward, error) {
	rewards := []model.Reward{}
	// Cheapest rewards first, matching the catalog page ordering
	err := r.db.SelectContext(ctx, &rewards, "SELECT * FROM rewards_catalog ORDER BY points_required ASC")
	return rewards, err
}

func (r *Repository) CreateReward(ctx context.Context, name, category string, pointsRequired int64, description string, imageURL *string) (*model.Reward, error) {
	var reward model.Reward
	query := `
		INSERT INTO rewards_catalog (name, category, points_required, description, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *`

	err := r.db.QueryRowxContext(ctx, query, name, category, pointsRequired, description, imageURL).StructScan(&reward)
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// UpdateReward applies the non-nil fields and returns the updated row.
func (r *Repository) UpdateReward(ctx context.Context, id uuid.UUID, name, category *string, pointsRequired *int64, description, imageURL *string) (*model.Reward, error) {
	reward, err := r.GetReward(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		reward.Name = *name
	}
	if category != nil {
		reward.Category = *category
	}
	if pointsRequired != nil {
		reward.PointsRequired = *pointsRequired
	}
	if description != nil {
		reward.Description = *description
	}
	if imageURL != nil {
		reward.ImageURL = imageURL
	}

	query := `
		UPDATE rewards_catalog SET
			name = $2,
			category = $3,
			points_required = $4,
			description = $5,
			image_url = $6
		WHERE id = $1
		RETURNING *`

	err = r.db.QueryRowxContext(ctx, query,
		reward.ID,
		reward.Name,
		reward.Category,
		reward.PointsRequired,
		reward.Description,
		reward.ImageURL,
	).StructScan(reward)

	return reward, err
}

func (r *Repository) DeleteReward(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM rewards_catalog WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRewardNotFound
	}
	return nil
}
