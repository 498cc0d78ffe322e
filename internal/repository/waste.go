package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/soso009n/Ecopoint/internal/model"
)

var ErrWasteNotFound = errors.New("waste item not found")

func (r *Repository) GetWaste(ctx context.Context, id uuid.UUID) (*model.WasteItem, error) {
	var item model.WasteItem
	err := r.db.GetContext(ctx, &item, "SELECT * FROM waste_catalog WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWasteNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *Repository) GetWasteCatalog(ctx context.Context) ([]model.WasteItem, error) {
	items := []model.WasteItem{}
	err := r.db.SelectContext(ctx, &items, "SELECT * FROM waste_catalog ORDER BY name ASC")
	return items, err
}

func (r *Repository) CreateWaste(ctx context.Context, name, category string, pricePerKg, pointPerKg float64, description string, imageURL *string) (*model.WasteItem, error) {
	var item model.WasteItem
	query := `
		INSERT INTO waste_catalog (name, category, price_per_kg, point_per_kg, description, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING *`

	err := r.db.QueryRowxContext(ctx, query, name, category, pricePerKg, pointPerKg, description, imageURL).StructScan(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateWaste applies the non-nil fields and returns the updated row.
func (r *Repository) UpdateWaste(ctx context.Context, id uuid.UUID, name, category *string, pricePerKg, pointPerKg *float64, description, imageURL *string) (*model.WasteItem, error) {
	item, err := r.GetWaste(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		item.Name = *name
	}
	if category != nil {
		item.Category = *category
	}
	if pricePerKg != nil {
		item.PricePerKg = *pricePerKg
	}
	if pointPerKg != nil {
		item.PointPerKg = *pointPerKg
	}
	if description != nil {
		item.Description = *description
	}
	if imageURL != nil {
		item.ImageURL = imageURL
	}

	query := `
		UPDATE waste_catalog SET
			name = $2,
			category = $3,
			price_per_kg = $4,
			point_per_kg = $5,
			description = $6,
			image_url = $7
		WHERE id = $1
		RETURNING *`

	err = r.db.QueryRowxContext(ctx, query,
		item.ID,
		item.Name,
		item.Category,
		item.PricePerKg,
		item.PointPerKg,
		item.Description,
		item.ImageURL,
	).StructScan(item)

	return item, err
}

// DeleteWaste removes the catalog row. Historical transactions keep the
// denormalized waste_name; their waste_id is set NULL by the FK.
func (r *Repository) DeleteWaste(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM waste_catalog WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrWasteNotFound
	}
	return nil
}
