package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/soso009n/Ecopoint/internal/repository"
	"github.com/soso009n/Ecopoint/internal/service"
	"github.com/soso009n/Ecopoint/internal/storage"
)

func (h *Handler) GetWasteCatalog(c *fiber.Ctx) error {
	items, err := h.wasteSvc.GetCatalog(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to get waste catalog",
		})
	}

	return c.JSON(fiber.Map{
		"waste": items,
	})
}

func (h *Handler) GetWaste(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid waste id",
		})
	}

	item, err := h.wasteSvc.GetWaste(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrWasteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to get waste item",
		})
	}

	return c.JSON(fiber.Map{
		"waste": item,
	})
}

type CreateWasteRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	PricePerKg  float64 `json:"price_per_kg"`
	PointPerKg  float64 `json:"point_per_kg"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
}

func (h *Handler) CreateWaste(c *fiber.Ctx) error {
	var req CreateWasteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	item, err := h.wasteSvc.CreateWaste(c.Context(), req.Name, req.Category, req.PricePerKg, req.PointPerKg, req.Description, req.ImageURL)
	if err != nil {
		if errors.Is(err, service.ErrWasteNameRequired) || errors.Is(err, service.ErrNegativeRate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create waste item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"waste": item,
	})
}

type UpdateWasteRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	PricePerKg  *float64 `json:"price_per_kg"`
	PointPerKg  *float64 `json:"point_per_kg"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
}

func (h *Handler) UpdateWaste(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid waste id",
		})
	}

	var req UpdateWasteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	item, err := h.wasteSvc.UpdateWaste(c.Context(), id, req.Name, req.Category, req.PricePerKg, req.PointPerKg, req.Description, req.ImageURL)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrWasteNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, service.ErrWasteNameRequired), errors.Is(err, service.ErrNegativeRate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update waste item",
		})
	}

	return c.JSON(fiber.Map{
		"waste": item,
	})
}

func (h *Handler) DeleteWaste(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid waste id",
		})
	}

	if err := h.wasteSvc.DeleteWaste(c.Context(), id); err != nil {
		if errors.Is(err, repository.ErrWasteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete waste item",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UploadWasteImage stores a catalog image and returns its public URL.
func (h *Handler) UploadWasteImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "image file is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read file",
		})
	}
	defer src.Close()

	url, err := h.store.Save(storage.BucketWasteImages, "waste", file.Filename, src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to store image",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": url,
	})
}
