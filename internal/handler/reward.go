package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/soso009n/Ecopoint/internal/repository"
	"github.com/soso009n/Ecopoint/internal/service"
	"github.com/soso009n/Ecopoint/internal/storage"
)

func (h *Handler) GetRewards(c *fiber.Ctx) error {
	rewards, err := h.rewardSvc.GetRewards(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to get rewards",
		})
	}

	return c.JSON(fiber.Map{
		"rewards": rewards,
	})
}

func (h *Handler) GetReward(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid reward id",
		})
	}

	reward, err := h.rewardSvc.GetReward(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRewardNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to get reward",
		})
	}

	return c.JSON(fiber.Map{
		"reward": reward,
	})
}

type CreateRewardRequest struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	PointsRequired int64   `json:"points_required"`
	Description    string  `json:"description"`
	ImageURL       *string `json:"image_url"`
}

func (h *Handler) CreateReward(c *fiber.Ctx) error {
	var req CreateRewardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	reward, err := h.rewardSvc.CreateReward(c.Context(), req.Name, req.Category, req.PointsRequired, req.Description, req.ImageURL)
	if err != nil {
		if errors.Is(err, service.ErrRewardNameRequired) || errors.Is(err, service.ErrInvalidRewardPoints) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create reward",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"reward": reward,
	})
}

type UpdateRewardRequest struct {
	Name           *string `json:"name"`
	Category       *string `json:"category"`
	PointsRequired *int64  `json:"points_required"`
	Description    *string `json:"description"`
	ImageURL       *string `json:"image_url"`
}

func (h *Handler) UpdateReward(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid reward id",
		})
	}

	var req UpdateRewardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	reward, err := h.rewardSvc.UpdateReward(c.Context(), id, req.Name, req.Category, req.PointsRequired, req.Description, req.ImageURL)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRewardNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, service.ErrRewardNameRequired), errors.Is(err, service.ErrInvalidRewardPoints):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update reward",
		})
	}

	return c.JSON(fiber.Map{
		"reward": reward,
	})
}

func (h *Handler) DeleteReward(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid reward id",
		})
	}

	if err := h.rewardSvc.DeleteReward(c.Context(), id); err != nil {
		if errors.Is(err, repository.ErrRewardNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete reward",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) UploadRewardImage(c *fiber.Ctx) error {
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

	url, err := h.store.Save(storage.BucketRewardImages, "reward", file.Filename, src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to store image",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": url,
	})
}
