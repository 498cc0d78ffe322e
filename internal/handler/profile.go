package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/soso009n/Ecopoint/internal/middleware"
	"github.com/soso009n/Ecopoint/internal/repository"
	"github.com/soso009n/Ecopoint/internal/service"
	"github.com/soso009n/Ecopoint/internal/storage"
)

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	profile, err := h.profileSvc.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to get profile",
		})
	}

	return c.JSON(fiber.Map{
		"profile": profile,
	})
}

type UpdateProfileRequest struct {
	FullName   *string `json:"full_name"`
	NIM        *string `json:"nim"`
	Department *string `json:"department"`
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	profile, err := h.profileSvc.UpdateProfile(c.Context(), userID, req.FullName, req.NIM, req.Department)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProfileNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, service.ErrFullNameRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update profile",
		})
	}

	return c.JSON(fiber.Map{
		"profile": profile,
	})
}

// UploadAvatar stores the avatar image and points the profile at it.
func (h *Handler) UploadAvatar(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

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

	url, err := h.store.Save(storage.BucketAvatars, "avatar", file.Filename, src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to store avatar",
		})
	}

	profile, err := h.profileSvc.SetAvatar(c.Context(), userID, url)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update avatar",
		})
	}

	return c.JSON(fiber.Map{
		"profile": profile,
	})
}
