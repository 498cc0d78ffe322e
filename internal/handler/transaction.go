package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/soso009n/Ecopoint/internal/middleware"
	"github.com/soso009n/Ecopoint/internal/repository"
	"github.com/soso009n/Ecopoint/internal/service"
)

type DepositRequest struct {
	WasteID  string  `json:"waste_id"`
	WeightKg float64 `json:"weight_kg"`
}

// CreateDeposit logs a waste deposit and credits the earned points.
func (h *Handler) CreateDeposit(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req DepositRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	wasteID, err := uuid.Parse(req.WasteID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid waste id",
		})
	}

	txn, err := h.txSvc.RecordDeposit(c.Context(), userID, wasteID, req.WeightKg)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, service.ErrInvalidWeight):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, repository.ErrWasteNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to record deposit",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"transaction": txn,
	})
}

// GetHistory returns the user's ledger, most recent first.
func (h *Handler) GetHistory(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	transactions, err := h.ledgerSvc.GetHistory(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to get history",
		})
	}

	return c.JSON(fiber.Map{
		"transactions": transactions,
	})
}

// GetSummary returns the derived ledger totals for the home/profile pages.
func (h *Handler) GetSummary(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	summary, err := h.ledgerSvc.GetSummary(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to get summary",
		})
	}

	return c.JSON(summary)
}

func (h *Handler) DeleteTransaction(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid transaction id",
		})
	}

	if err := h.txSvc.DeleteTransaction(c.Context(), userID, id); err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete transaction",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RedeemReward exchanges points for the reward in the URL. The sufficiency
// check and the debit happen atomically in the store.
func (h *Handler) RedeemReward(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	rewardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid reward id",
		})
	}

	txn, err := h.txSvc.Redeem(c.Context(), userID, rewardID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, repository.ErrRewardNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, repository.ErrInsufficientPoints):
			balance, _ := h.ledgerSvc.GetBalance(c.Context(), userID)
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
				"error":   "insufficient points",
				"balance": balance,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to redeem reward",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"transaction": txn,
	})
}
