package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soso009n/Ecopoint/internal/config"
	"github.com/soso009n/Ecopoint/internal/service"
	"github.com/soso009n/Ecopoint/internal/storage"
)

type Handler struct {
	cfg        *config.Config
	authSvc    *service.AuthService
	profileSvc *service.ProfileService
	wasteSvc   *service.WasteService
	rewardSvc  *service.RewardService
	txSvc      *service.TransactionService
	ledgerSvc  *service.LedgerService
	store      *storage.Store
}

func New(
	cfg *config.Config,
	authSvc *service.AuthService,
	profileSvc *service.ProfileService,
	wasteSvc *service.WasteService,
	rewardSvc *service.RewardService,
	txSvc *service.TransactionService,
	ledgerSvc *service.LedgerService,
	store *storage.Store,
) *Handler {
	return &Handler{
		cfg:        cfg,
		authSvc:    authSvc,
		profileSvc: profileSvc,
		wasteSvc:   wasteSvc,
		rewardSvc:  rewardSvc,
		txSvc:      txSvc,
		ledgerSvc:  ledgerSvc,
		store:      store,
	}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
