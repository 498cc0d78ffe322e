package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/soso009n/Ecopoint/internal/config"
	"github.com/soso009n/Ecopoint/internal/model"
	"github.com/soso009n/Ecopoint/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
		},
	}
}

func setupApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/protected", Auth(cfg), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": GetUserID(c).String()})
	})
	app.Get("/admin", Auth(cfg), AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthAcceptsValidToken(t *testing.T) {
	cfg := testConfig()
	authSvc := service.NewAuthService(nil, cfg)
	app := setupApp(cfg)

	userID := uuid.New()
	token, err := authSvc.SignToken(userID, model.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthRejectsMissingOrBadToken(t *testing.T) {
	cfg := testConfig()
	app := setupApp(cfg)

	// No header at all
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Garbage token
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Token signed with another secret
	otherCfg := testConfig()
	otherCfg.Server.JWTSecret = "other-secret"
	token, err := service.NewAuthService(nil, otherCfg).SignToken(uuid.New(), model.RoleUser)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminOnlyChecksRole(t *testing.T) {
	cfg := testConfig()
	authSvc := service.NewAuthService(nil, cfg)
	app := setupApp(cfg)

	userToken, err := authSvc.SignToken(uuid.New(), model.RoleUser)
	require.NoError(t, err)
	adminToken, err := authSvc.SignToken(uuid.New(), model.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
