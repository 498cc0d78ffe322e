package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/soso009n/Ecopoint/internal/config"
	"github.com/soso009n/Ecopoint/internal/middleware"
	"github.com/soso009n/Ecopoint/internal/model"
	"github.com/soso009n/Ecopoint/internal/repository"
	"github.com/soso009n/Ecopoint/internal/service"
)

type testEnv struct {
	app  *fiber.App
	mock sqlmock.Sqlmock
	auth *service.AuthService
	cfg  *config.Config
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewWithDB(sqlx.NewDb(db, "sqlmock"))
	cfg := &config.Config{
		Server: config.ServerConfig{
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
		},
	}

	authSvc := service.NewAuthService(repo, cfg)
	h := New(
		cfg,
		authSvc,
		service.NewProfileService(repo),
		service.NewWasteService(repo),
		service.NewRewardService(repo),
		service.NewTransactionService(repo),
		service.NewLedgerService(repo),
		nil,
	)

	app := fiber.New()
	api := app.Group("/api", middleware.Auth(cfg))
	api.Post("/transactions/deposit", h.CreateDeposit)
	api.Get("/transactions", h.GetHistory)
	api.Get("/transactions/summary", h.GetSummary)
	api.Post("/rewards/:id/redeem", h.RedeemReward)

	admin := app.Group("/api/admin", middleware.Auth(cfg), middleware.AdminOnly())
	admin.Post("/waste", h.CreateWaste)

	return &testEnv{app: app, mock: mock, auth: authSvc, cfg: cfg}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateDepositHTTP(t *testing.T) {
	env := setupEnv(t)

	userID := uuid.New()
	wasteID := uuid.New()
	token, err := env.auth.SignToken(userID, model.RoleUser)
	require.NoError(t, err)

	now := time.Now()
	env.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM waste_catalog WHERE id = $1")).
		WithArgs(wasteID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "price_per_kg", "point_per_kg", "description", "image_url", "created_at"}).
			AddRow(wasteID.String(), "Botol Plastik", "Plastik", 2000.0, 1000.0, "", nil, now))
	env.mock.ExpectQuery("INSERT INTO transactions").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "waste_id", "waste_name", "weight_kg", "total_points", "status", "image_url", "date"}).
			AddRow(uuid.New().String(), userID.String(), wasteID.String(), "Botol Plastik", 0.5, 500, "Selesai", nil, now))

	resp := env.request(t, http.MethodPost, "/api/transactions/deposit", token, DepositRequest{
		WasteID:  wasteID.String(),
		WeightKg: 0.5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Transaction model.Transaction `json:"transaction"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, int64(500), body.Transaction.TotalPoints)
	require.NoError(t, env.mock.ExpectationsWereMet())
}

func TestCreateDepositRejectsZeroWeight(t *testing.T) {
	env := setupEnv(t)

	token, err := env.auth.SignToken(uuid.New(), model.RoleUser)
	require.NoError(t, err)

	resp := env.request(t, http.MethodPost, "/api/transactions/deposit", token, DepositRequest{
		WasteID:  uuid.New().String(),
		WeightKg: 0,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NoError(t, env.mock.ExpectationsWereMet())
}

func TestRedeemInsufficientPointsHTTP(t *testing.T) {
	env := setupEnv(t)

	userID := uuid.New()
	rewardID := uuid.New()
	token, err := env.auth.SignToken(userID, model.RoleUser)
	require.NoError(t, err)

	now := time.Now()
	env.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM rewards_catalog WHERE id = $1")).
		WithArgs(rewardID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "points_required", "description", "image_url", "created_at"}).
			AddRow(rewardID.String(), "Tumbler", "Merchandise", 500, "", nil, now))
	env.mock.ExpectBegin()
	env.mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID.String()))
	env.mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(total_points), 0) FROM transactions WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(499))
	env.mock.ExpectRollback()

	// The handler re-reads the balance for the error payload.
	env.mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT * FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, id DESC`)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "waste_id", "waste_name", "weight_kg", "total_points", "status", "image_url", "date"}).
			AddRow(uuid.New().String(), userID.String(), nil, "Kaleng", 0.499, 499, "Selesai", nil, now))

	resp := env.request(t, http.MethodPost, "/api/rewards/"+rewardID.String()+"/redeem", token, nil)
	require.Equal(t, http.StatusPaymentRequired, resp.StatusCode)

	var body struct {
		Error   string `json:"error"`
		Balance int64  `json:"balance"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "insufficient points", body.Error)
	require.Equal(t, int64(499), body.Balance)
	require.NoError(t, env.mock.ExpectationsWereMet())
}

func TestAdminRoutesRejectRegularUser(t *testing.T) {
	env := setupEnv(t)

	token, err := env.auth.SignToken(uuid.New(), model.RoleUser)
	require.NoError(t, err)

	resp := env.request(t, http.MethodPost, "/api/admin/waste", token, CreateWasteRequest{Name: "Kaca"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.NoError(t, env.mock.ExpectationsWereMet())
}

func TestTransactionsRequireToken(t *testing.T) {
	env := setupEnv(t)

	resp := env.request(t, http.MethodGet, "/api/transactions", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.NoError(t, env.mock.ExpectationsWereMet())
}
