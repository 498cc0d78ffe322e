package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/soso009n/Ecopoint/internal/model"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewWithDB(sqlx.NewDb(db, "sqlmock")), mock
}

var txnColumns = []string{"id", "user_id", "waste_id", "waste_name", "weight_kg", "total_points", "status", "image_url", "date"}

func expectRedemption(mock sqlmock.Sqlmock, userID uuid.UUID, reward *model.Reward, balance int64) {
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID.String()))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(total_points), 0) FROM transactions WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(balance))

	if balance >= reward.PointsRequired {
		mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO transactions (user_id, waste_id, waste_name, weight_kg, total_points, status, image_url, date)
		VALUES ($1, NULL, $2, 0, $3, $4, $5, NOW())
		RETURNING *`)).
			WithArgs(userID, "Redeemed: "+reward.Name, -reward.PointsRequired, model.TransactionStatusCompleted, nil).
			WillReturnRows(sqlmock.NewRows(txnColumns).
				AddRow(uuid.New().String(), userID.String(), nil, "Redeemed: "+reward.Name, 0.0, -reward.PointsRequired, "Selesai", nil, time.Now()))
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

// Two redemptions of 300 against a balance of 400: the user row lock
// serializes them, so the second request observes the balance left by the
// first and must fail.
func TestInsertRedemptionSerializesCompetingRequests(t *testing.T) {
	repo, mock := newMockRepo(t)

	userID := uuid.New()
	reward := &model.Reward{ID: uuid.New(), Name: "Totebag", PointsRequired: 300}

	expectRedemption(mock, userID, reward, 400)
	expectRedemption(mock, userID, reward, 100)

	first, err := repo.InsertRedemption(context.Background(), userID, reward)
	require.NoError(t, err)
	require.Equal(t, int64(-300), first.TotalPoints)

	_, err = repo.InsertRedemption(context.Background(), userID, reward)
	require.ErrorIs(t, err, ErrInsufficientPoints)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertRedemptionUnknownUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	userID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.InsertRedemption(context.Background(), userID, &model.Reward{Name: "Totebag", PointsRequired: 300})
	require.ErrorIs(t, err, ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTransactionScopedToOwner(t *testing.T) {
	repo, mock := newMockRepo(t)

	userID := uuid.New()
	txnID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions WHERE id = $1 AND user_id = $2")).
		WithArgs(txnID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTransaction(context.Background(), userID, txnID)
	require.ErrorIs(t, err, ErrTransactionNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
