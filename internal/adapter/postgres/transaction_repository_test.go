package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return NewDB(mock), mock
}

// TestTransactionRepoSetStatusIsOneWay: only pending rows are updated; a
// terminal row yields ErrTransactionFinal.
func TestTransactionRepoSetStatusIsOneWay(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTransactionRepository(db)
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectExec(`UPDATE transactions SET status=\$2 WHERE id=\$1 AND status='pending'`).
		WithArgs(id, "approved").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.SetStatus(ctx, id, domain.TxApproved))

	// already approved or rejected: zero rows touched
	mock.ExpectExec(`UPDATE transactions SET status=\$2 WHERE id=\$1 AND status='pending'`).
		WithArgs(id, "rejected").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err := r.SetStatus(ctx, id, domain.TxRejected)
	require.ErrorIs(t, err, port.ErrTransactionFinal)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepoInsert(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTransactionRepository(db)

	tx := &domain.Transaction{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Amount: 50,
		Kind:   domain.TxAdReward,
		Status: domain.TxPending,
	}
	mock.ExpectExec(`INSERT INTO transactions \(id, user_id, amount, type, status\)`).
		WithArgs(tx.ID, tx.UserID, tx.Amount, "ad_reward", "pending").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.Insert(context.Background(), tx))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepoList(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTransactionRepository(db)

	newer := uuid.New()
	older := uuid.New()
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT id, user_id, amount, type, status, created_at\s+FROM transactions ORDER BY created_at DESC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "amount", "type", "status", "created_at"}).
			AddRow(newer, userID, int64(100), "deposit", "pending", now).
			AddRow(older, userID, int64(-30), "withdrawal", "approved", now.Add(-time.Hour)))

	got, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, newer, got[0].ID)
	require.Equal(t, domain.TxDeposit, got[0].Kind)
	require.Equal(t, domain.TxApproved, got[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepoCountPending(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTransactionRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM transactions WHERE status='pending'`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	n, err := r.CountPending(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 7, n)
}
