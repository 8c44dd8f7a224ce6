package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

// TransactionRepository implements port.TransactionStore.
type TransactionRepository struct{ db *DB }

// NewTransactionRepository constructs a transaction repository.
func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Insert stores a new pending transaction.
func (r *TransactionRepository) Insert(ctx context.Context, t *domain.Transaction) error {
	const q = `
INSERT INTO transactions (id, user_id, amount, type, status)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Pool.Exec(ctx, q, t.ID, t.UserID, t.Amount, string(t.Kind), string(t.Status))
	return err
}

// List returns all transactions, newest first.
func (r *TransactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	const q = `
SELECT id, user_id, amount, type, status, created_at
FROM transactions ORDER BY created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var (
			t            domain.Transaction
			kind, status string
		)
		err := row.Scan(&t.ID, &t.UserID, &t.Amount, &kind, &status, &t.CreatedAt)
		t.Kind = domain.TransactionKind(kind)
		t.Status = domain.TransactionStatus(status)
		return t, err
	})
}

// CountPending returns the number of transactions awaiting review.
func (r *TransactionRepository) CountPending(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.Pool.QueryRow(ctx, `SELECT count(*) FROM transactions WHERE status='pending'`).Scan(&n)
	return n, err
}

// SetStatus moves a pending transaction to a terminal status. The WHERE
// clause enforces the one-way transition: a row that already left pending
// is not touched and ErrTransactionFinal is returned.
func (r *TransactionRepository) SetStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error {
	const q = `UPDATE transactions SET status=$2 WHERE id=$1 AND status='pending'`
	tag, err := r.db.Pool.Exec(ctx, q, id, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrTransactionFinal
	}
	return nil
}
