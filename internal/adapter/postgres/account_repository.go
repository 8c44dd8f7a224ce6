package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

// AccountRepository implements port.AccountStore.
type AccountRepository struct{ db *DB }

// NewAccountRepository constructs an account repository.
func NewAccountRepository(db *DB) *AccountRepository { return &AccountRepository{db: db} }

// Create inserts a new credential record.
func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	const q = `INSERT INTO accounts (id, email, password_hash) VALUES ($1, $2, $3)`
	_, err := r.db.Pool.Exec(ctx, q, a.ID, a.Email, a.PasswordHash)
	if isUniqueViolation(err) {
		return port.ErrEmailTaken
	}
	return err
}

// GetByEmail selects an account by email.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const q = `SELECT id, email, password_hash, created_at FROM accounts WHERE email=$1`
	var a domain.Account
	err := r.db.Pool.QueryRow(ctx, q, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdatePassword replaces the stored hash for an account.
func (r *AccountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.db.Pool.Exec(ctx, `UPDATE accounts SET password_hash=$2 WHERE id=$1`, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrAccountNotFound
	}
	return nil
}

// Delete removes an account and its profile row. Missing rows are fine:
// the sign-up rollback may race a concurrent cleanup.
func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Pool.Exec(ctx, `DELETE FROM profiles WHERE id=$1`, id); err != nil {
		return err
	}
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM accounts WHERE id=$1`, id)
	return err
}
