package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"publicaya/internal/core/domain"
)

var (
	// ErrEmailTaken is returned when an account with the same email exists.
	ErrEmailTaken = errors.New("ya existe una cuenta con ese correo")
	// ErrAccountNotFound is returned when no credential record matches.
	ErrAccountNotFound = errors.New("account not found")
	// ErrProfileNotFound is returned when no profile row matches an identity.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrTransactionFinal is returned when a status update targets a
	// transaction that already left the pending state. Transitions are
	// one-way.
	ErrTransactionFinal = errors.New("transaction is not pending")
)

// AccountStore persists credential records. It is an outbound port of the
// auth layer.
type AccountStore interface {
	// Create inserts a new account. A duplicate email yields ErrEmailTaken.
	Create(ctx context.Context, a *domain.Account) error
	// GetByEmail returns the account for an email, or ErrAccountNotFound.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	// UpdatePassword replaces the stored password hash, or returns
	// ErrAccountNotFound.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	// Delete removes an account. Deleting a missing account is not an
	// error; sign-up rollback relies on this being idempotent.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileStore persists application profiles and owns the atomic balance
// adjustment procedure.
type ProfileStore interface {
	Insert(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.Profile, error)
	// AdjustBalance applies a signed amount to a user's balance in a single
	// backend round-trip. Atomicity is the store's responsibility.
	AdjustBalance(ctx context.Context, userID uuid.UUID, amount int64) error
}

// TransactionStore persists money movements pending admin review.
type TransactionStore interface {
	Insert(ctx context.Context, t *domain.Transaction) error
	// List returns all transactions, newest first.
	List(ctx context.Context) ([]domain.Transaction, error)
	CountPending(ctx context.Context) (int64, error)
	// SetStatus moves a pending transaction to a terminal status. It
	// returns ErrTransactionFinal when the row already left pending.
	SetStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error
}

// CampaignStore reads company ad campaigns. Only aggregate counts are
// exercised by the dashboards.
type CampaignStore interface {
	CountActive(ctx context.Context) (int64, error)
}
