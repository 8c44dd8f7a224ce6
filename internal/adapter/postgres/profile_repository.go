package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

// ProfileRepository implements port.ProfileStore.
type ProfileRepository struct{ db *DB }

// NewProfileRepository constructs a profile repository.
func NewProfileRepository(db *DB) *ProfileRepository { return &ProfileRepository{db: db} }

const profileColumns = `id, email, role, COALESCE(name, ''), balance, campaign_budget, referral_code, referred_users_count, created_at`

// Insert stores a new profile row. Created exactly once at sign-up.
func (r *ProfileRepository) Insert(ctx context.Context, p *domain.Profile) error {
	const q = `
INSERT INTO profiles (id, email, role, name, balance, campaign_budget, referral_code, referred_users_count)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8)`
	_, err := r.db.Pool.Exec(ctx, q,
		p.ID, p.Email, string(p.Role), p.Name, p.Balance, p.CampaignBudget, p.ReferralCode, p.ReferredUsersCount)
	return err
}

// GetByID selects the profile for a principal identity.
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	q := `SELECT ` + profileColumns + ` FROM profiles WHERE id=$1`
	p, err := scanProfile(r.db.Pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListByRole returns all profiles with the given role.
func (r *ProfileRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.Profile, error) {
	q := `SELECT ` + profileColumns + ` FROM profiles WHERE role=$1 ORDER BY created_at`
	rows, err := r.db.Pool.Query(ctx, q, string(role))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Profile, error) {
		p, err := scanProfile(row)
		if err != nil {
			return domain.Profile{}, err
		}
		return *p, nil
	})
}

// AdjustBalance applies a signed amount through the update_user_balance
// SQL function, atomic at the backend.
func (r *ProfileRepository) AdjustBalance(ctx context.Context, userID uuid.UUID, amount int64) error {
	_, err := r.db.Pool.Exec(ctx, `SELECT update_user_balance($1, $2)`, userID, amount)
	return err
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		p    domain.Profile
		role string
	)
	err := row.Scan(&p.ID, &p.Email, &role, &p.Name, &p.Balance, &p.CampaignBudget,
		&p.ReferralCode, &p.ReferredUsersCount, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Role = domain.RoleFromString(role)
	return &p, nil
}
