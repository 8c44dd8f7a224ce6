package db

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"publicaya/internal/core/domain"
)

// Seed inserts demo data: one admin, a few personal users and companies,
// pending transactions for the admin queue and a handful of active ads.
// All demo accounts share the password "password".
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	createAccount := func(email, role string, balance, budget int64) (uuid.UUID, error) {
		id := uuid.New()
		_, err := db.Exec(ctx, `INSERT INTO accounts (id, email, password_hash)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`, id, email, string(hash))
		if err != nil {
			return uuid.Nil, err
		}
		_, err = db.Exec(ctx, `INSERT INTO profiles
    (id, email, role, balance, campaign_budget, referral_code, referred_users_count)
VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT DO NOTHING`,
			id, email, role, balance, budget, domain.NewReferralCode(), rand.Intn(10))
		if err != nil {
			return uuid.Nil, err
		}
		return id, nil
	}

	if _, err = createAccount("admin@publicaya.test", "admin", 0, 0); err != nil {
		return err
	}

	userIDs := make([]uuid.UUID, 0, 5)
	for i := 1; i <= 5; i++ {
		id, err := createAccount(fmt.Sprintf("user%d@publicaya.test", i), "user", int64(rand.Intn(50000)), 0)
		if err != nil {
			return err
		}
		userIDs = append(userIDs, id)
	}

	companyIDs := make([]uuid.UUID, 0, 3)
	for i := 1; i <= 3; i++ {
		id, err := createAccount(fmt.Sprintf("company%d@publicaya.test", i), "company", 0, int64(100000*i))
		if err != nil {
			return err
		}
		companyIDs = append(companyIDs, id)
	}

	kinds := []string{"deposit", "withdrawal", "ad_reward", "referral_reward"}
	for i := 0; i < 20; i++ {
		userID := userIDs[rand.Intn(len(userIDs))]
		amount := int64(rand.Intn(10000) + 100)
		kind := kinds[rand.Intn(len(kinds))]
		if kind == "withdrawal" {
			amount = -amount
		}
		_, err = db.Exec(ctx, `INSERT INTO transactions (id, user_id, amount, type, status)
VALUES ($1, $2, $3, $4, 'pending') ON CONFLICT DO NOTHING`,
			uuid.New(), userID, amount, kind)
		if err != nil {
			return err
		}
	}

	statuses := []string{"active", "active", "paused", "completed"}
	for i := 1; i <= 8; i++ {
		companyID := companyIDs[rand.Intn(len(companyIDs))]
		_, err = db.Exec(ctx, `INSERT INTO ads
    (id, title, company_id, budget, status, views_count, referrals_count)
VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT DO NOTHING`,
			uuid.New(), fmt.Sprintf("Campaña %d", i), companyID, int64(10000*i),
			statuses[rand.Intn(len(statuses))], int64(rand.Intn(5000)), int64(rand.Intn(50)))
		if err != nil {
			return err
		}
	}
	return nil
}
