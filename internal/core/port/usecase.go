package port

import (
	"context"

	"github.com/google/uuid"

	"publicaya/internal/core/domain"
)

// View names the screen the client should render for a resolved state.
type View string

const (
	ViewLoading    View = "loading"
	ViewAuth       View = "auth"
	ViewPersonal   View = "personal"
	ViewCompany    View = "company"
	ViewAdmin      View = "admin"
	ViewUnassigned View = "unassigned"
)

// ResolvedUser merges session identity with the profile row. Role is
// derived from the profile and defaults to unassigned when unrecognized.
type ResolvedUser struct {
	Profile domain.Profile
	Role    domain.Role
}

// SessionResolver turns a session token into a resolved user, or reports
// that no user is signed in.
type SessionResolver interface {
	// ResolveToken performs one resolution pass for the given token. A
	// missing or invalid token yields (nil, RoleUnassigned, nil): absence
	// of a session is a state, not an error.
	ResolveToken(ctx context.Context, token string) (*ResolvedUser, domain.Role, error)
	// State reports the resolver's event-driven view: whether a resolution
	// pass is in flight, the user it last derived and their role.
	State() (loading bool, user *ResolvedUser, role domain.Role)
}

// PersonalOverview is the personal dashboard read model.
type PersonalOverview struct {
	Balance            int64  `json:"balance"`
	AdsViewed          int64  `json:"ads_viewed"`
	ReferredUsersCount int    `json:"referred_users_count"`
	ReferralCode       string `json:"referral_code"`
}

// AdViewResult reports the outcome of one ad interaction.
type AdViewResult struct {
	AdID    string             `json:"ad_id"`
	Success bool               `json:"success"`
	State   domain.AdViewState `json:"state"`
}

// PersonalUseCase serves the personal dashboard.
type PersonalUseCase interface {
	Overview(ctx context.Context, user *ResolvedUser) (*PersonalOverview, error)
	// ViewAd runs the ad interaction flow to completion and, on a
	// successful view, records a pending ad-reward transaction.
	ViewAd(ctx context.Context, userID uuid.UUID, adID string) (*AdViewResult, error)
}

// CompanyOverview is the company dashboard read model. Campaign metrics
// other than the budget are static placeholders.
type CompanyOverview struct {
	CampaignBudget   int64 `json:"campaign_budget"`
	ActiveCampaigns  int64 `json:"active_campaigns"`
	TotalImpressions int64 `json:"total_impressions"`
}

// CompanyUseCase serves the company dashboard.
type CompanyUseCase interface {
	Overview(ctx context.Context, user *ResolvedUser) (*CompanyOverview, error)
}

// AdminOverview aggregates everything the admin dashboard shows.
type AdminOverview struct {
	Users               []domain.Profile     `json:"users"`
	Companies           []domain.Profile     `json:"companies"`
	Transactions        []domain.Transaction `json:"transactions"`
	ActiveAds           int64                `json:"active_ads"`
	PendingTransactions int64                `json:"pending_transactions"`
}

// AdminUseCase serves the admin dashboard and its two mutations. Approve
// and Reject re-run the full fetch batch after a successful mutation and
// return the refreshed overview.
type AdminUseCase interface {
	Overview(ctx context.Context) (*AdminOverview, error)
	Approve(ctx context.Context, txID, userID uuid.UUID, amount int64) (*AdminOverview, error)
	Reject(ctx context.Context, txID uuid.UUID) (*AdminOverview, error)
}
