package usecase

import (
	"context"

	"publicaya/internal/core/port"
)

// Campaign metrics other than the budget are static placeholders until
// per-company campaign reporting lands.
const (
	activeCampaignsPlaceholder  = 5
	totalImpressionsPlaceholder = 150000
)

// CompanyUseCase serves the company dashboard read model.
type CompanyUseCase struct{}

// NewCompanyUseCase constructs the company dashboard use case.
func NewCompanyUseCase() *CompanyUseCase {
	return &CompanyUseCase{}
}

// Overview builds the company read model from the resolved profile.
func (u *CompanyUseCase) Overview(ctx context.Context, user *port.ResolvedUser) (*port.CompanyOverview, error) {
	return &port.CompanyOverview{
		CampaignBudget:   user.Profile.CampaignBudget,
		ActiveCampaigns:  activeCampaignsPlaceholder,
		TotalImpressions: totalImpressionsPlaceholder,
	}, nil
}
