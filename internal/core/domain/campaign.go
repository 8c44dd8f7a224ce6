package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle state of an ad campaign.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// AdCampaign represents a company-owned advertising campaign.
// Budgets are stored in integer units (e.g. cents).
type AdCampaign struct {
	ID             uuid.UUID
	Title          string
	CompanyID      uuid.UUID
	Budget         int64
	Status         CampaignStatus
	ViewsCount     int64
	ReferralsCount int64
	CreatedAt      time.Time
}
