package postgres

import "context"

// CampaignRepository implements port.CampaignStore. Only aggregate counts
// are read; campaign management itself is out of scope.
type CampaignRepository struct{ db *DB }

// NewCampaignRepository constructs a campaign repository.
func NewCampaignRepository(db *DB) *CampaignRepository { return &CampaignRepository{db: db} }

// CountActive returns the number of currently active ad campaigns.
func (r *CampaignRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.Pool.QueryRow(ctx, `SELECT count(*) FROM ads WHERE status='active'`).Scan(&n)
	return n, err
}
