package repo

import (
	"context"
	"fmt"
	"time"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/money"
	"server/internal/sqlinline"
)

// CampaignRepositoryPG implements CampaignRepository using PostgreSQL.
type CampaignRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewCampaignRepository creates a new campaign repo.
func NewCampaignRepository(sql infra.SQLExecutor) *CampaignRepositoryPG {
	return &CampaignRepositoryPG{sql: sql}
}

// Create inserts a new campaign record.
func (r *CampaignRepositoryPG) Create(ctx context.Context, campaign *domain.Campaign) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertCampaign,
		campaign.ID,
		campaign.Title,
		campaign.ShortDescription,
		campaign.Description,
		int64(campaign.GoalAmount),
		campaign.CategoryID,
		campaign.CreatorID,
		string(campaign.Urgency),
		campaign.EndDate,
		campaign.Featured,
		string(campaign.Status),
	)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// GetByID returns the campaign or domain.ErrNotFound.
func (r *CampaignRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectCampaignByID, id)
	campaign, err := scanCampaign(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select campaign: %w", err)
	}
	return campaign, nil
}

// ListApproved returns every APPROVED campaign in creation order.
func (r *CampaignRepositoryPG) ListApproved(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListApprovedCampaigns)
	if err != nil {
		return nil, fmt.Errorf("list approved campaigns: %w", err)
	}
	defer rows.Close()

	var items []domain.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus applies an approval transition. Single UPDATE keyed by id, so
// concurrent approvals of the same campaign serialize in the database.
func (r *CampaignRepositoryPG) UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateCampaignStatus, id, string(status))
	if err != nil {
		return fmt.Errorf("update campaign status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountApprovedByCategory returns live APPROVED-campaign counts per category.
func (r *CampaignRepositoryPG) CountApprovedByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QCountApprovedByCategory)
	if err != nil {
		return nil, fmt.Errorf("count campaigns by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var categoryID string
		var n int
		if err := rows.Scan(&categoryID, &n); err != nil {
			return nil, err
		}
		counts[categoryID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row scanner) (*domain.Campaign, error) {
	var c domain.Campaign
	var goalMinor int64
	var urgency, status string
	var endDate *time.Time
	if err := row.Scan(
		&c.ID,
		&c.Title,
		&c.ShortDescription,
		&c.Description,
		&goalMinor,
		&c.CategoryID,
		&c.CreatorID,
		&urgency,
		&endDate,
		&c.Featured,
		&status,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	c.GoalAmount = money.Amount(goalMinor)
	c.Urgency = domain.Urgency(urgency)
	c.Status = domain.CampaignStatus(status)
	c.EndDate = endDate
	return &c, nil
}

var _ domain.CampaignRepository = (*CampaignRepositoryPG)(nil)
