package repo

import (
	"context"
	"fmt"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// AnalyticsRepositoryPG implements AnalyticsRepository using PostgreSQL.
type AnalyticsRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewAnalyticsRepository constructs the repository.
func NewAnalyticsRepository(sql infra.SQLExecutor) *AnalyticsRepositoryPG {
	return &AnalyticsRepositoryPG{sql: sql}
}

// IncrementCounters upserts metrics for the provided day.
func (r *AnalyticsRepositoryPG) IncrementCounters(ctx context.Context, day string, counters map[string]int) error {
	_, err := r.sql.Exec(ctx, sqlinline.QIncrementDailyCounters,
		day,
		counters[domain.CounterVisitors],
		counters[domain.CounterCampaignsCreated],
		counters[domain.CounterDonations],
		counters[domain.CounterDonationsFailed],
		int64(counters[domain.CounterAmountMinor]),
	)
	if err != nil {
		return fmt.Errorf("increment counters: %w", err)
	}
	return nil
}

// IncrementCountry tallies one donation for the given ISO country code.
func (r *AnalyticsRepositoryPG) IncrementCountry(ctx context.Context, code string) error {
	_, err := r.sql.Exec(ctx, sqlinline.QIncrementDonorCountry, code)
	if err != nil {
		return fmt.Errorf("increment country: %w", err)
	}
	return nil
}

// Summary returns the most recent day's counters.
func (r *AnalyticsRepositoryPG) Summary(ctx context.Context) (*domain.AnalyticsDaily, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectLatestDailySummary)
	var s domain.AnalyticsDaily
	if err := row.Scan(
		&s.Day,
		&s.Visitors,
		&s.CampaignsCreated,
		&s.Donations,
		&s.DonationsFailed,
		&s.AmountMinor,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select summary: %w", err)
	}
	return &s, nil
}

// TopCountries returns the highest donor-country tallies.
func (r *AnalyticsRepositoryPG) TopCountries(ctx context.Context, limit int) ([]domain.CountryCount, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QTopDonorCountries, limit)
	if err != nil {
		return nil, fmt.Errorf("top countries: %w", err)
	}
	defer rows.Close()

	var items []domain.CountryCount
	for rows.Next() {
		var c domain.CountryCount
		if err := rows.Scan(&c.Country, &c.Donations); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ domain.AnalyticsRepository = (*AnalyticsRepositoryPG)(nil)
