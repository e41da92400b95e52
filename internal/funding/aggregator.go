package funding

import (
	"context"
	"fmt"

	"server/internal/domain"
	"server/internal/money"
)

// Stats is the derived funding state of a campaign. It is never stored;
// totals are recomputed from the ledger on every read so listings always
// reflect the latest recorded donations.
type Stats struct {
	CurrentAmount money.Amount
	DonorCount    int
}

// Aggregator derives funding totals from the donation ledger.
type Aggregator struct {
	ledger domain.DonationLedger
}

// NewAggregator creates an aggregator over the given ledger.
func NewAggregator(ledger domain.DonationLedger) *Aggregator {
	return &Aggregator{ledger: ledger}
}

// Aggregate sums COMPLETED donation amounts for the campaign and counts
// distinct donor identifiers. Anonymous donations count toward both totals;
// uniqueness is by donor id, not display name. The result is independent of
// ledger insertion order.
func (a *Aggregator) Aggregate(ctx context.Context, campaignID string) (Stats, error) {
	donations, err := a.ledger.ListByCampaign(ctx, campaignID)
	if err != nil {
		return Stats{}, fmt.Errorf("aggregate campaign %s: %w", campaignID, err)
	}

	var stats Stats
	donors := make(map[string]struct{})
	for _, d := range donations {
		if d.Status != domain.DonationCompleted {
			continue
		}
		stats.CurrentAmount += d.Amount
		donors[d.DonorID] = struct{}{}
	}
	stats.DonorCount = len(donors)
	return stats, nil
}
