package handlers

import (
	"errors"
	"net/http"

	"server/internal/domain"
	"server/internal/money"
)

// StatsSummary answers GET /api/stats: platform totals computed fresh from
// the ledger plus the daily analytics counters and donor-country tallies.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	campaigns, err := a.Campaigns.ListApproved(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}

	var totalRaised money.Amount
	var totalDonations int
	for _, c := range campaigns {
		donations, err := a.Ledger.ListByCampaign(r.Context(), c.ID)
		if err != nil {
			a.fail(w, err)
			return
		}
		for _, d := range donations {
			if d.Status != domain.DonationCompleted {
				continue
			}
			totalRaised += d.Amount
			totalDonations++
		}
	}

	payload := map[string]any{
		"totalRaised":       totalRaised.Float64(),
		"approvedCampaigns": len(campaigns),
		"totalDonations":    totalDonations,
	}

	if summary, err := a.Analytics.Summary(r.Context()); err == nil {
		payload["today"] = map[string]any{
			"day":               summary.Day.Format("2006-01-02"),
			"visitors":          summary.Visitors,
			"campaignsCreated":  summary.CampaignsCreated,
			"donationsRecorded": summary.Donations,
			"donationsFailed":   summary.DonationsFailed,
			"amountRaised":      money.Amount(summary.AmountMinor).Float64(),
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		a.Logger.Warn().Err(err).Msg("load analytics summary failed")
	}

	if countries, err := a.Analytics.TopCountries(r.Context(), 5); err == nil && len(countries) > 0 {
		top := make([]map[string]any, 0, len(countries))
		for _, c := range countries {
			top = append(top, map[string]any{"country": c.Country, "donations": c.Donations})
		}
		payload["topDonorCountries"] = top
	}

	a.json(w, http.StatusOK, payload)
}
