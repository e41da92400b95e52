package domain

import "time"

// Counter names accepted by AnalyticsRepository.IncrementCounters.
const (
	CounterVisitors         = "visitors"
	CounterCampaignsCreated = "campaigns_created"
	CounterDonations        = "donations_recorded"
	CounterDonationsFailed  = "donations_failed"
	CounterAmountMinor      = "amount_minor"
)

// AnalyticsDaily stores aggregated metrics for a specific day.
type AnalyticsDaily struct {
	Day              time.Time
	Visitors         int
	CampaignsCreated int
	Donations        int
	DonationsFailed  int
	AmountMinor      int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CountryCount is a donor-country tally used on the stats dashboard.
type CountryCount struct {
	Country   string
	Donations int
}
