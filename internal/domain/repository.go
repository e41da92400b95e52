package domain

import "context"

// CampaignRepository defines persistence for campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *Campaign) error
	GetByID(ctx context.Context, id string) (*Campaign, error)
	// ListApproved returns every APPROVED campaign in creation order.
	ListApproved(ctx context.Context) ([]Campaign, error)
	UpdateStatus(ctx context.Context, id string, status CampaignStatus) error
	// CountApprovedByCategory returns live APPROVED-campaign counts keyed by
	// category id.
	CountApprovedByCategory(ctx context.Context) (map[string]int, error)
}

// DonationLedger is the append-only record of donations. Record must be
// atomic and reject a payment reference that was already recorded, so a
// double-submitted capture never counts twice. No update or delete exists.
type DonationLedger interface {
	Record(ctx context.Context, donation *Donation) error
	// ListByCampaign returns the campaign's donations oldest first. The
	// returned slice is a snapshot; callers never observe a half-written
	// entry.
	ListByCampaign(ctx context.Context, campaignID string) ([]Donation, error)
}

// CategoryRepository defines persistence for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
}

// UserRepository defines access methods for users.
type UserRepository interface {
	UpsertBySubject(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// AnalyticsRepository updates platform metrics counters.
type AnalyticsRepository interface {
	IncrementCounters(ctx context.Context, day string, counters map[string]int) error
	IncrementCountry(ctx context.Context, code string) error
	Summary(ctx context.Context) (*AnalyticsDaily, error)
	TopCountries(ctx context.Context, limit int) ([]CountryCount, error)
}
