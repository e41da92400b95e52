package domain

import (
	"time"

	"server/internal/money"
)

// DonationStatus reflects the outcome of the payment capture. Only COMPLETED
// donations count toward a campaign's raised total.
type DonationStatus string

const (
	DonationPending   DonationStatus = "PENDING"
	DonationCompleted DonationStatus = "COMPLETED"
	DonationFailed    DonationStatus = "FAILED"
)

// Donation is one ledger entry: a supporter contribution toward a campaign.
// Entries are append-only; corrections would be new compensating records,
// never updates.
type Donation struct {
	ID         string
	CampaignID string
	DonorID    string
	Amount     money.Amount
	Message    string
	Anonymous  bool
	Status     DonationStatus
	PaymentRef string
	CreatedAt  time.Time
}
