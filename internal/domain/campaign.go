package domain

import (
	"time"

	"server/internal/money"
)

// CampaignStatus tracks the moderation lifecycle of a campaign.
type CampaignStatus string

const (
	CampaignPending  CampaignStatus = "PENDING"
	CampaignApproved CampaignStatus = "APPROVED"
	CampaignRejected CampaignStatus = "REJECTED"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignPending, CampaignApproved, CampaignRejected:
		return true
	}
	return false
}

// Urgency is the creator-declared priority of a campaign. Display only; no
// logic branches on it.
type Urgency string

const (
	UrgencyLow      Urgency = "LOW"
	UrgencyMedium   Urgency = "MEDIUM"
	UrgencyHigh     Urgency = "HIGH"
	UrgencyCritical Urgency = "CRITICAL"
)

// Valid reports whether the urgency is a known level.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// Campaign represents a fundraising request created by a student. Campaigns
// start in PENDING and become visible to listings only once APPROVED. Once
// approved they are immutable apart from accumulating donations.
type Campaign struct {
	ID               string
	Title            string
	ShortDescription string
	Description      string
	GoalAmount       money.Amount
	CategoryID       string
	CreatorID        string
	Urgency          Urgency
	EndDate          *time.Time
	Featured         bool
	Status           CampaignStatus
	CreatedAt        time.Time
}
