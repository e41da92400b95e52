package funding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"server/internal/domain"
	"server/internal/money"
)

const (
	maxTitleLen       = 100
	maxShortDescLen   = 200
	maxDescriptionLen = 5000
	maxMessageLen     = 500
)

// Limits holds the configurable validation thresholds in minor units.
type Limits struct {
	MinGoal     money.Amount
	MinDonation money.Amount
}

// DefaultLimits returns the platform defaults: $50 goal, $5 donation.
func DefaultLimits() Limits {
	return Limits{MinGoal: 50_00, MinDonation: 5_00}
}

// Validator gatekeeps new campaigns and donations before they reach the
// durable collections. All checks run before any mutation; on failure the
// caller gets a field-level ValidationError and nothing is written.
type Validator struct {
	categories domain.CategoryRepository
	campaigns  domain.CampaignRepository
	limits     Limits
	now        func() time.Time
}

// NewValidator creates a validator with the given thresholds.
func NewValidator(categories domain.CategoryRepository, campaigns domain.CampaignRepository, limits Limits) *Validator {
	return &Validator{
		categories: categories,
		campaigns:  campaigns,
		limits:     limits,
		now:        time.Now,
	}
}

// CampaignInput is a new-campaign submission before validation. GoalAmount
// is the raw request value; the validator owns the numeric check.
type CampaignInput struct {
	Title            string
	ShortDescription string
	Description      string
	GoalAmount       string
	CategoryID       string
	Urgency          string
	EndDate          *time.Time
	Featured         bool
}

// ValidateCampaign checks the submission and, on success, returns a new
// PENDING campaign owned by the actor.
func (v *Validator) ValidateCampaign(ctx context.Context, actorID string, in CampaignInput) (*domain.Campaign, error) {
	verr := domain.NewValidationError()

	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		verr.Add("title", "title is required")
	case utf8.RuneCountInString(title) > maxTitleLen:
		verr.Add("title", fmt.Sprintf("title must be at most %d characters", maxTitleLen))
	}

	short := strings.TrimSpace(in.ShortDescription)
	switch {
	case short == "":
		verr.Add("shortDescription", "short description is required")
	case utf8.RuneCountInString(short) > maxShortDescLen:
		verr.Add("shortDescription", fmt.Sprintf("short description must be at most %d characters", maxShortDescLen))
	}

	desc := strings.TrimSpace(in.Description)
	switch {
	case desc == "":
		verr.Add("description", "description is required")
	case utf8.RuneCountInString(desc) > maxDescriptionLen:
		verr.Add("description", fmt.Sprintf("description must be at most %d characters", maxDescriptionLen))
	}

	goal, err := money.Parse(in.GoalAmount)
	switch {
	case err != nil:
		verr.Add("goalAmount", "goal amount must be a number")
	case goal < v.limits.MinGoal:
		verr.Add("goalAmount", fmt.Sprintf("minimum goal is $%s", v.limits.MinGoal))
	}

	if in.CategoryID == "" {
		verr.Add("categoryId", "category is required")
	} else if _, err := v.categories.GetByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			verr.Add("categoryId", "category does not exist")
		} else {
			return nil, fmt.Errorf("lookup category %s: %w", in.CategoryID, err)
		}
	}

	urgency := domain.UrgencyMedium
	if raw := strings.TrimSpace(in.Urgency); raw != "" {
		urgency = domain.Urgency(strings.ToUpper(raw))
		if !urgency.Valid() {
			verr.Add("urgency", "urgency must be LOW, MEDIUM, HIGH, or CRITICAL")
		}
	}

	if in.EndDate != nil && in.EndDate.Before(v.now()) {
		verr.Add("endDate", "end date must not be in the past")
	}

	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	return &domain.Campaign{
		ID:               uuid.NewString(),
		Title:            title,
		ShortDescription: short,
		Description:      desc,
		GoalAmount:       goal,
		CategoryID:       in.CategoryID,
		CreatorID:        actorID,
		Urgency:          urgency,
		EndDate:          in.EndDate,
		Featured:         in.Featured,
		Status:           domain.CampaignPending,
		CreatedAt:        v.now().UTC(),
	}, nil
}

// DonationInput is a new-donation submission before validation.
type DonationInput struct {
	CampaignID string
	Amount     string
	Message    string
	Anonymous  bool
}

// ValidateDonation checks the submission against the target campaign. The
// campaign must exist (ErrNotFound otherwise) and be APPROVED. On success it
// returns the parsed amount and the campaign the donation will credit.
func (v *Validator) ValidateDonation(ctx context.Context, in DonationInput) (money.Amount, *domain.Campaign, error) {
	verr := domain.NewValidationError()

	if in.CampaignID == "" {
		verr.Add("campaignId", "campaign is required")
	}

	var campaign *domain.Campaign
	if in.CampaignID != "" {
		c, err := v.campaigns.GetByID(ctx, in.CampaignID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return 0, nil, domain.ErrNotFound
			}
			return 0, nil, fmt.Errorf("lookup campaign %s: %w", in.CampaignID, err)
		}
		campaign = c
		if c.Status != domain.CampaignApproved {
			verr.Add("campaignId", fmt.Sprintf("campaign status is %s, donations require an approved campaign", c.Status))
		}
	}

	amount, err := money.Parse(in.Amount)
	switch {
	case err != nil:
		verr.Add("amount", "amount must be a number")
	case amount < v.limits.MinDonation:
		verr.Add("amount", fmt.Sprintf("minimum donation amount is $%s", v.limits.MinDonation))
	}

	if utf8.RuneCountInString(in.Message) > maxMessageLen {
		verr.Add("message", fmt.Sprintf("message must be at most %d characters", maxMessageLen))
	}

	if err := verr.ErrOrNil(); err != nil {
		return 0, nil, err
	}
	return amount, campaign, nil
}
