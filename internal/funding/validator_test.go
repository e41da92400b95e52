package funding

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"server/internal/adapter/memory"
	"server/internal/domain"
)

func newValidator(t *testing.T, s *memory.Store) *Validator {
	t.Helper()
	if err := s.Categories.Create(context.Background(), &domain.Category{ID: "cat-academic", Name: "Academic Support"}); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return NewValidator(s.Categories, s.Campaigns, DefaultLimits())
}

func validCampaignInput() CampaignInput {
	return CampaignInput{
		Title:            "Emergency Textbook Fund",
		ShortDescription: "Textbooks for students in need",
		Description:      "Buying course textbooks for students who cannot afford them.",
		GoalAmount:       "2500",
		CategoryID:       "cat-academic",
	}
}

func fieldError(t *testing.T, err error, field string) string {
	t.Helper()
	verr, ok := domain.AsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	msg, ok := verr.Fields[field]
	if !ok {
		t.Fatalf("no error for field %q in %v", field, verr.Fields)
	}
	return msg
}

func TestValidateCampaignOK(t *testing.T) {
	s := memory.NewStore()
	v := newValidator(t, s)

	c, err := v.ValidateCampaign(context.Background(), "user-1", validCampaignInput())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.Status != domain.CampaignPending {
		t.Errorf("status = %s, want PENDING", c.Status)
	}
	if c.GoalAmount != 2500_00 {
		t.Errorf("goal = %d, want 250000", c.GoalAmount)
	}
	if c.Urgency != domain.UrgencyMedium {
		t.Errorf("urgency = %s, want MEDIUM default", c.Urgency)
	}
	if c.CreatorID != "user-1" {
		t.Errorf("creator = %s", c.CreatorID)
	}
	if c.ID == "" {
		t.Error("expected generated id")
	}
}

func TestValidateCampaignGoalThreshold(t *testing.T) {
	s := memory.NewStore()
	v := newValidator(t, s)

	in := validCampaignInput()
	in.GoalAmount = "49.99"
	if _, err := v.ValidateCampaign(context.Background(), "user-1", in); err == nil {
		t.Fatal("goal 49.99 accepted, want rejection")
	} else {
		fieldError(t, err, "goalAmount")
	}

	in.GoalAmount = "50"
	if _, err := v.ValidateCampaign(context.Background(), "user-1", in); err != nil {
		t.Fatalf("goal 50 rejected: %v", err)
	}

	in.GoalAmount = "lots"
	if _, err := v.ValidateCampaign(context.Background(), "user-1", in); err == nil {
		t.Fatal("non-numeric goal accepted")
	}
}

func TestValidateCampaignFieldLimits(t *testing.T) {
	s := memory.NewStore()
	v := newValidator(t, s)
	ctx := context.Background()

	in := validCampaignInput()
	in.Title = strings.Repeat("x", maxTitleLen+1)
	_, err := v.ValidateCampaign(ctx, "user-1", in)
	fieldError(t, err, "title")

	in = validCampaignInput()
	in.ShortDescription = strings.Repeat("x", maxShortDescLen+1)
	_, err = v.ValidateCampaign(ctx, "user-1", in)
	fieldError(t, err, "shortDescription")

	in = validCampaignInput()
	in.Description = strings.Repeat("x", maxDescriptionLen+1)
	_, err = v.ValidateCampaign(ctx, "user-1", in)
	fieldError(t, err, "description")

	in = validCampaignInput()
	in.Title = ""
	in.Description = ""
	_, err = v.ValidateCampaign(ctx, "user-1", in)
	fieldError(t, err, "title")
	fieldError(t, err, "description")
}

func TestValidateCampaignCategory(t *testing.T) {
	s := memory.NewStore()
	v := newValidator(t, s)
	ctx := context.Background()

	in := validCampaignInput()
	in.CategoryID = ""
	_, err := v.ValidateCampaign(ctx, "user-1", in)
	fieldError(t, err, "categoryId")

	in.CategoryID = "cat-nope"
	_, err = v.ValidateCampaign(ctx, "user-1", in)
	if msg := fieldError(t, err, "categoryId"); !strings.Contains(msg, "does not exist") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestValidateCampaignEndDateAndUrgency(t *testing.T) {
	s := memory.NewStore()
	v := newValidator(t, s)
	ctx := context.Background()

	past := time.Now().Add(-48 * time.Hour)
	in := validCampaignInput()
	in.EndDate = &past
	_, err := v.ValidateCampaign(ctx, "user-1", in)
	fieldError(t, err, "endDate")

	future := time.Now().Add(30 * 24 * time.Hour)
	in = validCampaignInput()
	in.EndDate = &future
	in.Urgency = "high"
	c, err := v.ValidateCampaign(ctx, "user-1", in)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.Urgency != domain.UrgencyHigh {
		t.Errorf("urgency = %s, want HIGH", c.Urgency)
	}

	in.Urgency = "whenever"
	_, err = v.ValidateCampaign(ctx, "user-1", in)
	fieldError(t, err, "urgency")
}

func TestValidateDonationAmountThreshold(t *testing.T) {
	s := memory.NewStore()
	v := newValidator(t, s)
	ctx := context.Background()
	addCampaign(t, s, domain.Campaign{ID: "c1", Title: "Fund"})

	amount, c, err := v.ValidateDonation(ctx, DonationInput{CampaignID: "c1", Amount: "5"})
	if err != nil {
		t.Fatalf("donation of 5 rejected: %v", err)
	}
	if amount != 5_00 {
		t.Errorf("amount = %d, want 500", amount)
	}
	if c == nil || c.ID != "c1" {
		t.Errorf("campaign = %+v", c)
	}

	_, _, err = v.ValidateDonation(ctx, DonationInput{CampaignID: "c1", Amount: "4.99"})
	if err == nil {
		t.Fatal("donation of 4.99 accepted, want rejection")
	}
	fieldError(t, err, "amount")

	_, _, err = v.ValidateDonation(ctx, DonationInput{CampaignID: "c1", Amount: "ten"})
	fieldError(t, err, "amount")
}

func TestValidateDonationCampaignState(t *testing.T) {
	s := memory.NewStore()
	v := newValidator(t, s)
	ctx := context.Background()
	addCampaign(t, s, domain.Campaign{ID: "pending", Title: "Waiting", Status: domain.CampaignPending})

	_, _, err := v.ValidateDonation(ctx, DonationInput{CampaignID: "gone", Amount: "10"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("absent campaign: got %v, want ErrNotFound", err)
	}

	_, _, err = v.ValidateDonation(ctx, DonationInput{CampaignID: "pending", Amount: "10"})
	if msg := fieldError(t, err, "campaignId"); !strings.Contains(msg, "PENDING") {
		t.Errorf("message %q should name the campaign status", msg)
	}
}

func TestValidateDonationMessageLength(t *testing.T) {
	s := memory.NewStore()
	v := newValidator(t, s)
	ctx := context.Background()
	addCampaign(t, s, domain.Campaign{ID: "c1", Title: "Fund"})

	_, _, err := v.ValidateDonation(ctx, DonationInput{
		CampaignID: "c1",
		Amount:     "10",
		Message:    strings.Repeat("x", maxMessageLen+1),
	})
	fieldError(t, err, "message")

	_, _, err = v.ValidateDonation(ctx, DonationInput{
		CampaignID: "c1",
		Amount:     "10",
		Message:    strings.Repeat("x", maxMessageLen),
	})
	if err != nil {
		t.Fatalf("message at limit rejected: %v", err)
	}
}
