package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"server/internal/domain"
	"server/internal/funding"
	"server/internal/middleware"
	"server/internal/money"
	"server/internal/payment"
)

type donationRequest struct {
	CampaignID string      `json:"campaignId"`
	Amount     json.Number `json:"amount"`
	Message    string      `json:"message"`
	Anonymous  bool        `json:"anonymous"`
}

// DonationsCreate answers POST /api/donations: validate, capture through the
// payment gateway, append to the ledger, and confirm with the donor's own
// just-written record plus fresh campaign totals.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	donorID := a.currentUserID(r)
	if donorID == "" {
		a.fail(w, domain.ErrUnauthorized)
		return
	}
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	amount, campaign, err := a.Validator.ValidateDonation(r.Context(), funding.DonationInput{
		CampaignID: req.CampaignID,
		Amount:     req.Amount.String(),
		Message:    req.Message,
		Anonymous:  req.Anonymous,
	})
	if err != nil {
		a.fail(w, err)
		return
	}

	capture, err := a.Gateway.Capture(r.Context(), payment.CaptureRequest{
		CampaignID: campaign.ID,
		DonorID:    donorID,
		Amount:     amount,
	})
	if err != nil {
		a.Logger.Error().Err(err).Str("campaign_id", campaign.ID).Msg("payment capture failed")
		if cerr := a.Analytics.IncrementCounters(r.Context(), today(), map[string]int{domain.CounterDonationsFailed: 1}); cerr != nil {
			a.Logger.Warn().Err(cerr).Msg("increment failure counter failed")
		}
		a.fail(w, domain.ErrDependency)
		return
	}

	donation := &domain.Donation{
		ID:         uuid.NewString(),
		CampaignID: campaign.ID,
		DonorID:    donorID,
		Amount:     amount,
		Message:    req.Message,
		Anonymous:  req.Anonymous,
		Status:     domain.DonationCompleted,
		PaymentRef: capture.Reference,
		CreatedAt:  time.Now().UTC(),
	}
	if err := a.Ledger.Record(r.Context(), donation); err != nil {
		a.fail(w, err)
		return
	}

	a.recordDonationAnalytics(r, amount)

	// Read-your-writes: totals below include the donation just recorded.
	stats, err := a.Aggregator.Aggregate(r.Context(), campaign.ID)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.json(w, http.StatusCreated, map[string]any{
		"id":         donation.ID,
		"campaignId": donation.CampaignID,
		"amount":     donation.Amount.Float64(),
		"message":    donation.Message,
		"anonymous":  donation.Anonymous,
		"status":     string(donation.Status),
		"paymentRef": donation.PaymentRef,
		"createdAt":  donation.CreatedAt,
		"campaign": map[string]any{
			"id":            campaign.ID,
			"title":         campaign.Title,
			"goalAmount":    campaign.GoalAmount.Float64(),
			"currentAmount": stats.CurrentAmount.Float64(),
			"donorCount":    stats.DonorCount,
		},
	})
}

func (a *App) recordDonationAnalytics(r *http.Request, amount money.Amount) {
	counters := map[string]int{
		domain.CounterDonations:   1,
		domain.CounterAmountMinor: int(amount),
	}
	if err := a.Analytics.IncrementCounters(r.Context(), today(), counters); err != nil {
		a.Logger.Warn().Err(err).Msg("increment donation counters failed")
	}
	if code := middleware.CountryFromContext(r.Context()); code != "" {
		if err := a.Analytics.IncrementCountry(r.Context(), code); err != nil {
			a.Logger.Warn().Err(err).Msg("increment donor country failed")
		}
	}
}
