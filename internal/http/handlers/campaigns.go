package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
	"server/internal/funding"
)

type campaignDTO struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	ShortDescription string       `json:"shortDescription"`
	Description      string       `json:"description"`
	GoalAmount       float64      `json:"goalAmount"`
	Category         *categoryRef `json:"category,omitempty"`
	CategoryID       string       `json:"categoryId"`
	CreatorID        string       `json:"creatorId"`
	Urgency          string       `json:"urgency"`
	EndDate          *string      `json:"endDate,omitempty"`
	Featured         bool         `json:"featured"`
	Status           string       `json:"status"`
	CreatedAt        time.Time    `json:"createdAt"`
	DonorCount       int          `json:"donorCount"`
	CurrentAmount    *float64     `json:"currentAmount,omitempty"`
}

type categoryRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

func (a *App) campaignDTO(c domain.Campaign, stats funding.Stats, withAmount bool, categories map[string]domain.Category) campaignDTO {
	dto := campaignDTO{
		ID:               c.ID,
		Title:            c.Title,
		ShortDescription: c.ShortDescription,
		Description:      c.Description,
		GoalAmount:       c.GoalAmount.Float64(),
		CategoryID:       c.CategoryID,
		CreatorID:        c.CreatorID,
		Urgency:          string(c.Urgency),
		Featured:         c.Featured,
		Status:           string(c.Status),
		CreatedAt:        c.CreatedAt,
		DonorCount:       stats.DonorCount,
	}
	if c.EndDate != nil {
		s := c.EndDate.Format("2006-01-02")
		dto.EndDate = &s
	}
	if withAmount {
		amount := stats.CurrentAmount.Float64()
		dto.CurrentAmount = &amount
	}
	if cat, ok := categories[c.CategoryID]; ok {
		dto.Category = &categoryRef{ID: cat.ID, Name: cat.Name, Color: cat.Color, Icon: cat.Icon}
	}
	return dto
}

func (a *App) categoryIndex(ctx context.Context) map[string]domain.Category {
	index := make(map[string]domain.Category)
	categories, err := a.Categories.List(ctx)
	if err != nil {
		// Listings still work without the embedded category metadata.
		a.Logger.Warn().Err(err).Msg("load categories for listing failed")
		return index
	}
	for _, c := range categories {
		index[c.ID] = c
	}
	return index
}

// CampaignsList answers GET /api/campaigns. Malformed page/limit values
// fall back to 1/12; unknown query parameters are ignored.
func (a *App) CampaignsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := a.Engine.Run(r.Context(), funding.Query{
		CategoryID: q.Get("category"),
		Search:     q.Get("search"),
		Sort:       funding.ParseSort(q.Get("sort")),
		Page:       page,
		PageSize:   limit,
	})
	if err != nil {
		a.fail(w, err)
		return
	}

	categories := a.categoryIndex(r.Context())
	items := make([]campaignDTO, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, a.campaignDTO(item.Campaign, item.Stats, false, categories))
	}

	a.json(w, http.StatusOK, map[string]any{
		"campaigns": items,
		"pagination": map[string]any{
			"page":  result.Page,
			"limit": result.PageSize,
			"total": result.Total,
			"pages": result.Pages,
		},
	})
}

// CampaignsGet answers GET /api/campaigns/{id} with fresh funding totals.
func (a *App) CampaignsGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	campaign, err := a.Campaigns.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, err)
		return
	}
	stats, err := a.Aggregator.Aggregate(r.Context(), campaign.ID)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, a.campaignDTO(*campaign, stats, true, a.categoryIndex(r.Context())))
}

type donationItemDTO struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Message   string    `json:"message,omitempty"`
	Anonymous bool      `json:"anonymous"`
	DonorID   *string   `json:"donorId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CampaignDonationsList answers GET /api/campaigns/{id}/donations. Donor
// identity is withheld for anonymous donations; the record itself still
// appears so totals stay explainable.
func (a *App) CampaignDonationsList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := a.Campaigns.GetByID(r.Context(), id); err != nil {
		a.fail(w, err)
		return
	}
	donations, err := a.Ledger.ListByCampaign(r.Context(), id)
	if err != nil {
		a.fail(w, err)
		return
	}
	items := make([]donationItemDTO, 0, len(donations))
	for _, d := range donations {
		if d.Status != domain.DonationCompleted {
			continue
		}
		dto := donationItemDTO{
			ID:        d.ID,
			Amount:    d.Amount.Float64(),
			Message:   d.Message,
			Anonymous: d.Anonymous,
			CreatedAt: d.CreatedAt,
		}
		if !d.Anonymous {
			donor := d.DonorID
			dto.DonorID = &donor
		}
		items = append(items, dto)
	}
	a.json(w, http.StatusOK, map[string]any{"donations": items})
}

type campaignCreateRequest struct {
	Title            string      `json:"title"`
	ShortDescription string      `json:"shortDescription"`
	Description      string      `json:"description"`
	GoalAmount       json.Number `json:"goalAmount"`
	CategoryID       string      `json:"categoryId"`
	Urgency          string      `json:"urgency"`
	EndDate          string      `json:"endDate"`
}

// CampaignsCreate answers POST /api/campaigns. The campaign is created
// PENDING; it reaches listings only after an administrator approves it.
func (a *App) CampaignsCreate(w http.ResponseWriter, r *http.Request) {
	actorID := a.currentUserID(r)
	if actorID == "" {
		a.fail(w, domain.ErrUnauthorized)
		return
	}
	var req campaignCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	input := funding.CampaignInput{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		GoalAmount:       req.GoalAmount.String(),
		CategoryID:       req.CategoryID,
		Urgency:          req.Urgency,
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			verr := domain.NewValidationError()
			verr.Add("endDate", "end date must be YYYY-MM-DD")
			a.fail(w, verr)
			return
		}
		// Campaigns run through the end of their last day.
		end = end.Add(24*time.Hour - time.Second)
		input.EndDate = &end
	}

	campaign, err := a.Validator.ValidateCampaign(r.Context(), actorID, input)
	if err != nil {
		a.fail(w, err)
		return
	}
	if err := a.Campaigns.Create(r.Context(), campaign); err != nil {
		a.fail(w, err)
		return
	}
	if err := a.Analytics.IncrementCounters(r.Context(), today(), map[string]int{domain.CounterCampaignsCreated: 1}); err != nil {
		a.Logger.Warn().Err(err).Msg("increment campaign counter failed")
	}

	a.json(w, http.StatusCreated, a.campaignDTO(*campaign, funding.Stats{}, true, a.categoryIndex(r.Context())))
}

type campaignStatusRequest struct {
	Status string `json:"status"`
}

// AdminCampaignStatus answers POST /api/admin/campaigns/{id}/status and
// applies the PENDING -> APPROVED/REJECTED transition.
func (a *App) AdminCampaignStatus(w http.ResponseWriter, r *http.Request) {
	var req campaignStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	status := domain.CampaignStatus(req.Status)
	if status != domain.CampaignApproved && status != domain.CampaignRejected {
		verr := domain.NewValidationError()
		verr.Add("status", "status must be APPROVED or REJECTED")
		a.fail(w, verr)
		return
	}
	id := chi.URLParam(r, "id")
	if err := a.Campaigns.UpdateStatus(r.Context(), id, status); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"id": id, "status": string(status)})
}
