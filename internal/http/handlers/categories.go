package handlers

import "net/http"

type categoryDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Color         string `json:"color"`
	Icon          string `json:"icon"`
	CampaignCount int    `json:"campaignCount"`
}

// CategoriesList answers GET /api/categories with live APPROVED-campaign
// counts per category.
func (a *App) CategoriesList(w http.ResponseWriter, r *http.Request) {
	categories, err := a.Categories.List(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	counts, err := a.Campaigns.CountApprovedByCategory(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}

	items := make([]categoryDTO, 0, len(categories))
	for _, c := range categories {
		items = append(items, categoryDTO{
			ID:            c.ID,
			Name:          c.Name,
			Description:   c.Description,
			Color:         c.Color,
			Icon:          c.Icon,
			CampaignCount: counts[c.ID],
		})
	}
	a.json(w, http.StatusOK, map[string]any{"categories": items})
}
