package handlers

import (
	"net/http"
	"testing"
)

func TestCategoriesListWithCounts(t *testing.T) {
	app, _ := newTestApp(t, nil)
	h := testRouter(app)

	rec := doRequest(t, h, http.MethodGet, "/api/categories", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Categories []struct {
			ID            string `json:"id"`
			Name          string `json:"name"`
			CampaignCount int    `json:"campaignCount"`
		} `json:"categories"`
	}
	decodeBody(t, rec, &body)
	if len(body.Categories) != 6 {
		t.Fatalf("categories = %d, want 6", len(body.Categories))
	}
	counts := make(map[string]int)
	for _, c := range body.Categories {
		counts[c.ID] = c.CampaignCount
	}
	if counts["cat-academic"] != 1 {
		t.Errorf("cat-academic count = %d, want 1", counts["cat-academic"])
	}
	if counts["cat-sports"] != 0 {
		t.Errorf("cat-sports count = %d, want 0", counts["cat-sports"])
	}
}

func TestStatsSummary(t *testing.T) {
	app, _ := newTestApp(t, nil)
	h := testRouter(app)

	rec := doRequest(t, h, http.MethodGet, "/api/stats", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		TotalRaised       float64 `json:"totalRaised"`
		ApprovedCampaigns int     `json:"approvedCampaigns"`
		TotalDonations    int     `json:"totalDonations"`
	}
	decodeBody(t, rec, &body)
	if body.TotalRaised != 75 {
		t.Errorf("totalRaised = %v, want 75", body.TotalRaised)
	}
	if body.ApprovedCampaigns != 1 {
		t.Errorf("approvedCampaigns = %d", body.ApprovedCampaigns)
	}
	if body.TotalDonations != 2 {
		t.Errorf("totalDonations = %d", body.TotalDonations)
	}
}
