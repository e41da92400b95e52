package funding

import (
	"context"
	"fmt"
	"testing"
	"time"

	"server/internal/adapter/memory"
	"server/internal/domain"
)

func addCampaign(t *testing.T, s *memory.Store, c domain.Campaign) {
	t.Helper()
	if c.Status == "" {
		c.Status = domain.CampaignApproved
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if err := s.Campaigns.Create(context.Background(), &c); err != nil {
		t.Fatalf("create campaign %s: %v", c.ID, err)
	}
}

func newEngine(s *memory.Store) *Engine {
	return NewEngine(s.Campaigns, NewAggregator(s.Ledger))
}

func TestRunPagination(t *testing.T) {
	s := memory.NewStore()
	for i := 0; i < 25; i++ {
		addCampaign(t, s, domain.Campaign{
			ID:    fmt.Sprintf("c-%02d", i),
			Title: fmt.Sprintf("Campaign %d", i),
		})
	}
	e := newEngine(s)

	res, err := e.Run(context.Background(), Query{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Total != 25 {
		t.Errorf("total = %d, want 25", res.Total)
	}
	if res.PageSize != DefaultPageSize {
		t.Errorf("page size = %d, want %d", res.PageSize, DefaultPageSize)
	}
	if res.Pages != 3 {
		t.Errorf("pages = %d, want 3", res.Pages)
	}
	if len(res.Items) != 12 {
		t.Errorf("page 1 items = %d, want 12", len(res.Items))
	}

	res, err = e.Run(context.Background(), Query{Page: 3})
	if err != nil {
		t.Fatalf("run page 3: %v", err)
	}
	if len(res.Items) != 1 {
		t.Errorf("page 3 items = %d, want 1", len(res.Items))
	}

	// Beyond the last page is empty, not an error.
	res, err = e.Run(context.Background(), Query{Page: 99})
	if err != nil {
		t.Fatalf("run page 99: %v", err)
	}
	if len(res.Items) != 0 {
		t.Errorf("page 99 items = %d, want 0", len(res.Items))
	}
	if res.Total != 25 || res.Pages != 3 {
		t.Errorf("totals changed past the end: total=%d pages=%d", res.Total, res.Pages)
	}

	// Out-of-range page and size fall back to defaults.
	res, err = e.Run(context.Background(), Query{Page: -5, PageSize: 0})
	if err != nil {
		t.Fatalf("run defaults: %v", err)
	}
	if res.Page != 1 || res.PageSize != DefaultPageSize {
		t.Errorf("defaults: page=%d size=%d", res.Page, res.PageSize)
	}
}

func TestRunFilterAndSearchConjunctive(t *testing.T) {
	s := memory.NewStore()
	addCampaign(t, s, domain.Campaign{ID: "c1", Title: "Emergency Textbook Fund for Low-Income Students", CategoryID: "cat-academic"})
	addCampaign(t, s, domain.Campaign{ID: "c2", Title: "Textbook Drive", CategoryID: "cat-community"})
	addCampaign(t, s, domain.Campaign{ID: "c3", Title: "Lab Equipment", CategoryID: "cat-academic", Description: "Replace broken microscopes"})
	addCampaign(t, s, domain.Campaign{ID: "c4", Title: "Hidden", Status: domain.CampaignPending})
	e := newEngine(s)

	res, err := e.Run(context.Background(), Query{CategoryID: "cat-academic", Search: "textbook"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Total != 1 || res.Pages != 1 {
		t.Fatalf("total=%d pages=%d, want 1/1", res.Total, res.Pages)
	}
	if res.Items[0].Campaign.ID != "c1" {
		t.Errorf("matched %s, want c1", res.Items[0].Campaign.ID)
	}

	// Search is case-insensitive and scans descriptions too.
	res, err = e.Run(context.Background(), Query{Search: "MICROSCOPES"})
	if err != nil {
		t.Fatalf("run search: %v", err)
	}
	if res.Total != 1 || res.Items[0].Campaign.ID != "c3" {
		t.Errorf("search MICROSCOPES: total=%d", res.Total)
	}

	// Non-approved campaigns are invisible even on a direct match.
	res, err = e.Run(context.Background(), Query{Search: "hidden"})
	if err != nil {
		t.Fatalf("run hidden: %v", err)
	}
	if res.Total != 0 {
		t.Errorf("pending campaign leaked into listing: total=%d", res.Total)
	}
}

func TestRunSortOrders(t *testing.T) {
	s := memory.NewStore()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	endA := base.AddDate(0, 0, 30)
	endB := base.AddDate(0, 0, 5)

	addCampaign(t, s, domain.Campaign{ID: "a", Title: "Alpha", CreatedAt: base, EndDate: &endA})
	addCampaign(t, s, domain.Campaign{ID: "b", Title: "Beta", CreatedAt: base.Add(time.Hour), EndDate: &endB})
	addCampaign(t, s, domain.Campaign{ID: "c", Title: "Gamma", CreatedAt: base.Add(2 * time.Hour)})

	recordDonation(t, s, domain.Donation{ID: "d1", CampaignID: "a", DonorID: "u1", Amount: 100_00, PaymentRef: "r1"})
	recordDonation(t, s, domain.Donation{ID: "d2", CampaignID: "b", DonorID: "u1", Amount: 10_00, PaymentRef: "r2"})
	recordDonation(t, s, domain.Donation{ID: "d3", CampaignID: "b", DonorID: "u2", Amount: 10_00, PaymentRef: "r3"})
	e := newEngine(s)

	ids := func(q Query) []string {
		t.Helper()
		res, err := e.Run(context.Background(), q)
		if err != nil {
			t.Fatalf("run %+v: %v", q, err)
		}
		out := make([]string, len(res.Items))
		for i, it := range res.Items {
			out[i] = it.Campaign.ID
		}
		return out
	}

	assertOrder := func(got, want []string, label string) {
		t.Helper()
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s order = %v, want %v", label, got, want)
			}
		}
	}

	assertOrder(ids(Query{Sort: SortNewest}), []string{"c", "b", "a"}, "newest")
	assertOrder(ids(Query{Sort: SortMostFunded}), []string{"a", "b", "c"}, "most_funded")
	assertOrder(ids(Query{Sort: SortMostPopular}), []string{"b", "a", "c"}, "most_popular")
	// Campaigns without an end date sort after dated ones.
	assertOrder(ids(Query{Sort: SortEndingSoon}), []string{"b", "a", "c"}, "ending_soon")
}

func TestRunSortTiesBreakByID(t *testing.T) {
	s := memory.NewStore()
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	addCampaign(t, s, domain.Campaign{ID: "z", Title: "Z", CreatedAt: created})
	addCampaign(t, s, domain.Campaign{ID: "a", Title: "A", CreatedAt: created})
	addCampaign(t, s, domain.Campaign{ID: "m", Title: "M", CreatedAt: created})
	e := newEngine(s)

	res, err := e.Run(context.Background(), Query{Sort: SortMostFunded})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{"a", "m", "z"}
	for i, it := range res.Items {
		if it.Campaign.ID != want[i] {
			t.Fatalf("tie break order = %v at %d, want %v", it.Campaign.ID, i, want)
		}
	}
}

func TestParseSort(t *testing.T) {
	cases := map[string]Sort{
		"newest":      SortNewest,
		"Recent":      SortNewest,
		"most_funded": SortMostFunded,
		"ENDING":      SortEndingSoon,
		"popular":     SortMostPopular,
		"bogus":       "",
		"":            "",
	}
	for in, want := range cases {
		if got := ParseSort(in); got != want {
			t.Errorf("ParseSort(%q) = %q, want %q", in, got, want)
		}
	}
}
