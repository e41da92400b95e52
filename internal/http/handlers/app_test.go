package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"server/internal/adapter/memory"
	"server/internal/domain"
	"server/internal/funding"
	"server/internal/middleware"
	"server/internal/payment"
)

func newTestApp(t *testing.T, gateway payment.Gateway) (*App, *memory.Store) {
	t.Helper()
	s := memory.NewStore()
	if err := memory.SeedDemo(context.Background(), s); err != nil {
		t.Fatalf("seed demo data: %v", err)
	}
	if gateway == nil {
		gateway = payment.StubGateway{}
	}
	agg := funding.NewAggregator(s.Ledger)
	return &App{
		Logger:             zerolog.Nop(),
		Campaigns:          s.Campaigns,
		Ledger:             s.Ledger,
		Categories:         s.Categories,
		Users:              s.Users,
		Analytics:          s.Analytics,
		Engine:             funding.NewEngine(s.Campaigns, agg),
		Aggregator:         agg,
		Validator:          funding.NewValidator(s.Categories, s.Campaigns, funding.DefaultLimits()),
		Gateway:            gateway,
		JWTSecret:          "test-secret",
		AllowedEmailDomain: "university.edu",
	}, s
}

func testRouter(a *App) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/campaigns", a.CampaignsList)
	r.Post("/api/campaigns", a.CampaignsCreate)
	r.Get("/api/campaigns/{id}", a.CampaignsGet)
	r.Get("/api/campaigns/{id}/donations", a.CampaignDonationsList)
	r.Post("/api/donations", a.DonationsCreate)
	r.Get("/api/categories", a.CategoriesList)
	r.Get("/api/stats", a.StatsSummary)
	r.Post("/api/admin/campaigns/{id}/status", a.AdminCampaignStatus)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, target, actorID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if actorID != "" {
		req = req.WithContext(middleware.ContextWithActor(req.Context(), actorID, string(domain.UserRoleStudent)))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

type errorBody struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	decodeBody(t, rec, &body)
	return body
}
