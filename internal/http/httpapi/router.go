package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/http/handlers"
	"server/internal/infra"
	mw "server/internal/middleware"
)

// NewRouter wires the API surface. Mutating endpoints sit behind the session
// JWT; admin transitions additionally require the ADMIN role.
func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger, lookup mw.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		mw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		mw.Logger(logger),
		mw.CORS(cfg.CORSOrigins),
		mw.Country(lookup),
	)

	writeLimit := mw.RateLimit(cfg.RateLimitPerMin, time.Minute)

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", app.Health)

		r.Get("/campaigns", app.CampaignsList)
		r.Get("/campaigns/{id}", app.CampaignsGet)
		r.Get("/campaigns/{id}/donations", app.CampaignDonationsList)
		r.Get("/categories", app.CategoriesList)
		r.Get("/stats", app.StatsSummary)

		r.Post("/auth/verify", app.AuthVerify)

		r.Group(func(r chi.Router) {
			r.Use(mw.AuthJWT(app.JWTSecret))
			r.Get("/me", app.Me)
			r.With(writeLimit).Post("/campaigns", app.CampaignsCreate)
			r.With(writeLimit).Post("/donations", app.DonationsCreate)

			r.Route("/admin", func(r chi.Router) {
				r.Use(mw.RequireRole(string(domain.UserRoleAdmin)))
				r.Post("/campaigns/{id}/status", app.AdminCampaignStatus)
			})
		})
	})

	return r
}
