package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/funding"
	"server/internal/infra/sso"
	"server/internal/middleware"
	"server/internal/payment"
)

// App bundles the handler dependencies. Handlers depend on the domain
// repository interfaces, not on the backing store, so the same wiring serves
// PostgreSQL and the in-memory demo store.
type App struct {
	Logger     zerolog.Logger
	Campaigns  domain.CampaignRepository
	Ledger     domain.DonationLedger
	Categories domain.CategoryRepository
	Users      domain.UserRepository
	Analytics  domain.AnalyticsRepository

	Engine     *funding.Engine
	Aggregator *funding.Aggregator
	Validator  *funding.Validator
	Gateway    payment.Gateway
	Verifier   IdentityVerifier

	JWTSecret          string
	AllowedEmailDomain string
}

// IdentityVerifier validates an SSO ID token and returns identity claims.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (*sso.Claims, error)
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, codeStr, msg string) {
	a.json(w, code, map[string]any{
		"error": map[string]any{"code": codeStr, "message": msg},
	})
}

// fail maps domain errors onto the response taxonomy: validation 400, not
// found 404, duplicate payment 409, dependency/unknown 500 (logged).
func (a *App) fail(w http.ResponseWriter, err error) {
	if verr, ok := domain.AsValidation(err); ok {
		a.json(w, http.StatusBadRequest, map[string]any{
			"error": map[string]any{
				"code":    "validation_failed",
				"message": verr.Error(),
				"fields":  verr.Fields,
			},
		})
		return
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrDuplicatePaymentRef):
		a.error(w, http.StatusConflict, "duplicate_payment_reference", "donation was already recorded")
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusUnauthorized, "unauthorized", "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		a.error(w, http.StatusForbidden, "forbidden", "insufficient permissions")
	default:
		a.Logger.Error().Err(err).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error, please retry")
	}
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
