package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"server/internal/domain"
	"server/internal/infra/sso"
	"server/internal/middleware"
)

type verifyRequest struct {
	IDToken string `json:"id_token"`
}

type verifyResponse struct {
	Token string         `json:"token"`
	User  userProfileDTO `json:"user"`
}

type userProfileDTO struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	Role    string `json:"role"`
}

// AuthVerify answers POST /api/auth/verify: validate the university SSO ID
// token, enforce the allowed email domain, upsert the account, and mint a
// session token.
func (a *App) AuthVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.IDToken == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "id_token required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	claims, err := a.Verifier.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("sso verify failed")
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid identity token")
		return
	}
	if !sso.AllowedDomain(claims.Email, a.AllowedEmailDomain) {
		a.Logger.Info().Str("email", claims.Email).Msg("sign-in blocked: email domain not allowed")
		a.error(w, http.StatusForbidden, "forbidden", "email domain not allowed")
		return
	}

	user, err := a.Users.UpsertBySubject(r.Context(), &domain.User{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
		Role:    domain.UserRoleStudent,
	})
	if err != nil {
		a.fail(w, err)
		return
	}

	token, err := middleware.SignJWT(a.JWTSecret, middleware.TokenClaims{
		Sub:      user.ID,
		Role:     string(user.Role),
		Email:    user.Email,
		Exp:      time.Now().Add(24 * time.Hour).Unix(),
		Issuer:   "campusfund",
		Audience: "campusfund-web",
	})
	if err != nil {
		a.fail(w, err)
		return
	}

	a.json(w, http.StatusOK, verifyResponse{
		Token: token,
		User: userProfileDTO{
			ID:      user.ID,
			Email:   user.Email,
			Name:    user.Name,
			Picture: user.Picture,
			Role:    string(user.Role),
		},
	})
}

// Me answers GET /api/me for the authenticated user.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.fail(w, domain.ErrUnauthorized)
		return
	}
	user, err := a.Users.GetByID(r.Context(), userID)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, userProfileDTO{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.Picture,
		Role:    string(user.Role),
	})
}
