package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"server/internal/infra/sso"
	"server/internal/middleware"
)

type fakeVerifier struct {
	claims *sso.Claims
	err    error
}

func (f fakeVerifier) VerifyIDToken(ctx context.Context, token string) (*sso.Claims, error) {
	return f.claims, f.err
}

func postVerify(t *testing.T, app *App, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.AuthVerify(rec, req)
	return rec
}

func TestAuthVerify(t *testing.T) {
	app, s := newTestApp(t, nil)
	app.Verifier = fakeVerifier{claims: &sso.Claims{
		Subject: "sso|42",
		Email:   "grace@university.edu",
		Name:    "Grace",
	}}

	rec := postVerify(t, app, `{"id_token":"token"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, rec, &body)
	if body.Token == "" {
		t.Fatal("no session token minted")
	}
	if body.User.Role != "STUDENT" {
		t.Errorf("role = %s, want STUDENT", body.User.Role)
	}

	claims, err := middleware.VerifyJWT(app.JWTSecret, body.Token)
	if err != nil {
		t.Fatalf("minted token does not verify: %v", err)
	}
	if claims.Sub != body.User.ID {
		t.Errorf("token sub = %s, user id = %s", claims.Sub, body.User.ID)
	}

	// Same subject signs in again: same account, not a new one.
	rec = postVerify(t, app, `{"id_token":"token"}`)
	var second struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, rec, &second)
	if second.User.ID != body.User.ID {
		t.Errorf("second sign-in minted new account %s", second.User.ID)
	}

	stored, err := s.Users.GetByID(context.Background(), body.User.ID)
	if err != nil {
		t.Fatalf("stored user: %v", err)
	}
	if stored.Email != "grace@university.edu" {
		t.Errorf("stored email = %s", stored.Email)
	}
}

func TestAuthVerifyRejectsForeignDomain(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.Verifier = fakeVerifier{claims: &sso.Claims{
		Subject: "sso|43",
		Email:   "mallory@elsewhere.com",
	}}

	rec := postVerify(t, app, `{"id_token":"token"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestAuthVerifyInvalidToken(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.Verifier = fakeVerifier{err: errors.New("signature mismatch")}

	rec := postVerify(t, app, `{"id_token":"bad"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	rec = postVerify(t, app, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty token status = %d, want 400", rec.Code)
	}
}
