package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	applog "github.com/vanityhq/vanity-api/internal/platform/logging"
	appmiddleware "github.com/vanityhq/vanity-api/internal/platform/middleware"
	"github.com/vanityhq/vanity-api/internal/platform/respond"
	"github.com/vanityhq/vanity-api/internal/service/account"
)

func newTestRouter(svc account.Service) chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("AuthTest", "test"))
	Register(api, svc)
	return router
}

func postJSON(t *testing.T, router chi.Router, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRegisterSuccess(t *testing.T) {
	router := newTestRouter(account.NewMockService())

	resp := postJSON(t, router, "/auth/register", `{"email":"ada@example.com","password":"hunter22"}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		UID              string `json:"uid"`
		VerificationLink string `json:"verificationLink"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if out.UID == "" {
		t.Error("expected a uid in the response")
	}
	if out.VerificationLink == "" {
		t.Error("expected a verification link in the response")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := account.NewMockService()
	router := newTestRouter(svc)

	body := `{"email":"ada@example.com","password":"hunter22"}`
	if resp := postJSON(t, router, "/auth/register", body); resp.Code != http.StatusCreated {
		t.Fatalf("setup register failed: %d", resp.Code)
	}

	resp := postJSON(t, router, "/auth/register", body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRegisterInvalidEmail(t *testing.T) {
	router := newTestRouter(account.NewMockService())

	resp := postJSON(t, router, "/auth/register", `{"email":"not-an-email","password":"hunter22"}`)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRegisterShortPassword(t *testing.T) {
	router := newTestRouter(account.NewMockService())

	resp := postJSON(t, router, "/auth/register", `{"email":"ada@example.com","password":"abc"}`)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRegisterUpstreamFailure(t *testing.T) {
	svc := account.NewMockService()
	svc.Err = account.ErrUpstream
	router := newTestRouter(svc)

	resp := postJSON(t, router, "/auth/register", `{"email":"ada@example.com","password":"hunter22"}`)
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := account.NewMockService()
	router := newTestRouter(svc)

	if resp := postJSON(t, router, "/auth/register", `{"email":"ada@example.com","password":"hunter22"}`); resp.Code != http.StatusCreated {
		t.Fatalf("setup register failed: %d", resp.Code)
	}

	resp := postJSON(t, router, "/auth/login", `{"email":"ada@example.com","password":"hunter22"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		UID   string `json:"uid"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if out.Email != "ada@example.com" {
		t.Errorf("expected email echoed back, got %s", out.Email)
	}
}

func TestLoginUnknownAccount(t *testing.T) {
	router := newTestRouter(account.NewMockService())

	resp := postJSON(t, router, "/auth/login", `{"email":"ghost@example.com","password":"hunter22"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}

	var problem huma.ErrorModel
	if err := json.Unmarshal(resp.Body.Bytes(), &problem); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if problem.Detail != "invalid credentials" {
		t.Errorf("expected generic credential error, got %q", problem.Detail)
	}
}
