package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotFoundHandler(t *testing.T) {
	resp := httptest.NewRecorder()
	NotFoundHandler()(resp, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	var body errorBody
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if body.Status != http.StatusNotFound || body.Title != "Not Found" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestMethodNotAllowedHandler(t *testing.T) {
	resp := httptest.NewRecorder()
	MethodNotAllowedHandler()(resp, httptest.NewRequest(http.MethodDelete, "/health", nil))

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}
}

func TestRecoverer(t *testing.T) {
	h := Recoverer()(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("boom")
	}))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var body errorBody
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if body.Detail != "internal server error" {
		t.Errorf("unexpected detail %q", body.Detail)
	}
}

func TestRecovererPassthrough(t *testing.T) {
	h := Recoverer()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusTeapot {
		t.Fatalf("expected passthrough status, got %d", resp.Code)
	}
}
