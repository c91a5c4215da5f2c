package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	applog "github.com/vanityhq/vanity-api/internal/platform/logging"
)

// errorBody matches the huma error model, so router-level errors look
// the same on the wire as operation errors.
type errorBody struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
}

// NotFoundHandler renders 404 for unrouted paths.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "resource not found")
	}
}

// MethodNotAllowedHandler renders 405 for known paths with the wrong method.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Recoverer converts panics into logged 500 responses.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("%v", rec)
					}
					applog.LogError(r.Context(), "panic recovered",
						fmt.Errorf("%w\n%s", err, debug.Stack()))
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
