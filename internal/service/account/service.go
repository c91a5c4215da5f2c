package account

import (
	"context"
	"errors"
	"fmt"
)

// Service errors
var (
	ErrNotFound    = errors.New("account not found")
	ErrEmailExists = errors.New("email already registered")
	ErrUpstream    = errors.New("identity provider error")
)

// UpstreamError carries the identity provider's own message so it can be
// propagated to the caller, plus a safe kind for logging.
type UpstreamError struct {
	Kind    string
	Message string
	cause   error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "identity provider error"
	}
	if e.Message != "" {
		return fmt.Sprintf("identity provider error (%s): %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("identity provider error (%s)", e.Kind)
}

// Unwrap enables errors.Is against the sentinel service errors.
func (e *UpstreamError) Unwrap() error {
	if e == nil || e.cause == nil {
		return ErrUpstream
	}
	return e.cause
}

// Account is a provider-issued identity. Its UID is the only id a client
// is authorized to write profiles under.
type Account struct {
	UID           string
	Email         string
	EmailVerified bool
}

// Registration is the result of creating a new account.
type Registration struct {
	UID string
	// VerificationLink is the provider-generated email verification URL,
	// handed to the client for delivery.
	VerificationLink string
}

// Service wraps the external identity provider. Credential issuance and
// verification happen entirely on the provider's side; this service only
// brokers account creation and lookup.
type Service interface {
	Register(ctx context.Context, email, password string) (*Registration, error)
	LookupByEmail(ctx context.Context, email string) (*Account, error)
}
