package account

import (
	"context"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	applog "github.com/vanityhq/vanity-api/internal/platform/logging"
)

// FirebaseService implements Service over the Firebase Auth admin SDK.
type FirebaseService struct {
	client *fbauth.Client
}

// NewFirebaseService creates an account service with the given auth client.
func NewFirebaseService(client *fbauth.Client) *FirebaseService {
	return &FirebaseService{client: client}
}

// Register creates a provider account and generates an email
// verification link for the client to deliver.
func (s *FirebaseService) Register(ctx context.Context, email, password string) (*Registration, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	params := (&fbauth.UserToCreate{}).Email(email).Password(password)
	user, err := s.client.CreateUser(ctx, params)
	if err != nil {
		applog.LogAuditEvent(ctx, "register", email, "account", email, "failure",
			map[string]any{"error": classify(err).Kind})
		return nil, classify(err)
	}

	link, err := s.client.EmailVerificationLink(ctx, email)
	if err != nil {
		// The account exists; surface the registration anyway and let the
		// client request a fresh link later.
		applog.LogError(ctx, "email verification link generation failed", err)
		link = ""
	}

	applog.LogAuditEvent(ctx, "register", user.UID, "account", user.UID, "success", nil)

	return &Registration{UID: user.UID, VerificationLink: link}, nil
}

// LookupByEmail resolves an existing account by its email address.
func (s *FirebaseService) LookupByEmail(ctx context.Context, email string) (*Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.client.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, classify(err)
	}
	return &Account{
		UID:           user.UID,
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
	}, nil
}

// classify maps admin SDK failures onto the service error taxonomy,
// preserving the provider's message for propagation.
func classify(err error) *UpstreamError {
	switch {
	case fbauth.IsEmailAlreadyExists(err):
		return &UpstreamError{Kind: "email_exists", Message: err.Error(), cause: ErrEmailExists}
	case fbauth.IsUserNotFound(err):
		return &UpstreamError{Kind: "not_found", Message: err.Error(), cause: ErrNotFound}
	default:
		return &UpstreamError{Kind: "upstream", Message: err.Error()}
	}
}

// Compile-time interface check
var _ Service = (*FirebaseService)(nil)
