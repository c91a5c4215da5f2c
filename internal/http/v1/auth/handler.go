package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/vanityhq/vanity-api/internal/platform/logging"
	"github.com/vanityhq/vanity-api/internal/service/account"
)

// Register wires the account endpoints into the API. Both endpoints are
// public; they broker account creation and credential lookup against the
// identity provider.
func Register(api huma.API, svc account.Service) {
	huma.Register(api, huma.Operation{
		OperationID:   "register-account",
		Method:        http.MethodPost,
		Path:          "/auth/register",
		Summary:       "Register a new account",
		Description:   "Creates an account with the identity provider and returns its uid together with an email verification link.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
		reg, err := svc.Register(ctx, input.Body.Email, input.Body.Password)
		if err != nil {
			return nil, mapAccountError(ctx, err)
		}

		out := &RegisterOutput{}
		out.Body.UID = reg.UID
		out.Body.VerificationLink = reg.VerificationLink
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "login-account",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Log in to an account",
		Description: "Verifies the account exists with the identity provider and returns its uid and email.",
		Tags:        []string{"Auth"},
	}, func(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
		acc, err := svc.LookupByEmail(ctx, input.Body.Email)
		if err != nil {
			if errors.Is(err, account.ErrNotFound) {
				// Deliberately indistinguishable from a bad password.
				return nil, huma.Error400BadRequest("invalid credentials")
			}
			return nil, mapAccountError(ctx, err)
		}

		out := &LoginOutput{}
		out.Body.UID = acc.UID
		out.Body.Email = acc.Email
		return out, nil
	})
}

// mapAccountError converts account service errors to HTTP errors. The
// provider's own message is propagated on upstream failures so clients
// see the actual rejection reason.
func mapAccountError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, account.ErrEmailExists):
		return huma.Error409Conflict("email already registered")
	case errors.Is(err, account.ErrNotFound):
		return huma.Error400BadRequest("account not found")
	default:
		logging.LogError(ctx, "identity provider request failed", err)
		var upstream *account.UpstreamError
		if errors.As(err, &upstream) && upstream.Message != "" {
			return huma.Error502BadGateway(upstream.Message)
		}
		return huma.Error502BadGateway("identity provider unavailable")
	}
}
