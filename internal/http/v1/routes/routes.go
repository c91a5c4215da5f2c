package routes

import (
	"github.com/danielgtaylor/huma/v2"

	authhandler "github.com/vanityhq/vanity-api/internal/http/v1/auth"
	"github.com/vanityhq/vanity-api/internal/http/v1/profiles"
	"github.com/vanityhq/vanity-api/internal/platform/auth"
	accountsvc "github.com/vanityhq/vanity-api/internal/service/account"
	profilesvc "github.com/vanityhq/vanity-api/internal/service/profile"
)

// Register wires all HTTP routes into the provided API router.
func Register(
	api huma.API,
	verifier auth.Verifier,
	profileService profilesvc.Service,
	accountService accountsvc.Service,
) {
	// Apply auth middleware for protected endpoints
	api.UseMiddleware(auth.NewMiddleware(api, verifier))

	profiles.Register(api, profileService)
	authhandler.Register(api, accountService)
}
