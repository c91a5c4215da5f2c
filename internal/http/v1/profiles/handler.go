package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/vanityhq/vanity-api/internal/platform/auth"
	"github.com/vanityhq/vanity-api/internal/platform/timeutil"
	profilesvc "github.com/vanityhq/vanity-api/internal/service/profile"
)

// Register registers profile endpoints.
func Register(api huma.API, svc profilesvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile-by-username",
		Method:      http.MethodGet,
		Path:        "/profiles/by-username",
		Summary:     "Resolve a profile by username",
		Description: "Resolves a profile by its username. When usernames collide, any single match is returned.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ByUsernameInput) (*ByUsernameOutput, error) {
		if input.Name == "" {
			return nil, huma.Error400BadRequest("name is required")
		}

		p, err := svc.GetByUsername(ctx, input.Name)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ByUsernameOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profiles/{id}",
		Summary:     "Get a profile by id",
		Description: "Retrieves the canonical profile for the given identifier.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *GetInput) (*GetOutput, error) {
		p, err := svc.GetByID(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &GetOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "save-profile",
		Method:      http.MethodPut,
		Path:        "/profiles/{id}",
		Summary:     "Create or update a profile",
		Description: "Merges the submitted fields into the stored profile. Omitted fields keep their stored values; unrecognized fields are dropped.",
		Tags:        []string{"Profiles"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
		user := auth.UserFromContext(ctx)
		if user == nil || user.UID != input.ID {
			return nil, huma.Error403Forbidden("cannot write another user's profile")
		}

		raw := map[string]any{}
		if len(input.RawBody) > 0 {
			if err := json.Unmarshal(input.RawBody, &raw); err != nil {
				return nil, huma.Error400BadRequest("request body must be a JSON object")
			}
		}

		p, err := svc.Save(ctx, input.ID, raw)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &SaveOutput{Body: toHTTPProfile(p)}, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, profilesvc.ErrNotFound):
		return huma.Error404NotFound("profile not found")
	case errors.Is(err, profilesvc.ErrInvalidID):
		return huma.Error400BadRequest("profile id is required")
	case errors.Is(err, profilesvc.ErrUnavailable):
		return huma.Error500InternalServerError("profile store unavailable")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

func toHTTPProfile(p *profilesvc.Profile) Profile {
	return Profile{
		ID:              p.ID,
		Username:        p.Username,
		DisplayName:     p.DisplayName,
		Bio:             p.Bio,
		Links:           p.Links,
		PfpURL:          p.PfpURL,
		BannerURL:       p.BannerURL,
		BackgroundType:  p.BackgroundType,
		BackgroundValue: p.BackgroundValue,
		Font:            p.Font,
		FontColor:       p.FontColor,
		SongEmbed:       p.SongEmbed,
		AutoplaySong:    p.AutoplaySong,
		Cursor:          p.Cursor,
		TrailEffect:     p.TrailEffect,
		TrailColor:      p.TrailColor,
		HoverEffect:     p.HoverEffect,
		Layout:          p.Layout,
		Sections:        p.Sections,
		UpdatedAt:       timeutil.NewTime(p.UpdatedAt),
	}
}
