package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	applog "github.com/vanityhq/vanity-api/internal/platform/logging"
)

// Service errors
var (
	ErrNotFound    = errors.New("profile not found")
	ErrInvalidID   = errors.New("profile id is required")
	ErrUnavailable = errors.New("profile store unavailable")
)

// updatedAtField is server-set on every write and not client-coercible,
// so it lives outside the declared schema.
const updatedAtField = "updatedAt"

// defaultStoreTimeout bounds every store call so no operation blocks
// indefinitely on a backend outage.
const defaultStoreTimeout = 5 * time.Second

// Profile is the canonical shape every read and write resolves to,
// regardless of which service revision wrote the stored record.
type Profile struct {
	ID              string
	Username        string
	DisplayName     string
	Bio             string
	Links           []string
	PfpURL          *string
	BannerURL       *string
	BackgroundType  string
	BackgroundValue string
	Font            string
	FontColor       string
	SongEmbed       *string
	AutoplaySong    bool
	Cursor          string
	TrailEffect     bool
	TrailColor      string
	HoverEffect     string
	Layout          string
	Sections        []string
	UpdatedAt       time.Time
}

// Store is the whole-document storage boundary. Implementations return
// ErrNotFound for missing documents and wrap ErrUnavailable for
// timeouts and backend outages.
type Store interface {
	Get(ctx context.Context, id string) (map[string]any, error)
	Put(ctx context.Context, id string, doc map[string]any) error
	// GetByUsername resolves at most one document by the denormalized
	// username key, returning its id alongside the document.
	GetByUsername(ctx context.Context, username string) (string, map[string]any, error)
}

// Service defines profile operations.
type Service interface {
	Save(ctx context.Context, id string, raw map[string]any) (*Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByUsername(ctx context.Context, username string) (*Profile, error)
}

// DocService implements Service over a whole-document Store. The
// field-level merge is computed here, not delegated to a store-side
// merge primitive: the store's merge operator does not understand the
// schema's list and default semantics.
type DocService struct {
	store   Store
	timeout time.Duration
	now     func() time.Time
}

// NewService creates a profile service over the given store.
func NewService(store Store) *DocService {
	return &DocService{
		store:   store,
		timeout: defaultStoreTimeout,
		now:     time.Now,
	}
}

// Save normalizes a raw payload and merges it into the stored record.
// Fields absent from the payload keep their stored value; fields the
// record never had fall back to schema defaults. Saving the same payload
// twice yields the same stored fields apart from updatedAt advancing.
//
// Concurrent saves to the same id race at the store level: the read-
// then-write sequence has no cross-request atomicity and resolves
// last-write-wins per whole document. Accepted for the expected single
// editor per profile.
func (s *DocService) Save(ctx context.Context, id string, raw map[string]any) (*Profile, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	patch, dropped := Normalize(raw)
	if len(dropped) > 0 {
		applog.LogWarn(ctx, "dropped unrecognized profile fields",
			zap.String("profileId", id),
			zap.Strings("fields", dropped))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stored, err := s.store.Get(ctx, id)
	switch {
	case errors.Is(err, ErrNotFound):
		stored = map[string]any{}
	case err != nil:
		applog.LogAuditEvent(ctx, "save", id, "profile", id, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	var prev time.Time
	if t, ok := stored[updatedAtField].(time.Time); ok {
		prev = t
	}

	merged := canonicalize(stored)
	for name, value := range patch {
		merged[name] = value
	}

	// updatedAt never regresses, even under clock skew between writes.
	// Truncated to the store's microsecond timestamp resolution so the
	// value read back equals the value written.
	now := s.now().UTC().Truncate(time.Microsecond)
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	merged[updatedAtField] = now

	if err := s.store.Put(ctx, id, merged); err != nil {
		applog.LogAuditEvent(ctx, "save", id, "profile", id, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "save", id, "profile", id, "success", nil)

	return fromDoc(id, merged), nil
}

// GetByID retrieves a profile by its document id.
func (s *DocService) GetByID(ctx context.Context, id string) (*Profile, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromStored(id, doc), nil
}

// GetByUsername resolves a profile by the denormalized username key.
// Username uniqueness is not enforced at the store; when several
// documents share a username, whichever single match the store yields
// is returned. No ordering guarantee is promised.
func (s *DocService) GetByUsername(ctx context.Context, username string) (*Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	id, doc, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return fromStored(id, doc), nil
}

// fromStored canonicalizes a stored document before shaping it, so
// legacy records (links as a raw string, fields predating the current
// schema) come back canonical on every read path.
func fromStored(id string, doc map[string]any) *Profile {
	canonical := canonicalize(doc)
	if t, ok := doc[updatedAtField].(time.Time); ok {
		canonical[updatedAtField] = t
	}
	return fromDoc(id, canonical)
}

// fromDoc shapes an already-canonical document.
func fromDoc(id string, doc map[string]any) *Profile {
	p := &Profile{
		ID:              id,
		Username:        docString(doc, "username"),
		DisplayName:     docString(doc, "displayName"),
		Bio:             docString(doc, "bio"),
		Links:           docList(doc, "links"),
		PfpURL:          docNullableString(doc, "pfpUrl"),
		BannerURL:       docNullableString(doc, "bannerUrl"),
		BackgroundType:  docString(doc, "backgroundType"),
		BackgroundValue: docString(doc, "backgroundValue"),
		Font:            docString(doc, "font"),
		FontColor:       docString(doc, "fontColor"),
		SongEmbed:       docNullableString(doc, "songEmbed"),
		AutoplaySong:    docBool(doc, "autoplaySong"),
		Cursor:          docString(doc, "cursor"),
		TrailEffect:     docBool(doc, "trailEffect"),
		TrailColor:      docString(doc, "trailColor"),
		HoverEffect:     docString(doc, "hoverEffect"),
		Layout:          docString(doc, "layout"),
		Sections:        docList(doc, "sections"),
	}
	if t, ok := doc[updatedAtField].(time.Time); ok {
		p.UpdatedAt = t
	}
	// displayName arrived in a later revision; older records show their
	// username until one is set.
	if p.DisplayName == "" {
		p.DisplayName = p.Username
	}
	return p
}

func docString(doc map[string]any, name string) string {
	s, _ := doc[name].(string)
	return s
}

func docList(doc map[string]any, name string) []string {
	if l, ok := doc[name].([]string); ok {
		return l
	}
	return []string{}
}

func docBool(doc map[string]any, name string) bool {
	b, _ := doc[name].(bool)
	return b
}

func docNullableString(doc map[string]any, name string) *string {
	if s, ok := doc[name].(string); ok {
		return &s
	}
	return nil
}

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidID):
		return "invalid_id"
	case errors.Is(err, ErrUnavailable):
		return "store_unavailable"
	default:
		return "internal_error"
	}
}

// Compile-time interface check
var _ Service = (*DocService)(nil)
