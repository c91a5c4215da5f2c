package profile

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const profilesCollection = "profiles"

// FirestoreStore implements Store over a Firestore collection of
// whole documents. The client is constructed once at process start and
// injected, never rebuilt per request.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Get reads one document by id.
func (s *FirestoreStore) Get(ctx context.Context, id string) (map[string]any, error) {
	doc, err := s.client.Collection(profilesCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return doc.Data(), nil
}

// Put writes the document whole. The merge is computed by the service;
// Firestore's own merge option is deliberately not used because it does
// not understand the schema's list and default semantics.
func (s *FirestoreStore) Put(ctx context.Context, id string, doc map[string]any) error {
	_, err := s.client.Collection(profilesCollection).Doc(id).Set(ctx, doc)
	if err != nil {
		return mapStoreError(err)
	}
	return nil
}

// GetByUsername issues an equality query limited to one result. With no
// uniqueness constraint and no OrderBy, Firestore yields an arbitrary
// single match when usernames collide.
func (s *FirestoreStore) GetByUsername(ctx context.Context, username string) (string, map[string]any, error) {
	iter := s.client.Collection(profilesCollection).
		Where("username", "==", username).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return "", nil, ErrNotFound
		}
		return "", nil, mapStoreError(err)
	}
	return doc.Ref.ID, doc.Data(), nil
}

// mapStoreError classifies Firestore failures into service errors.
// Missing documents become ErrNotFound; timeouts and backend outages
// become ErrUnavailable so callers know a retry is safe.
func mapStoreError(err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return ErrNotFound
	case codes.DeadlineExceeded, codes.Unavailable, codes.ResourceExhausted:
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}

// Compile-time interface check
var _ Store = (*FirestoreStore)(nil)
