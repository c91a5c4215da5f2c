package profile

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"cloud.google.com/go/firestore"

	"github.com/vanityhq/vanity-api/internal/testutil"
)

func setupFirestoreTest(t *testing.T) (*FirestoreStore, *firestore.Client) {
	t.Helper()

	testutil.SkipIfFirestoreUnavailable(t)
	testutil.SetupEmulator(t)
	testutil.ClearFirestore(t)

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, testutil.ProjectID)
	if err != nil {
		t.Fatalf("failed to create Firestore client: %v", err)
	}
	t.Cleanup(func() {
		testutil.ClearFirestore(t)
		_ = client.Close()
	})

	return NewFirestoreStore(client), client
}

func TestFirestorePutGetRoundTrip(t *testing.T) {
	store, _ := setupFirestoreTest(t)
	ctx := context.Background()

	svc := NewService(store)
	saved, err := svc.Save(ctx, "user-rt", map[string]any{
		"username": "roundtrip",
		"links":    "a, b",
		"bio":      "hello",
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := svc.GetByID(ctx, "user-rt")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Username != "roundtrip" {
		t.Errorf("expected username roundtrip, got %s", got.Username)
	}
	if !reflect.DeepEqual(got.Links, []string{"a", "b"}) {
		t.Errorf("expected links [a b], got %v", got.Links)
	}
	if !got.UpdatedAt.Equal(saved.UpdatedAt) {
		t.Errorf("expected updatedAt %v, got %v", saved.UpdatedAt, got.UpdatedAt)
	}
}

func TestFirestoreGetNotFound(t *testing.T) {
	store, _ := setupFirestoreTest(t)

	_, err := store.Get(context.Background(), "nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFirestoreGetByUsername(t *testing.T) {
	store, _ := setupFirestoreTest(t)
	ctx := context.Background()

	svc := NewService(store)
	if _, err := svc.Save(ctx, "user-q", map[string]any{"username": "query-me"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	id, doc, err := store.GetByUsername(ctx, "query-me")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if id != "user-q" {
		t.Errorf("expected id user-q, got %s", id)
	}
	if doc["username"] != "query-me" {
		t.Errorf("expected username query-me, got %v", doc["username"])
	}

	_, _, err = store.GetByUsername(ctx, "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing username, got %v", err)
	}
}

func TestFirestoreLegacyRecordReadsCanonical(t *testing.T) {
	store, client := setupFirestoreTest(t)
	ctx := context.Background()

	// Write a record the way the earliest revision stored it: links as a
	// raw delimited string, no styling fields at all.
	_, err := client.Collection(profilesCollection).Doc("legacy-fs").Set(ctx, map[string]any{
		"username": "old-timer",
		"links":    "one,two",
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	svc := NewService(store)
	p, err := svc.GetByID(ctx, "legacy-fs")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !reflect.DeepEqual(p.Links, []string{"one", "two"}) {
		t.Errorf("expected legacy links [one two], got %v", p.Links)
	}
	if p.Cursor != "default" {
		t.Errorf("expected cursor default, got %s", p.Cursor)
	}

	byName, err := svc.GetByUsername(ctx, "old-timer")
	if err != nil {
		t.Fatalf("lookup by username failed: %v", err)
	}
	if !reflect.DeepEqual(byName.Links, []string{"one", "two"}) {
		t.Errorf("expected canonical links on username path, got %v", byName.Links)
	}
}
