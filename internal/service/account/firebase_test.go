package account

import (
	"context"
	"errors"
	"testing"

	platformfb "github.com/vanityhq/vanity-api/internal/platform/firebase"
	"github.com/vanityhq/vanity-api/internal/testutil"
)

func setupAuthTest(t *testing.T) *FirebaseService {
	t.Helper()

	testutil.SkipIfEmulatorUnavailable(t)
	testutil.SetupEmulator(t)
	testutil.ClearAccounts(t)

	ctx := context.Background()
	clients, err := platformfb.InitializeClients(ctx, platformfb.Config{ProjectID: testutil.ProjectID})
	if err != nil {
		t.Fatalf("failed to initialize Firebase clients: %v", err)
	}
	t.Cleanup(func() {
		testutil.ClearAccounts(t)
		_ = clients.Close()
	})

	return NewFirebaseService(clients.Auth)
}

func TestFirebaseRegisterAndLookup(t *testing.T) {
	svc := setupAuthTest(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "NEW@Example.com", "secret123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if reg.UID == "" {
		t.Fatal("expected a uid")
	}

	acc, err := svc.LookupByEmail(ctx, "new@example.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if acc.UID != reg.UID {
		t.Errorf("expected uid %s, got %s", reg.UID, acc.UID)
	}
}

func TestFirebaseRegisterDuplicate(t *testing.T) {
	svc := setupAuthTest(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "dup@example.com", "secret123"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(ctx, "dup@example.com", "secret123")
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestFirebaseLookupUnknown(t *testing.T) {
	svc := setupAuthTest(t)

	_, err := svc.LookupByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
