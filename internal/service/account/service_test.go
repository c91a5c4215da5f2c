package account

import (
	"context"
	"errors"
	"testing"
)

func TestMockRegisterAndLookup(t *testing.T) {
	svc := NewMockService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Ada@Example.com", "secret123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if reg.UID == "" {
		t.Error("expected a uid")
	}
	if reg.VerificationLink == "" {
		t.Error("expected a verification link")
	}

	acc, err := svc.LookupByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if acc.UID != reg.UID {
		t.Errorf("expected uid %s, got %s", reg.UID, acc.UID)
	}
}

func TestMockRegisterDuplicateEmail(t *testing.T) {
	svc := NewMockService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "dup@example.com", "pw"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(ctx, "dup@example.com", "pw")
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatal("expected an UpstreamError")
	}
	if ue.Kind != "email_exists" {
		t.Errorf("expected kind email_exists, got %s", ue.Kind)
	}
}

func TestMockLookupUnknownEmail(t *testing.T) {
	svc := NewMockService()

	_, err := svc.LookupByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpstreamErrorMessagePropagates(t *testing.T) {
	err := &UpstreamError{Kind: "upstream", Message: "PERMISSION_DENIED"}
	if !errors.Is(err, ErrUpstream) {
		t.Error("expected bare upstream error to match ErrUpstream")
	}
	if got := err.Error(); got != "identity provider error (upstream): PERMISSION_DENIED" {
		t.Errorf("unexpected message %q", got)
	}
}
