package testutil

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"
)

const (
	AuthEmulatorHost      = "127.0.0.1:9099"
	FirestoreEmulatorHost = "127.0.0.1:8090"
	ProjectID             = "demo-vanity-test"
)

func reachable(host string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", host)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// SkipIfFirestoreUnavailable skips tests that need the Firestore emulator.
func SkipIfFirestoreUnavailable(t *testing.T) {
	t.Helper()
	if !reachable(FirestoreEmulatorHost) {
		t.Skip("Firestore emulator not available")
	}
}

// SkipIfEmulatorUnavailable skips tests that need both Firebase emulators.
func SkipIfEmulatorUnavailable(t *testing.T) {
	t.Helper()
	if !reachable(AuthEmulatorHost) || !reachable(FirestoreEmulatorHost) {
		t.Skip("Firebase emulators not available")
	}
}

// SetupEmulator points the Firebase SDKs at the local emulators for the
// duration of the test.
func SetupEmulator(t *testing.T) {
	t.Helper()
	t.Setenv("FIREBASE_AUTH_EMULATOR_HOST", AuthEmulatorHost)
	t.Setenv("FIRESTORE_EMULATOR_HOST", FirestoreEmulatorHost)
}

func clearEndpoint(t *testing.T, url, what string) {
	t.Helper()
	ctx := context.Background()
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		t.Fatalf("failed to create %s clear request: %v", what, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("failed to clear %s: %v", what, err)
	}
	_ = resp.Body.Close()
}

// ClearFirestore removes all documents from the Firestore emulator.
func ClearFirestore(t *testing.T) {
	t.Helper()
	clearEndpoint(t, fmt.Sprintf("http://%s/emulator/v1/projects/%s/databases/(default)/documents",
		FirestoreEmulatorHost, ProjectID), "Firestore")
}

// ClearAccounts removes all users from the Auth emulator.
func ClearAccounts(t *testing.T) {
	t.Helper()
	clearEndpoint(t, fmt.Sprintf("http://%s/emulator/v1/projects/%s/accounts",
		AuthEmulatorHost, ProjectID), "accounts")
}

// ClearEmulators clears both Auth accounts and Firestore documents.
func ClearEmulators(t *testing.T) {
	t.Helper()
	ClearAccounts(t)
	ClearFirestore(t)
}
