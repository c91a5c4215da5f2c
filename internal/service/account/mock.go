package account

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockService implements Service in memory for tests.
type MockService struct {
	mu       sync.Mutex
	accounts map[string]*Account
	nextUID  int
	// Err, when set, is returned by every operation.
	Err error
}

// NewMockService creates an empty in-memory account service.
func NewMockService() *MockService {
	return &MockService{accounts: make(map[string]*Account)}
}

func (m *MockService) Register(_ context.Context, email, _ string) (*Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if _, exists := m.accounts[email]; exists {
		return nil, &UpstreamError{Kind: "email_exists", Message: "email already in use", cause: ErrEmailExists}
	}

	m.nextUID++
	uid := fmt.Sprintf("uid-%d", m.nextUID)
	m.accounts[email] = &Account{UID: uid, Email: email}

	return &Registration{
		UID:              uid,
		VerificationLink: "https://example.com/verify/" + uid,
	}, nil
}

func (m *MockService) LookupByEmail(_ context.Context, email string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	acc, ok := m.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, &UpstreamError{Kind: "not_found", Message: "no account for email", cause: ErrNotFound}
	}
	return acc, nil
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
