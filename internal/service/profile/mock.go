package profile

import (
	"context"
	"maps"
	"sync"
)

// MockStore implements Store in memory for unit tests. Documents are
// stored loosely typed, so tests can seed legacy shapes (links as a raw
// string) that predate the current schema.
type MockStore struct {
	mu   sync.RWMutex
	docs map[string]map[string]any
	// Err, when set, is returned by every operation to simulate a
	// backend outage.
	Err error
	// Puts counts write attempts, including failed ones.
	Puts int
}

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{docs: make(map[string]map[string]any)}
}

// Seed inserts a document directly, bypassing normalization.
func (m *MockStore) Seed(id string, doc map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[id] = maps.Clone(doc)
}

func (m *MockStore) Get(_ context.Context, id string) (map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	doc, ok := m.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return maps.Clone(doc), nil
}

func (m *MockStore) Put(_ context.Context, id string, doc map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Puts++
	if m.Err != nil {
		return m.Err
	}
	m.docs[id] = maps.Clone(doc)
	return nil
}

func (m *MockStore) GetByUsername(_ context.Context, username string) (string, map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return "", nil, m.Err
	}
	for id, doc := range m.docs {
		if doc["username"] == username {
			return id, maps.Clone(doc), nil
		}
	}
	return "", nil, ErrNotFound
}

// Compile-time interface check
var _ Store = (*MockStore)(nil)

// MockProfileService implements Service for handler tests.
type MockProfileService struct {
	Profile *Profile
	Err     error
	// LastRaw captures the payload passed to Save.
	LastRaw map[string]any
}

func (m *MockProfileService) Save(_ context.Context, id string, raw map[string]any) (*Profile, error) {
	m.LastRaw = raw
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Profile != nil {
		return m.Profile, nil
	}
	p := fromDoc(id, canonicalize(map[string]any{}))
	return p, nil
}

func (m *MockProfileService) GetByID(_ context.Context, _ string) (*Profile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Profile, nil
}

func (m *MockProfileService) GetByUsername(_ context.Context, _ string) (*Profile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Profile, nil
}

// Compile-time interface check
var _ Service = (*MockProfileService)(nil)
