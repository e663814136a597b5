package querycache

import (
	"context"
	"time"

	"github.com/justthetip/yoto-discovery/internal/db"
)

// mockStore is a hand-written in-memory store for cache tests.
type mockStore struct {
	data map[string][]byte

	getErr error
	setErr error

	getCalls []string
	setCalls []string
	lastTTL  time.Duration
}

func newMockStore() *mockStore {
	return &mockStore{data: map[string][]byte{}}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	m.getCalls = append(m.getCalls, key)
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, &db.Error{Op: db.OpGet, Err: db.ErrKeyNotFound}
	}
	return v, nil
}

func (m *mockStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.setCalls = append(m.setCalls, key)
	m.lastTTL = ttl
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}
