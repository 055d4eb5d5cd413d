package store

import (
	"sync"

	"go.uber.org/zap"
)

// Manager hands out one Store per cart key for the lifetime of the process,
// so every request for a user's cart sees the same in-memory instance.
type Manager struct {
	storage Storage
	logger  *zap.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

// NewManager creates a Manager over the given storage backend.
func NewManager(storage Storage, logger *zap.Logger) *Manager {
	return &Manager{
		storage: storage,
		logger:  logger,
		stores:  make(map[string]*Store),
	}
}

// For returns the Store for the cart key, hydrating it on first use.
func (m *Manager) For(key string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[key]; ok {
		return s
	}
	s := New(key, m.storage, m.logger.With(zap.String("cart", key)))
	m.stores[key] = s
	return s
}

// Close drains pending persistence writes for every open store.
func (m *Manager) Close() {
	m.mu.Lock()
	stores := make([]*Store, 0, len(m.stores))
	for _, s := range m.stores {
		stores = append(stores, s)
	}
	m.stores = make(map[string]*Store)
	m.mu.Unlock()

	for _, s := range stores {
		s.Close()
	}
}
