package store

import (
	"context"
	"sync"

	"leadgate/internal/submission/models"
)

// InMemoryStore keeps applications in memory for tests and local dev.
type InMemoryStore struct {
	mu   sync.RWMutex
	apps []*models.Application

	// InsertErr, when set, is returned by Insert. Lets handler and service
	// tests exercise the persistence-failure path.
	InsertErr error
}

// NewMemory constructs an empty in-memory application store.
func NewMemory() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Insert(_ context.Context, app *models.Application) error {
	if s.InsertErr != nil {
		return s.InsertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps = append(s.apps, app)
	return nil
}

// All returns a snapshot of inserted applications.
func (s *InMemoryStore) All() []*models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Application, len(s.apps))
	copy(out, s.apps)
	return out
}
