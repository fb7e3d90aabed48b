package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/makoye224/cwru-courses-backend/internal/catalog"
)

// MemoryRepo keeps courses in process memory. It is used when no MongoDB is
// configured and by unit tests. Courses are returned in insertion order.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []string
	store map[string]*catalog.Course
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*catalog.Course)}
}

func (m *MemoryRepo) Insert(_ context.Context, c *catalog.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[c.ID]; !ok {
		m.order = append(m.order, c.ID)
	}
	m.store[c.ID] = c.Clone()
	return nil
}

func (m *MemoryRepo) FindByID(_ context.Context, id string) (*catalog.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.store[id]; ok {
		return c.Clone(), nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) List(_ context.Context) ([]catalog.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot(), nil
}

// Search ranks courses by character-set similarity to text.
func (m *MemoryRepo) Search(_ context.Context, text string) ([]catalog.Course, error) {
	m.mu.RLock()
	all := m.snapshot()
	m.mu.RUnlock()
	return catalog.Rank(all, text), nil
}

// Save replaces an existing course, like MongoRepo.Save.
func (m *MemoryRepo) Save(_ context.Context, c *catalog.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[c.ID]; !ok {
		return ErrNotFound
	}
	m.store[c.ID] = c.Clone()
	return nil
}

func (m *MemoryRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	m.order = slices.DeleteFunc(m.order, func(s string) bool { return s == id })
	return nil
}

func (m *MemoryRepo) snapshot() []catalog.Course {
	out := make([]catalog.Course, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.store[id].Clone())
	}
	return out
}
