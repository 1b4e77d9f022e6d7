package users

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/common"
)

// MemoryRepository is a thread-safe in-memory Repository. Records are listed
// in insertion order; ids are sequential integers starting at 1.
type MemoryRepository struct {
	mu      sync.RWMutex
	items   map[string]Record
	order   []string
	counter int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make(map[string]Record),
		order: make([]string, 0),
	}
}

func (m *MemoryRepository) List(ctx context.Context) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Record, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.items[id].clone())
	}
	return out, nil
}

func (m *MemoryRepository) Get(ctx context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return rec.clone(), nil
}

func (m *MemoryRepository) Create(ctx context.Context, rec Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counter++
	stored := rec.clone()
	if stored == nil {
		stored = Record{}
	}
	stored["id"] = m.counter

	id := strconv.FormatInt(m.counter, 10)
	m.items[id] = stored
	m.order = append(m.order, id)
	return stored.clone(), nil
}

func (m *MemoryRepository) Update(ctx context.Context, id string, rec Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	old, ok := m.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	stored := rec.clone()
	if stored == nil {
		stored = Record{}
	}
	stored["id"] = old["id"]
	m.items[id] = stored
	return stored.clone(), nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(m.items, id)
	if i := slices.Index(m.order, id); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	return nil
}

func (m *MemoryRepository) NextID(ctx context.Context) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.counter + 1
}
