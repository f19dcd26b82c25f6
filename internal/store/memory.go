package store

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process Store. Its exclusive lock is a mutex, so it only
// serializes callers sharing the same value.
type Memory struct {
	mu          sync.RWMutex
	exclusive   sync.Mutex
	collections map[string]*memoryCollection
}

type memoryCollection struct {
	order []string
	items map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string]*memoryCollection)}
}

func (m *Memory) collection(name string) *memoryCollection {
	c, ok := m.collections[name]
	if !ok {
		c = &memoryCollection{items: make(map[string][]byte)}
		m.collections[name] = c
	}
	return c
}

// AddItem implements Store.
func (m *Memory) AddItem(_ context.Context, collection string, rec Record) error {
	if rec.ID == "" {
		return ErrInvalidRecord
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.collection(collection)
	if _, exists := c.items[rec.ID]; exists {
		return fmt.Errorf("add %s/%s: %w", collection, rec.ID, ErrDuplicate)
	}
	c.items[rec.ID] = cloneBytes(rec.Data)
	c.order = append(c.order, rec.ID)
	return nil
}

// GetAllItems implements Store.
func (m *Memory) GetAllItems(_ context.Context, collection string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.collections[collection]
	if !ok {
		return []Record{}, nil
	}
	out := make([]Record, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, Record{ID: id, Data: cloneBytes(c.items[id])})
	}
	return out, nil
}

// UpdateItem implements Store.
func (m *Memory) UpdateItem(_ context.Context, collection, id string, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.collections[collection]
	if !ok {
		return fmt.Errorf("update %s/%s: %w", collection, id, ErrNotFound)
	}
	if _, exists := c.items[id]; !exists {
		return fmt.Errorf("update %s/%s: %w", collection, id, ErrNotFound)
	}
	c.items[id] = cloneBytes(rec.Data)
	return nil
}

// DeleteItem implements Store.
func (m *Memory) DeleteItem(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.collections[collection]
	if !ok {
		return fmt.Errorf("delete %s/%s: %w", collection, id, ErrNotFound)
	}
	if _, exists := c.items[id]; !exists {
		return fmt.Errorf("delete %s/%s: %w", collection, id, ErrNotFound)
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// ClearStore implements Store.
func (m *Memory) ClearStore(_ context.Context, collection string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.collections, collection)
	return nil
}

// Exclusive implements Locker.
func (m *Memory) Exclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx = ensureContext(ctx)
	m.exclusive.Lock()
	defer m.exclusive.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
