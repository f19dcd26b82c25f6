package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection is a typed view over one named collection. Items are encoded
// as JSON documents.
type Collection[T any] struct {
	store Store
	name  string
	id    func(T) string
}

// NewCollection binds a typed collection to s. id extracts the key of an item.
func NewCollection[T any](s Store, name string, id func(T) string) *Collection[T] {
	return &Collection[T]{store: s, name: name, id: id}
}

// Add inserts item.
func (c *Collection[T]) Add(ctx context.Context, item T) error {
	rec, err := c.encode(item)
	if err != nil {
		return err
	}
	return c.store.AddItem(ctx, c.name, rec)
}

// All decodes every item in insertion order.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	recs, err := c.store.GetAllItems(ctx, c.name)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(recs))
	for _, rec := range recs {
		var item T
		if err := json.Unmarshal(rec.Data, &item); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", c.name, rec.ID, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Get returns the item with id, or nil when it does not exist.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	items, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if c.id(items[i]) == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Update replaces the stored item sharing item's id.
func (c *Collection[T]) Update(ctx context.Context, item T) error {
	rec, err := c.encode(item)
	if err != nil {
		return err
	}
	return c.store.UpdateItem(ctx, c.name, rec.ID, rec)
}

// Delete removes the item with id.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.store.DeleteItem(ctx, c.name, id)
}

// Clear removes every item.
func (c *Collection[T]) Clear(ctx context.Context) error {
	return c.store.ClearStore(ctx, c.name)
}

func (c *Collection[T]) encode(item T) (Record, error) {
	id := c.id(item)
	if id == "" {
		return Record{}, ErrInvalidRecord
	}
	data, err := json.Marshal(item)
	if err != nil {
		return Record{}, fmt.Errorf("encode %s/%s: %w", c.name, id, err)
	}
	return Record{ID: id, Data: data}, nil
}
