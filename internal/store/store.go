// Package store persists JSON documents in named collections keyed by an
// opaque id.
//
// Store is the narrow CRUD surface the services depend on: add, list, update,
// delete, and clear per collection. SQLite backs it on disk and Memory backs
// it in tests. Services receive a Store explicitly; nothing in the repository
// holds a global handle.
//
// Read-modify-write cycles that must see a consistent snapshot wrap their work
// in WithLock, which uses the store's exclusive lock when it has one.
package store

import (
	"context"
	"errors"
)

// Collection names used by the services.
const (
	CollectionRecipes      = "recipes"
	CollectionShoppingList = "shoppingList"
)

var (
	// ErrNotFound is returned when an id does not exist in a collection.
	ErrNotFound = errors.New("item not found")
	// ErrDuplicate is returned when adding an id that already exists.
	ErrDuplicate = errors.New("item already exists")
	// ErrInvalidRecord is returned for records without an id.
	ErrInvalidRecord = errors.New("record id is required")
)

// Record is one stored document.
type Record struct {
	ID   string
	Data []byte
}

// Store is a keyed document store partitioned into named collections.
type Store interface {
	AddItem(ctx context.Context, collection string, rec Record) error
	GetAllItems(ctx context.Context, collection string) ([]Record, error)
	UpdateItem(ctx context.Context, collection, id string, rec Record) error
	DeleteItem(ctx context.Context, collection, id string) error
	ClearStore(ctx context.Context, collection string) error
}

// Locker is implemented by stores that can serialize read-modify-write
// cycles, across processes where the backend allows it.
type Locker interface {
	Exclusive(ctx context.Context, fn func(ctx context.Context) error) error
}

// WithLock runs fn under s's exclusive lock, or directly when s has none.
func WithLock(ctx context.Context, s Store, fn func(ctx context.Context) error) error {
	if locker, ok := s.(Locker); ok {
		return locker.Exclusive(ctx, fn)
	}
	return fn(ctx)
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}
