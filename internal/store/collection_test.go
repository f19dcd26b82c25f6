package store_test

import (
	"context"
	"errors"
	"testing"

	"larder/internal/store"
)

type note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func noteID(n note) string { return n.ID }

func TestCollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	notes := store.NewCollection(store.NewMemory(), "notes", noteID)

	if err := notes.Add(ctx, note{ID: "1", Text: "first"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := notes.Add(ctx, note{ID: "2", Text: "second"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := notes.Add(ctx, note{Text: "no id"}); !errors.Is(err, store.ErrInvalidRecord) {
		t.Fatalf("Add without id error = %v, want ErrInvalidRecord", err)
	}

	got, err := notes.Get(ctx, "2")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.Text != "second" {
		t.Fatalf("Get(2) = %+v", got)
	}
	missing, err := notes.Get(ctx, "nope")
	if err != nil || missing != nil {
		t.Fatalf("Get(nope) = %+v, %v; want nil, nil", missing, err)
	}

	if err := notes.Update(ctx, note{ID: "1", Text: "edited"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := notes.Delete(ctx, "2"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	all, err := notes.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 1 || all[0].Text != "edited" {
		t.Fatalf("All = %+v", all)
	}

	if err := notes.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	all, err = notes.All(ctx)
	if err != nil || len(all) != 0 {
		t.Fatalf("All after Clear = %+v, %v", all, err)
	}
}

func TestCollectionDecodeError(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	if err := mem.AddItem(ctx, "notes", store.Record{ID: "bad", Data: []byte("not json")}); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	notes := store.NewCollection(mem, "notes", noteID)
	if _, err := notes.All(ctx); err == nil {
		t.Fatal("expected decode error")
	}
}
