package kvstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tatkal/infras/otel/mocks"
	"tatkal/shared/kvstore"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestMemoryStore_PutGet(t *testing.T) {
	store := kvstore.NewMemory(mocks.NewOtel())
	ctx := context.Background()

	in := record{ID: "r-1", Name: "first"}
	if err := store.Put(ctx, "records", in); err != nil {
		t.Fatalf("unexpected error on put: %v", err)
	}

	var out record
	if err := store.Get(ctx, "records", &out); err != nil {
		t.Fatalf("unexpected error on get: %v", err)
	}

	if out != in {
		t.Errorf("expected %+v, got %+v", in, out)
	}
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	store := kvstore.NewMemory(mocks.NewOtel())

	var out record
	err := store.Get(context.Background(), "nothing-here", &out)

	if !errors.Is(err, kvstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_PutReplacesWholeValue(t *testing.T) {
	store := kvstore.NewMemory(mocks.NewOtel())
	ctx := context.Background()

	if err := store.Put(ctx, "records", []record{{ID: "a"}, {ID: "b"}}); err != nil {
		t.Fatalf("unexpected error on first put: %v", err)
	}
	if err := store.Put(ctx, "records", []record{{ID: "c"}}); err != nil {
		t.Fatalf("unexpected error on second put: %v", err)
	}

	var out []record
	if err := store.Get(ctx, "records", &out); err != nil {
		t.Fatalf("unexpected error on get: %v", err)
	}

	if len(out) != 1 || out[0].ID != "c" {
		t.Errorf("expected second put to fully replace the value, got %+v", out)
	}
}

func TestMemoryStore_Remove(t *testing.T) {
	store := kvstore.NewMemory(mocks.NewOtel())
	ctx := context.Background()

	if err := store.Put(ctx, "records", record{ID: "r-1"}); err != nil {
		t.Fatalf("unexpected error on put: %v", err)
	}

	if err := store.Remove(ctx, "records"); err != nil {
		t.Fatalf("unexpected error on remove: %v", err)
	}

	var out record
	if err := store.Get(ctx, "records", &out); !errors.Is(err, kvstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestMemoryStore_RemoveMissingKeyIsNoop(t *testing.T) {
	store := kvstore.NewMemory(mocks.NewOtel())

	if err := store.Remove(context.Background(), "never-written"); err != nil {
		t.Errorf("expected removing a missing key to succeed, got %v", err)
	}
}

func TestMemoryStore_ValuesAreIsolatedCopies(t *testing.T) {
	store := kvstore.NewMemory(mocks.NewOtel())
	ctx := context.Background()

	in := []record{{ID: "a", Name: "original"}}
	if err := store.Put(ctx, "records", in); err != nil {
		t.Fatalf("unexpected error on put: %v", err)
	}

	// Mutating the slice handed to Put must not leak into the store.
	in[0].Name = "mutated"

	var out []record
	if err := store.Get(ctx, "records", &out); err != nil {
		t.Fatalf("unexpected error on get: %v", err)
	}

	if out[0].Name != "original" {
		t.Errorf("expected stored value to be an isolated copy, got %+v", out[0])
	}
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := kvstore.NewMemory(mocks.NewOtel())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			key := "records"
			if n%2 == 0 {
				if err := store.Put(ctx, key, record{ID: "r"}); err != nil {
					t.Errorf("unexpected error on put: %v", err)
				}
				return
			}

			var out record
			if err := store.Get(ctx, key, &out); err != nil && !errors.Is(err, kvstore.ErrNotFound) {
				t.Errorf("unexpected error on get: %v", err)
			}
		}(i)
	}
	wg.Wait()
}
