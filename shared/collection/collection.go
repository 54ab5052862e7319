package collection

import (
	"context"
	"errors"
	"fmt"
	"tatkal/infras/otel"
	"tatkal/shared/constant"
	"tatkal/shared/kvstore"
)

// Collection is a typed view over a single store key holding a JSON array of
// T. Every mutation reads the full collection, produces the next full value
// and writes it back with one Put: atomic with respect to the store's per-key
// atomicity, never atomic across two keys. Two concurrent writers to the same
// key are last-write-wins.
type Collection[T any] struct {
	store  kvstore.Store
	key    string
	entity string
	otel   otel.Otel
}

func New[T any](entityName, key string, store kvstore.Store, ot otel.Otel) Collection[T] {
	return Collection[T]{
		store:  store,
		key:    key,
		entity: entityName,
		otel:   ot,
	}
}

// Key returns the store key this collection persists under.
func (c *Collection[T]) Key() string {
	return c.key
}

// List returns every item in the collection. A missing key reads as an empty
// collection, never as an error.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.List", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()

	var items []T

	err := c.store.Get(ctx, c.key, &items)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []T{}, nil
	}

	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list data (%s): %w", c.entity, err)
	}

	return items, nil
}

// Replace overwrites the whole collection in one store write.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Replace", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()

	if err := c.store.Put(ctx, c.key, items); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to replace data (%s): %w", c.entity, err)
	}

	return nil
}

// Insert appends one item to the collection.
func (c *Collection[T]) Insert(ctx context.Context, item T) error {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()

	items, err := c.List(ctx)
	if err != nil {
		return err
	}

	return c.Replace(ctx, append(items, item))
}

// Find returns the first item matching the predicate.
func (c *Collection[T]) Find(ctx context.Context, pred func(T) bool) (T, bool, error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Find", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()

	var zero T

	items, err := c.List(ctx)
	if err != nil {
		return zero, false, err
	}

	for _, item := range items {
		if pred(item) {
			return item, true, nil
		}
	}

	return zero, false, nil
}

// Update applies the mutation to every item matching the predicate and
// reports how many matched. Zero matches is not an error.
func (c *Collection[T]) Update(ctx context.Context, pred func(T) bool, apply func(*T)) (int, error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()

	items, err := c.List(ctx)
	if err != nil {
		return 0, err
	}

	matched := 0

	for i := range items {
		if pred(items[i]) {
			apply(&items[i])
			matched++
		}
	}

	if matched == 0 {
		return 0, nil
	}

	return matched, c.Replace(ctx, items)
}

// Remove drops every item matching the predicate and reports how many went.
func (c *Collection[T]) Remove(ctx context.Context, pred func(T) bool) (int, error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Remove", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()

	items, err := c.List(ctx)
	if err != nil {
		return 0, err
	}

	kept := items[:0:0]
	removed := 0

	for _, item := range items {
		if pred(item) {
			removed++
			continue
		}

		kept = append(kept, item)
	}

	if removed == 0 {
		return 0, nil
	}

	if kept == nil {
		kept = []T{}
	}

	return removed, c.Replace(ctx, kept)
}

// Drop deletes the collection's key entirely. Used by cascading deletes; a
// missing key is a no-op.
func (c *Collection[T]) Drop(ctx context.Context) error {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Drop", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()

	if err := c.store.Remove(ctx, c.key); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to drop data (%s): %w", c.entity, err)
	}

	return nil
}
