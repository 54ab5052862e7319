package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"tatkal/infras/otel"
	"tatkal/shared/constant"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
	otel otel.Otel
}

// NewMemory returns an in-process Store. Values round-trip through JSON so
// reads re-validate shape exactly like the durable backend would.
func NewMemory(ot otel.Otel) Store {
	return &memoryStore{
		data: make(map[string][]byte),
		otel: ot,
	}
}

func (s *memoryStore) Get(ctx context.Context, key string, value any) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStoreKeyAttribute, key)

	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}

	if err = json.Unmarshal(raw, value); err != nil {
		return fmt.Errorf("failed to unmarshal stored value: %w", err)
	}

	return nil
}

func (s *memoryStore) Put(ctx context.Context, key string, value any) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStoreKeyAttribute, key)

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()

	return nil
}

func (s *memoryStore) Remove(ctx context.Context, key string) error {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Remove")
	defer scope.End()

	scope.SetAttribute(constant.OtelStoreKeyAttribute, key)

	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()

	return nil
}
