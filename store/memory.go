package store

import (
	"context"
	"sync"
)

// Memory is an in-memory KV implementation. It backs tests and any use where
// persistence across runs is not wanted.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
	opts options
}

// NewMemory returns an empty in-memory store.
func NewMemory(opts ...Option) *Memory {
	return &Memory{data: make(map[string][]byte), opts: newOptions(opts)}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := m.opts.pause(ctx); err != nil {
		return nil, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	m.opts.log.Debug().Str("key", key).Bool("hit", ok).Msg("store get")
	if !ok {
		return nil, false, nil
	}
	// Copy so callers cannot mutate the stored value.
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, true, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	if err := m.opts.pause(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	m.opts.log.Debug().Str("key", key).Int("bytes", len(value)).Msg("store set")
	return nil
}

func (m *Memory) Remove(ctx context.Context, key string) error {
	if err := m.opts.pause(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	m.opts.log.Debug().Str("key", key).Msg("store remove")
	return nil
}

func (m *Memory) Close() error { return nil }

var _ KV = (*Memory)(nil)
