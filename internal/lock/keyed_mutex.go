package lock

import (
	"context"
	"sync"
)

// KeyedMutex is an in-process Locker. One buffered channel per key acts as the
// mutex so waiting can be abandoned when ctx ends.
type KeyedMutex struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{slots: make(map[string]chan struct{})}
}

func (m *KeyedMutex) slot(key string) chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch, ok := m.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		m.slots[key] = ch
	}
	return ch
}

func (m *KeyedMutex) Lock(ctx context.Context, key string) (func(), error) {
	ch := m.slot(key)

	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() { <-ch })
	}, nil
}

var _ Locker = (*KeyedMutex)(nil)
