package store

import (
	"context"
	"sync"
)

// NewMemory returns Preferences held in memory, for sessions that should
// not touch disk.
func NewMemory() Preferences {
	return &memory{values: make(map[string]string)}
}

type memory struct {
	mu       sync.Mutex
	values   map[string]string
	watchers []chan Event
}

func (m *memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *memory) Set(key, value string) error {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
	m.notify(key)
	return nil
}

func (m *memory) Delete(key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	m.notify(key)
	return nil
}

func (m *memory) All(context.Context) map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make(map[string]string, len(m.values))
	for k, v := range m.values {
		all[k] = v
	}
	return all
}

func (m *memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (m *memory) notify(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.watchers {
		select {
		case ch <- Event{Type: EventChanged, Key: key}:
		default:
		}
	}
}
