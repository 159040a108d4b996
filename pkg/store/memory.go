package store

import (
	"context"
	"sync"
)

// Memory is an in-process KV with the same absorbing contract as the
// disk-backed store. It backs tests and the degraded mode where no
// durable storage is available: the session still works, nothing
// survives a restart.
type Memory struct {
	mu   sync.Mutex
	m    map[string]string
	subs []chan Event
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *Memory) Put(key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	s.notify(Event{Key: key})
	return true
}

func (s *Memory) PutIfAbsent(key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.m[key]; taken {
		return false
	}
	s.m[key] = value
	s.notify(Event{Key: key})
	return true
}

func (s *Memory) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.m[key]
	if ok {
		delete(s.m, key)
		s.notify(Event{Key: key})
	}
	return ok
}

func (s *Memory) Keys(_ context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	return keys
}

func (s *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 64)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub == ch {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
		close(ch)
	}()

	return ch, nil
}

// notify is called with mu held; sends never block, so a lagging
// subscriber just refreshes on its next read.
func (s *Memory) notify(ev Event) {
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
