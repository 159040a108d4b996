// Package store provides the durable key-value namespace shared by the
// app process and the widget process.
//
// The store absorbs failures by contract: a failed read is "absent", a
// failed write is "not persisted". Nothing here returns an error past
// the store boundary, so callers can always make progress for the
// current session even when storage is broken.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// KV is the shared namespace contract. The app process is the only
// writer; the widget process is a read-only consumer.
type KV interface {
	// Get returns the value for key, or false when key is absent or the
	// read failed.
	Get(key string) (string, bool)
	// Put stores value under key, reporting whether the write landed.
	Put(key, value string) bool
	// PutIfAbsent stores value only when key has no value yet, atomically
	// with respect to other puts on this store. It reports whether this
	// call performed the write.
	PutIfAbsent(key, value string) bool
	// Delete removes key, reporting whether the removal landed.
	Delete(key string) bool
	// Keys lists the keys currently present.
	Keys(ctx context.Context) []string
	// Watch streams change notifications until ctx is cancelled. This is
	// the cross-process refresh signal: a write committed before a
	// notification is observed by the next read after it.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open returns a KV rooted at basePath, creating it on first use.
func Open(basePath string) KV {
	return &shared{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    flatTransform,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}
}

type shared struct {
	// mu serializes writers so PutIfAbsent is check-and-set, not
	// last-check-wins. Cross-process atomicity is not needed: the widget
	// process never writes.
	mu       sync.Mutex
	d        *diskv.Diskv
	basePath string
}

// flatTransform keeps every key in the namespace root; keys here are a
// small fixed vocabulary, not a hierarchy.
func flatTransform(string) []string { return []string{} }

func (s *shared) Get(key string) (string, bool) {
	val, err := s.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (s *shared) Put(key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.d.Write(key, []byte(value)); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %s: %v\n", key, err)
		return false
	}
	return true
}

func (s *shared) PutIfAbsent(key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.d.Has(key) {
		return false
	}
	if err := s.d.Write(key, []byte(value)); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %s: %v\n", key, err)
		return false
	}
	return true
}

func (s *shared) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.d.Erase(key); err != nil {
		return false
	}
	return true
}

func (s *shared) Keys(ctx context.Context) []string {
	keys := make([]string, 0, 8)
	for key := range s.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	return keys
}
