// Package history persists the durable dateKey -> cardID assignment
// mapping shared with the widget process.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/vibeflip/vibeflip/pkg/datekey"
	"github.com/vibeflip/vibeflip/pkg/store"
)

const (
	// Key is the shared-namespace key holding the full mapping blob.
	Key = "shownCards"
	// migratedKey flags that the legacy namespace has been copied over.
	migratedKey = "historyMigrated"
)

// Store is the assignment history. Entries are write-once: the first
// cardID recorded for a day is never overwritten. The whole mapping is
// persisted as one JSON blob in the shared namespace, so the widget
// process observes every write as soon as it returns.
type Store struct {
	mu sync.Mutex
	kv store.KV
}

// Open returns a history backed by the shared namespace. When the
// shared namespace has no history yet and legacy holds one, the legacy
// mapping is copied over exactly once; the migration flag keeps the
// copy from ever re-running, even if the shared blob is later cleared.
func Open(shared store.KV, legacy store.KV) *Store {
	h := &Store{kv: shared}
	h.migrate(legacy)
	return h
}

func (h *Store) migrate(legacy store.KV) {
	if legacy == nil {
		return
	}
	if _, done := h.kv.Get(migratedKey); done {
		return
	}
	if _, exists := h.kv.Get(Key); !exists {
		if blob, ok := legacy.Get(Key); ok {
			h.kv.Put(Key, blob)
		}
	}
	h.kv.Put(migratedKey, "true")
}

// load returns the current mapping; a missing or corrupt blob reads as
// empty rather than failing.
func (h *Store) load() map[string]string {
	blob, ok := h.kv.Get(Key)
	if !ok || blob == "" {
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(blob), &m); err != nil {
		fmt.Fprintf(os.Stderr, "history: unmarshal %s: %v\n", Key, err)
		return map[string]string{}
	}
	return m
}

// Get returns the card id assigned on dateKey, if any.
func (h *Store) Get(dateKey string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, ok := h.load()[dateKey]
	return id, ok
}

// Put records cardID for dateKey unless an entry already exists. The
// check and write happen under one lock, so racing writers within the
// process converge on the first write. It reports whether this call
// wrote; a false return means either the day was taken or persistence
// failed, and callers should re-read to see what stuck.
func (h *Store) Put(dateKey, cardID string) bool {
	if dateKey == "" || cardID == "" {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	m := h.load()
	if _, taken := m[dateKey]; taken {
		return false
	}
	m[dateKey] = cardID
	data, err := json.Marshal(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: marshal %s: %v\n", Key, err)
		return false
	}
	return h.kv.Put(Key, string(data))
}

// RecentCardIDs returns the set of card ids assigned within the
// windowDays calendar days ending at asOf inclusive. Days with no entry
// are skipped.
func (h *Store) RecentCardIDs(windowDays int, asOf string) map[string]struct{} {
	h.mu.Lock()
	defer h.mu.Unlock()
	m := h.load()
	ids := make(map[string]struct{})
	for _, key := range datekey.Window(windowDays, asOf) {
		if id, ok := m[key]; ok {
			ids[id] = struct{}{}
		}
	}
	return ids
}

// All returns a copy of the full mapping, for display.
func (h *Store) All() map[string]string {
	h.mu.Lock()
	defer h.mu.Unlock()
	m := h.load()
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
