package concurrent

import (
	"iter"
	"sync"

	"github.com/vireo-dev/vireo/pkg/change"
	"github.com/vireo-dev/vireo/pkg/collections"
)

// Map is a thread-safe hash table with the same contract as
// collections.Map. The Add-vs-Replace decision for Set happens inside the
// critical section, so the emitted descriptor always matches the mutation
// that actually occurred.
type Map[K comparable, V any] struct {
	change.Notifier[collections.KeyValue[K, V]]

	mu      sync.Mutex
	entries map[K]V
}

// NewMap creates an empty Map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{entries: make(map[K]V)}
}

// NewMapOf creates a Map seeded with a copy of entries. No events are
// emitted for the initial contents.
func NewMapOf[K comparable, V any](entries map[K]V) *Map[K, V] {
	m := NewMap[K, V]()
	for k, v := range entries {
		m.entries[k] = v
	}
	return m
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores value under key. A missing key emits Add; an existing key
// emits Replace carrying the previous entry.
func (m *Map[K, V]) Set(key K, value V) {
	m.mu.Lock()
	old, existed := m.entries[key]
	m.entries[key] = value
	m.mu.Unlock()

	if existed {
		m.PublishMutation(false, change.NewReplace(change.NoIndex,
			collections.KeyValue[K, V]{Key: key, Value: old},
			collections.KeyValue[K, V]{Key: key, Value: value}))
		return
	}
	m.PublishMutation(true, change.NewAdd(collections.KeyValue[K, V]{Key: key, Value: value}))
}

// Add stores value under key, failing with collections.ErrDuplicateKey when
// the key is already present.
func (m *Map[K, V]) Add(key K, value V) error {
	m.mu.Lock()
	if _, exists := m.entries[key]; exists {
		m.mu.Unlock()
		return collections.ErrDuplicateKey
	}
	m.entries[key] = value
	m.mu.Unlock()

	m.PublishMutation(true, change.NewAdd(collections.KeyValue[K, V]{Key: key, Value: value}))
	return nil
}

// Remove deletes the entry under key. It returns false, and emits nothing,
// when the key is absent.
func (m *Map[K, V]) Remove(key K) bool {
	m.mu.Lock()
	value, exists := m.entries[key]
	if !exists {
		m.mu.Unlock()
		return false
	}
	delete(m.entries, key)
	m.mu.Unlock()

	m.PublishMutation(true, change.NewRemove(collections.KeyValue[K, V]{Key: key, Value: value}))
	return true
}

// Clear removes all entries, emitting a single Reset when the map was
// non-empty.
func (m *Map[K, V]) Clear() {
	m.mu.Lock()
	if len(m.entries) == 0 {
		m.mu.Unlock()
		return
	}
	clear(m.entries)
	m.mu.Unlock()

	m.PublishMutation(true, change.NewReset[collections.KeyValue[K, V]]())
}

// Keys returns a point-in-time copy of the keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]K, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}

// Values returns a point-in-time copy of the values in unspecified order.
func (m *Map[K, V]) Values() []V {
	m.mu.Lock()
	defer m.mu.Unlock()
	values := make([]V, 0, len(m.entries))
	for _, v := range m.entries {
		values = append(values, v)
	}
	return values
}

// Snapshot returns a point-in-time copy of the entries in unspecified
// order.
func (m *Map[K, V]) Snapshot() []collections.KeyValue[K, V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]collections.KeyValue[K, V], 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, collections.KeyValue[K, V]{Key: k, Value: v})
	}
	return out
}

// All iterates a point-in-time snapshot, never the live storage.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	snapshot := m.Snapshot()
	return func(yield func(K, V) bool) {
		for _, kv := range snapshot {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}
