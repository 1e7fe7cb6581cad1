package collections

import (
	"iter"

	"github.com/vireo-dev/vireo/pkg/change"
)

// KeyValue is one entry of a Map, used as the element type of its change
// channel and snapshots.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a hash table that notifies observers about every mutation. Change
// events carry KeyValue pairs; positional indices are never meaningful.
type Map[K comparable, V any] struct {
	change.Notifier[KeyValue[K, V]]

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
	return len(m.entries)
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.entries[key]
	return ok
}

// Set stores value under key. A missing key emits Add; an existing key
// emits Replace carrying the previous entry.
func (m *Map[K, V]) Set(key K, value V) {
	old, existed := m.entries[key]
	m.entries[key] = value
	if existed {
		m.PublishMutation(false, change.NewReplace(change.NoIndex,
			KeyValue[K, V]{Key: key, Value: old},
			KeyValue[K, V]{Key: key, Value: value}))
		return
	}
	m.PublishMutation(true, change.NewAdd(KeyValue[K, V]{Key: key, Value: value}))
}

// Add stores value under key, failing with ErrDuplicateKey when the key is
// already present. Nothing is emitted on failure.
func (m *Map[K, V]) Add(key K, value V) error {
	if _, exists := m.entries[key]; exists {
		return ErrDuplicateKey
	}
	m.entries[key] = value
	m.PublishMutation(true, change.NewAdd(KeyValue[K, V]{Key: key, Value: value}))
	return nil
}

// Remove deletes the entry under key. It returns false, and emits nothing,
// when the key is absent.
func (m *Map[K, V]) Remove(key K) bool {
	value, exists := m.entries[key]
	if !exists {
		return false
	}
	delete(m.entries, key)
	m.PublishMutation(true, change.NewRemove(KeyValue[K, V]{Key: key, Value: value}))
	return true
}

// Clear removes all entries, emitting a single Reset. Clearing an empty map
// emits nothing.
func (m *Map[K, V]) Clear() {
	if len(m.entries) == 0 {
		return
	}
	clear(m.entries)
	m.PublishMutation(true, change.NewReset[KeyValue[K, V]]())
}

// Keys returns the current keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the current values in unspecified order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, len(m.entries))
	for _, v := range m.entries {
		values = append(values, v)
	}
	return values
}

// Snapshot returns a copy of the current entries in unspecified order.
func (m *Map[K, V]) Snapshot() []KeyValue[K, V] {
	out := make([]KeyValue[K, V], 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, KeyValue[K, V]{Key: k, Value: v})
	}
	return out
}

// All iterates the live backing storage. The map must not be mutated
// during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.entries {
			if !yield(k, v) {
				return
			}
		}
	}
}
