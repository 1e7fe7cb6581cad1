package concurrent

import (
	"iter"
	"sync"

	"github.com/vireo-dev/vireo/internal/eq"
	"github.com/vireo-dev/vireo/pkg/change"
	"github.com/vireo-dev/vireo/pkg/collections"
)

// List is a thread-safe dynamic array with the same contract as
// collections.List. Mutations are serialized by a mutex; notifications are
// delivered after the mutex is released.
type List[T any] struct {
	change.Notifier[T]

	mu          sync.Mutex
	items       []T
	fineGrained bool
	equals      func(a, b T) bool
}

// NewList creates an empty List.
func NewList[T any](opts ...Option) *List[T] {
	s := applyOptions(opts)
	return &List[T]{fineGrained: s.fineGrained}
}

// NewListOf creates a List seeded with a copy of items. No events are
// emitted for the initial contents.
func NewListOf[T any](items []T, opts ...Option) *List[T] {
	l := NewList[T](opts...)
	l.items = append(l.items, items...)
	return l
}

// WithEquals configures the structural equality used by Remove, Contains,
// and IndexOf. Call before sharing the list across goroutines.
func (l *List[T]) WithEquals(fn func(a, b T) bool) *List[T] {
	l.equals = fn
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, collections.ErrIndexOutOfRange
	}
	return l.items[index], nil
}

// Set replaces the element at index, emitting a Replace event.
func (l *List[T]) Set(index int, item T) error {
	l.mu.Lock()
	if index < 0 || index >= len(l.items) {
		l.mu.Unlock()
		return collections.ErrIndexOutOfRange
	}
	old := l.items[index]
	l.items[index] = item
	l.mu.Unlock()

	l.PublishMutation(false, change.NewReplace(index, old, item))
	return nil
}

// Append adds item at the end, emitting an Add event at the new last index.
func (l *List[T]) Append(item T) {
	l.mu.Lock()
	l.items = append(l.items, item)
	index := len(l.items) - 1
	l.mu.Unlock()

	l.PublishMutation(true, change.NewAddAt(index, item))
}

// AddRange appends all items under the container's batch policy. The whole
// batch is applied in one critical section.
func (l *List[T]) AddRange(items []T) {
	if len(items) == 0 {
		return
	}
	l.mu.Lock()
	start := len(l.items)
	l.items = append(l.items, items...)
	l.mu.Unlock()

	if !l.fineGrained {
		l.PublishMutation(true, change.NewReset[T]())
		return
	}
	l.PublishProperty(change.Count)
	l.PublishProperty(change.Indexer)
	for i, item := range items {
		l.Publish(change.NewAddAt(start+i, item))
	}
}

// Insert places item at index, shifting later elements right.
func (l *List[T]) Insert(index int, item T) error {
	l.mu.Lock()
	if index < 0 || index > len(l.items) {
		l.mu.Unlock()
		return collections.ErrIndexOutOfRange
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = item
	l.mu.Unlock()

	l.PublishMutation(true, change.NewAddAt(index, item))
	return nil
}

// Remove deletes the first element structurally equal to item. It returns
// false, and emits nothing, when no match exists.
func (l *List[T]) Remove(item T) bool {
	l.mu.Lock()
	index := -1
	for i, existing := range l.items {
		if l.itemEquals(existing, item) {
			index = i
			break
		}
	}
	if index < 0 {
		l.mu.Unlock()
		return false
	}
	removed := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.mu.Unlock()

	l.PublishMutation(true, change.NewRemoveAt(index, removed))
	return true
}

// RemoveAt deletes the element at index.
func (l *List[T]) RemoveAt(index int) error {
	l.mu.Lock()
	if index < 0 || index >= len(l.items) {
		l.mu.Unlock()
		return collections.ErrIndexOutOfRange
	}
	removed := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.mu.Unlock()

	l.PublishMutation(true, change.NewRemoveAt(index, removed))
	return nil
}

// Move relocates the element at oldIndex to newIndex. Equal indices are a
// no-op with no event.
func (l *List[T]) Move(oldIndex, newIndex int) error {
	l.mu.Lock()
	if oldIndex < 0 || oldIndex >= len(l.items) || newIndex < 0 || newIndex >= len(l.items) {
		l.mu.Unlock()
		return collections.ErrIndexOutOfRange
	}
	if oldIndex == newIndex {
		l.mu.Unlock()
		return nil
	}
	item := l.items[oldIndex]
	if oldIndex < newIndex {
		copy(l.items[oldIndex:], l.items[oldIndex+1:newIndex+1])
	} else {
		copy(l.items[newIndex+1:], l.items[newIndex:oldIndex])
	}
	l.items[newIndex] = item
	l.mu.Unlock()

	l.PublishMutation(false, change.NewMove(item, oldIndex, newIndex))
	return nil
}

// Clear removes all elements, emitting a single Reset when the list was
// non-empty.
func (l *List[T]) Clear() {
	l.mu.Lock()
	if len(l.items) == 0 {
		l.mu.Unlock()
		return
	}
	l.items = nil
	l.mu.Unlock()

	l.PublishMutation(true, change.NewReset[T]())
}

// Contains reports whether any element is structurally equal to item.
func (l *List[T]) Contains(item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, existing := range l.items {
		if l.itemEquals(existing, item) {
			return true
		}
	}
	return false
}

// Snapshot returns a point-in-time copy of the contents.
func (l *List[T]) Snapshot() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// All iterates a point-in-time snapshot, never the live storage, so
// iteration is safe while other goroutines mutate the list.
func (l *List[T]) All() iter.Seq[T] {
	snapshot := l.Snapshot()
	return func(yield func(T) bool) {
		for _, item := range snapshot {
			if !yield(item) {
				return
			}
		}
	}
}

func (l *List[T]) itemEquals(a, b T) bool {
	if l.equals != nil {
		return l.equals(a, b)
	}
	return eq.Equal(a, b)
}
