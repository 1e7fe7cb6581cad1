package concurrent

import (
	"iter"
	"sync"

	"github.com/vireo-dev/vireo/internal/eq"
	"github.com/vireo-dev/vireo/pkg/change"
	"github.com/vireo-dev/vireo/pkg/collections"
)

// Stack is a thread-safe LIFO container with the same contract as
// collections.Stack.
type Stack[T any] struct {
	change.Notifier[T]

	mu          sync.Mutex
	items       []T
	fineGrained bool
}

// NewStack creates an empty Stack.
func NewStack[T any](opts ...Option) *Stack[T] {
	s := applyOptions(opts)
	return &Stack[T]{fineGrained: s.fineGrained}
}

// NewStackOf creates a Stack seeded with a copy of items, bottom first.
// No events are emitted for the initial contents.
func NewStackOf[T any](items []T, opts ...Option) *Stack[T] {
	st := NewStack[T](opts...)
	st.items = append(st.items, items...)
	return st
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Push adds item on top, emitting Add at the new top index.
func (s *Stack[T]) Push(item T) {
	s.mu.Lock()
	s.items = append(s.items, item)
	index := len(s.items) - 1
	s.mu.Unlock()

	s.PublishMutation(true, change.NewAddAt(index, item))
}

// PushAll pushes all items in one critical section, under the container's
// batch policy. The last item ends up on top.
func (s *Stack[T]) PushAll(items []T) {
	if len(items) == 0 {
		return
	}
	s.mu.Lock()
	start := len(s.items)
	s.items = append(s.items, items...)
	s.mu.Unlock()

	if !s.fineGrained {
		s.PublishMutation(true, change.NewReset[T]())
		return
	}
	s.PublishProperty(change.Count)
	s.PublishProperty(change.Indexer)
	for i, item := range items {
		s.Publish(change.NewAddAt(start+i, item))
	}
}

// Pop removes and returns the top element, emitting Remove at the old top
// index. It fails with collections.ErrEmpty on an empty stack.
func (s *Stack[T]) Pop() (T, error) {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		var zero T
		return zero, collections.ErrEmpty
	}
	top := len(s.items) - 1
	item := s.items[top]
	var zero T
	s.items[top] = zero
	s.items = s.items[:top]
	s.mu.Unlock()

	s.PublishMutation(true, change.NewRemoveAt(top, item))
	return item, nil
}

// Peek returns the top element without removing it. No event is emitted.
func (s *Stack[T]) Peek() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		var zero T
		return zero, collections.ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// Clear removes all elements, emitting a single Reset when the stack was
// non-empty.
func (s *Stack[T]) Clear() {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return
	}
	s.items = nil
	s.mu.Unlock()

	s.PublishMutation(true, change.NewReset[T]())
}

// Contains reports whether any stacked element is structurally equal to item.
func (s *Stack[T]) Contains(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if eq.Equal(existing, item) {
			return true
		}
	}
	return false
}

// Snapshot returns a point-in-time copy of the contents, bottom first.
func (s *Stack[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// All iterates a point-in-time snapshot, never the live storage.
func (s *Stack[T]) All() iter.Seq[T] {
	snapshot := s.Snapshot()
	return func(yield func(T) bool) {
		for _, item := range snapshot {
			if !yield(item) {
				return
			}
		}
	}
}
