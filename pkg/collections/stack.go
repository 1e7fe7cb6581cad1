package collections

import (
	"iter"

	"github.com/vireo-dev/vireo/internal/eq"
	"github.com/vireo-dev/vireo/pkg/change"
)

// Stack is a LIFO container that notifies observers about every mutation.
// Push emits Add at the new top index; Pop emits Remove at the old top
// index.
type Stack[T any] struct {
	change.Notifier[T]

	items       []T
	fineGrained bool
	equals      func(a, b T) bool
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

// WithEquals configures the structural equality used by Contains.
func (s *Stack[T]) WithEquals(fn func(a, b T) bool) *Stack[T] {
	s.equals = fn
	return s
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Push adds item on top, emitting Add at the new top index.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
	s.PublishMutation(true, change.NewAddAt(len(s.items)-1, item))
}

// PushAll pushes all items in order, so the last item ends up on top. Under
// the default coarse policy a non-empty batch emits a single Reset; under
// WithFineGrained it emits one Add per item, all after the batch is fully
// applied. An empty batch emits nothing.
func (s *Stack[T]) PushAll(items []T) {
	if len(items) == 0 {
		return
	}
	start := len(s.items)
	s.items = append(s.items, items...)

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
// index. It fails with ErrEmpty on an empty stack.
func (s *Stack[T]) Pop() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	top := len(s.items) - 1
	item := s.items[top]
	var zero T
	s.items[top] = zero
	s.items = s.items[:top]
	s.PublishMutation(true, change.NewRemoveAt(top, item))
	return item, nil
}

// Peek returns the top element without removing it. No event is emitted.
// It fails with ErrEmpty on an empty stack.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// Clear removes all elements, emitting a single Reset. Clearing an empty
// stack emits nothing.
func (s *Stack[T]) Clear() {
	if len(s.items) == 0 {
		return
	}
	s.items = s.items[:0]
	s.PublishMutation(true, change.NewReset[T]())
}

// Contains reports whether any stacked element is structurally equal to
// item.
func (s *Stack[T]) Contains(item T) bool {
	for _, existing := range s.items {
		if s.itemEquals(existing, item) {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current contents, bottom first.
func (s *Stack[T]) Snapshot() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// All iterates the live backing storage from bottom to top. The stack must
// not be mutated during iteration.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

func (s *Stack[T]) itemEquals(a, b T) bool {
	if s.equals != nil {
		return s.equals(a, b)
	}
	return eq.Equal(a, b)
}
