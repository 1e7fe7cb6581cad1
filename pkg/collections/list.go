package collections

import (
	"iter"

	"github.com/vireo-dev/vireo/internal/eq"
	"github.com/vireo-dev/vireo/pkg/change"
)

// List is a dynamic array that notifies observers about every mutation.
// The zero value is not usable; construct with NewList or NewListOf.
type List[T any] struct {
	change.Notifier[T]

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
// and IndexOf. The default compares with == for comparable kinds and
// reflect.DeepEqual otherwise.
func (l *List[T]) WithEquals(fn func(a, b T) bool) *List[T] {
	l.equals = fn
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// FineGrained reports whether bulk operations notify per item.
func (l *List[T]) FineGrained() bool {
	return l.fineGrained
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return l.items[index], nil
}

// Set replaces the element at index, emitting a Replace event carrying the
// previous and new values.
func (l *List[T]) Set(index int, item T) error {
	if index < 0 || index >= len(l.items) {
		return ErrIndexOutOfRange
	}
	old := l.items[index]
	l.items[index] = item
	l.PublishMutation(false, change.NewReplace(index, old, item))
	return nil
}

// Append adds item at the end, emitting an Add event at the new last index.
func (l *List[T]) Append(item T) {
	l.items = append(l.items, item)
	l.PublishMutation(true, change.NewAddAt(len(l.items)-1, item))
}

// AddRange appends all items. Under the default coarse policy a non-empty
// batch emits a single Reset; under WithFineGrained it emits one Add per
// item, all after the batch is fully applied. An empty batch emits nothing.
func (l *List[T]) AddRange(items []T) {
	if len(items) == 0 {
		return
	}
	start := len(l.items)
	l.items = append(l.items, items...)

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

// Insert places item at index, shifting later elements right. Index may
// equal Len, which appends.
func (l *List[T]) Insert(index int, item T) error {
	if index < 0 || index > len(l.items) {
		return ErrIndexOutOfRange
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = item
	l.PublishMutation(true, change.NewAddAt(index, item))
	return nil
}

// Remove deletes the first element structurally equal to item. It returns
// false, and emits nothing, when no match exists.
func (l *List[T]) Remove(item T) bool {
	idx := l.IndexOf(item)
	if idx < 0 {
		return false
	}
	l.removeAt(idx)
	return true
}

// RemoveAt deletes the element at index.
func (l *List[T]) RemoveAt(index int) error {
	if index < 0 || index >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.removeAt(index)
	return nil
}

func (l *List[T]) removeAt(index int) {
	removed := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.PublishMutation(true, change.NewRemoveAt(index, removed))
}

// Move relocates the element at oldIndex to newIndex. Equal indices are a
// no-op with no event. Both indices are checked against the current length
// before anything is touched.
func (l *List[T]) Move(oldIndex, newIndex int) error {
	if oldIndex < 0 || oldIndex >= len(l.items) || newIndex < 0 || newIndex >= len(l.items) {
		return ErrIndexOutOfRange
	}
	if oldIndex == newIndex {
		return nil
	}
	item := l.items[oldIndex]
	if oldIndex < newIndex {
		copy(l.items[oldIndex:], l.items[oldIndex+1:newIndex+1])
	} else {
		copy(l.items[newIndex+1:], l.items[newIndex:oldIndex])
	}
	l.items[newIndex] = item
	l.PublishMutation(false, change.NewMove(item, oldIndex, newIndex))
	return nil
}

// Clear removes all elements, emitting a single Reset. Clearing an empty
// list emits nothing.
func (l *List[T]) Clear() {
	if len(l.items) == 0 {
		return
	}
	l.items = l.items[:0]
	l.PublishMutation(true, change.NewReset[T]())
}

// Contains reports whether any element is structurally equal to item.
func (l *List[T]) Contains(item T) bool {
	return l.IndexOf(item) >= 0
}

// IndexOf returns the index of the first element structurally equal to
// item, or -1.
func (l *List[T]) IndexOf(item T) int {
	for i, existing := range l.items {
		if l.itemEquals(existing, item) {
			return i
		}
	}
	return -1
}

// Snapshot returns a copy of the current contents.
func (l *List[T]) Snapshot() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// All iterates the live backing storage in index order. The list must not
// be mutated during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
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
