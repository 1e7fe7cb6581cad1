package collections

import (
	"iter"

	"github.com/vireo-dev/vireo/internal/eq"
	"github.com/vireo-dev/vireo/pkg/change"
)

// Queue is a FIFO container that notifies observers about every mutation.
// Enqueue emits Add at the tail index; Dequeue emits Remove at index 0.
type Queue[T any] struct {
	change.Notifier[T]

	// items is a slice-backed deque; head marks the logical front.
	items []T
	head  int

	fineGrained bool
	equals      func(a, b T) bool
}

// NewQueue creates an empty Queue.
func NewQueue[T any](opts ...Option) *Queue[T] {
	s := applyOptions(opts)
	return &Queue[T]{fineGrained: s.fineGrained}
}

// NewQueueOf creates a Queue seeded with a copy of items, front first.
// No events are emitted for the initial contents.
func NewQueueOf[T any](items []T, opts ...Option) *Queue[T] {
	q := NewQueue[T](opts...)
	q.items = append(q.items, items...)
	return q
}

// WithEquals configures the structural equality used by Contains.
func (q *Queue[T]) WithEquals(fn func(a, b T) bool) *Queue[T] {
	q.equals = fn
	return q
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}

// Enqueue adds item at the back, emitting Add at the new tail index.
func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
	q.PublishMutation(true, change.NewAddAt(q.Len()-1, item))
}

// EnqueueAll adds all items at the back. Under the default coarse policy a
// non-empty batch emits a single Reset; under WithFineGrained it emits one
// Add per item, all after the batch is fully applied. An empty batch emits
// nothing.
func (q *Queue[T]) EnqueueAll(items []T) {
	if len(items) == 0 {
		return
	}
	start := q.Len()
	q.items = append(q.items, items...)

	if !q.fineGrained {
		q.PublishMutation(true, change.NewReset[T]())
		return
	}
	q.PublishProperty(change.Count)
	q.PublishProperty(change.Indexer)
	for i, item := range items {
		q.Publish(change.NewAddAt(start+i, item))
	}
}

// Dequeue removes and returns the front element, emitting Remove at index 0.
// It fails with ErrEmpty on an empty queue.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	q.compact()
	q.PublishMutation(true, change.NewRemoveAt(0, item))
	return item, nil
}

// Peek returns the front element without removing it. No event is emitted.
// It fails with ErrEmpty on an empty queue.
func (q *Queue[T]) Peek() (T, error) {
	if q.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.items[q.head], nil
}

// Clear removes all elements, emitting a single Reset. Clearing an empty
// queue emits nothing.
func (q *Queue[T]) Clear() {
	if q.Len() == 0 {
		return
	}
	q.items = nil
	q.head = 0
	q.PublishMutation(true, change.NewReset[T]())
}

// Contains reports whether any queued element is structurally equal to item.
func (q *Queue[T]) Contains(item T) bool {
	for _, existing := range q.items[q.head:] {
		if q.itemEquals(existing, item) {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current contents, front first.
func (q *Queue[T]) Snapshot() []T {
	out := make([]T, q.Len())
	copy(out, q.items[q.head:])
	return out
}

// All iterates the live backing storage from front to back. The queue must
// not be mutated during iteration.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range q.items[q.head:] {
			if !yield(item) {
				return
			}
		}
	}
}

// compact reclaims the dequeued prefix once it dominates the backing slice.
func (q *Queue[T]) compact() {
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
		return
	}
	if q.head > 32 && q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
}

func (q *Queue[T]) itemEquals(a, b T) bool {
	if q.equals != nil {
		return q.equals(a, b)
	}
	return eq.Equal(a, b)
}
