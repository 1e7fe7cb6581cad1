package concurrent

import (
	"iter"
	"sync"

	"github.com/vireo-dev/vireo/internal/eq"
	"github.com/vireo-dev/vireo/pkg/change"
	"github.com/vireo-dev/vireo/pkg/collections"
)

// Queue is a thread-safe FIFO container with the same contract as
// collections.Queue.
type Queue[T any] struct {
	change.Notifier[T]

	mu          sync.Mutex
	items       []T
	head        int
	fineGrained bool
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

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Enqueue adds item at the back, emitting Add at the tail index as of the
// mutation.
func (q *Queue[T]) Enqueue(item T) {
	q.mu.Lock()
	q.items = append(q.items, item)
	index := len(q.items) - q.head - 1
	q.mu.Unlock()

	q.PublishMutation(true, change.NewAddAt(index, item))
}

// EnqueueAll adds all items in one critical section, under the container's
// batch policy.
func (q *Queue[T]) EnqueueAll(items []T) {
	if len(items) == 0 {
		return
	}
	q.mu.Lock()
	start := len(q.items) - q.head
	q.items = append(q.items, items...)
	q.mu.Unlock()

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

// Dequeue removes and returns the front element, emitting Remove at index
// 0. It fails with collections.ErrEmpty on an empty queue.
func (q *Queue[T]) Dequeue() (T, error) {
	q.mu.Lock()
	if len(q.items)-q.head == 0 {
		q.mu.Unlock()
		var zero T
		return zero, collections.ErrEmpty
	}
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	q.compactLocked()
	q.mu.Unlock()

	q.PublishMutation(true, change.NewRemoveAt(0, item))
	return item, nil
}

// Peek returns the front element without removing it. No event is emitted.
func (q *Queue[T]) Peek() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items)-q.head == 0 {
		var zero T
		return zero, collections.ErrEmpty
	}
	return q.items[q.head], nil
}

// Clear removes all elements, emitting a single Reset when the queue was
// non-empty.
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	if len(q.items)-q.head == 0 {
		q.mu.Unlock()
		return
	}
	q.items = nil
	q.head = 0
	q.mu.Unlock()

	q.PublishMutation(true, change.NewReset[T]())
}

// Contains reports whether any queued element is structurally equal to item.
func (q *Queue[T]) Contains(item T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, existing := range q.items[q.head:] {
		if eq.Equal(existing, item) {
			return true
		}
	}
	return false
}

// Snapshot returns a point-in-time copy of the contents, front first.
func (q *Queue[T]) Snapshot() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]T, len(q.items)-q.head)
	copy(out, q.items[q.head:])
	return out
}

// All iterates a point-in-time snapshot, never the live storage.
func (q *Queue[T]) All() iter.Seq[T] {
	snapshot := q.Snapshot()
	return func(yield func(T) bool) {
		for _, item := range snapshot {
			if !yield(item) {
				return
			}
		}
	}
}

func (q *Queue[T]) compactLocked() {
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
