package concurrent

import "github.com/vireo-dev/vireo/pkg/change"

// RangeList is a thread-safe List fixed to coarse batching, with
// batch-replace semantics matching collections.RangeList.
type RangeList[T any] struct {
	List[T]
}

// NewRangeList creates an empty RangeList.
func NewRangeList[T any]() *RangeList[T] {
	return &RangeList[T]{}
}

// NewRangeListOf creates a RangeList seeded with a copy of items. No events
// are emitted for the initial contents.
func NewRangeListOf[T any](items []T) *RangeList[T] {
	l := NewRangeList[T]()
	l.items = append(l.items, items...)
	return l
}

// ReplaceRange swaps the entire contents for items in one critical section
// and emits one Reset. Replacing an empty list with an empty batch emits
// nothing.
func (l *RangeList[T]) ReplaceRange(items []T) {
	l.mu.Lock()
	if len(l.items) == 0 && len(items) == 0 {
		l.mu.Unlock()
		return
	}
	sizeChanged := len(l.items) != len(items)
	l.items = l.items[:0]
	l.items = append(l.items, items...)
	l.mu.Unlock()

	l.PublishMutation(sizeChanged, change.NewReset[T]())
}
