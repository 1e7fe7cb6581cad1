package view

import (
	"errors"
	"iter"
	"sort"
	"sync/atomic"

	"github.com/vireo-dev/vireo/internal/eq"
	"github.com/vireo-dev/vireo/pkg/change"
)

// ErrNilPredicate is returned by AttachFilter when the predicate is nil.
var ErrNilPredicate = errors.New("view: nil predicate")

// ErrNilComparison is returned by AttachSortFunc when the comparison is nil.
var ErrNilComparison = errors.New("view: nil comparison")

// ErrNilSource is returned by the constructors when the source is nil.
var ErrNilSource = errors.New("view: nil source")

// ErrNilProjection is returned by NewProjected when the projection is nil.
var ErrNilProjection = errors.New("view: nil projection")

// ErrNoDefaultOrder is returned by AttachSort when the view's result type
// has no default ordering; use AttachSortFunc instead.
var ErrNoDefaultOrder = errors.New("view: element type has no default order")

// Source is the contract a container must satisfy to back a View: a change
// channel to subscribe to and a point-in-time copy to rebuild from. All
// containers in the collections and concurrent packages satisfy it.
type Source[T any] interface {
	OnCollectionChanged(fn func(change.Change[T])) *change.Subscription
	Snapshot() []T
}

// View is a filtered, projected, optionally sorted materialized copy of a
// source container, rebuilt in full on every source mutation.
//
// A View is not safe for concurrent use; the source's own concurrency
// discipline (or single-threaded use) must prevent concurrent source
// mutation during a rebuild.
type View[S, R any] struct {
	change.Notifier[R]

	source  Source[S]
	project func(S) R
	filter  func(S) bool
	compare func(R, R) int

	items    []R
	sub      *change.Subscription
	disposed atomic.Bool
}

// New creates an identity view over source and materializes it immediately.
// No Reset is emitted for the initial build.
func New[S any](source Source[S]) (*View[S, S], error) {
	return newView(source, func(s S) S { return s })
}

// NewProjected creates a view over source that converts each element with
// project, and materializes it immediately.
func NewProjected[S, R any](source Source[S], project func(S) R) (*View[S, R], error) {
	if project == nil {
		return nil, ErrNilProjection
	}
	return newView(source, project)
}

func newView[S, R any](source Source[S], project func(S) R) (*View[S, R], error) {
	if source == nil {
		return nil, ErrNilSource
	}
	v := &View[S, R]{source: source, project: project}
	v.rebuild(false)
	v.sub = source.OnCollectionChanged(func(change.Change[S]) {
		v.rebuild(true)
	})
	return v, nil
}

// Len returns the number of materialized elements.
func (v *View[S, R]) Len() int {
	return len(v.items)
}

// Items returns a copy of the materialized contents.
func (v *View[S, R]) Items() []R {
	out := make([]R, len(v.items))
	copy(out, v.items)
	return out
}

// Get returns the materialized element at index.
func (v *View[S, R]) Get(index int) (R, bool) {
	if index < 0 || index >= len(v.items) {
		var zero R
		return zero, false
	}
	return v.items[index], true
}

// All iterates the materialized contents in view order.
func (v *View[S, R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, item := range v.items {
			if !yield(item) {
				return
			}
		}
	}
}

// AttachFilter stores predicate and rebuilds. The predicate applies to
// source-typed elements, before projection, and persists across all
// subsequent rebuilds until ResetFilter.
func (v *View[S, R]) AttachFilter(predicate func(S) bool) error {
	if predicate == nil {
		return ErrNilPredicate
	}
	v.filter = predicate
	v.rebuild(true)
	return nil
}

// ResetFilter clears the predicate and rebuilds unfiltered.
func (v *View[S, R]) ResetFilter() {
	v.filter = nil
	v.rebuild(true)
}

// AttachSort sorts the view by the result type's default order and keeps
// that order across subsequent rebuilds. It fails with ErrNoDefaultOrder
// when R is not one of the built-in ordered kinds.
func (v *View[S, R]) AttachSort() error {
	if !eq.Orderable[R]() {
		return ErrNoDefaultOrder
	}
	return v.AttachSortFunc(func(a, b R) int {
		c, _ := eq.Compare(a, b)
		return c
	})
}

// AttachSortFunc sorts the view with cmp (negative when a orders before b)
// and keeps that order across subsequent rebuilds. The current materialized
// contents are sorted immediately; the sort is stable.
func (v *View[S, R]) AttachSortFunc(cmp func(a, b R) int) error {
	if cmp == nil {
		return ErrNilComparison
	}
	v.compare = cmp
	sort.SliceStable(v.items, func(i, j int) bool {
		return cmp(v.items[i], v.items[j]) < 0
	})
	v.notifyReset()
	return nil
}

// ResetSort clears the stored comparison and rebuilds, restoring source
// order with the filter still applied.
func (v *View[S, R]) ResetSort() {
	v.compare = nil
	v.rebuild(true)
}

// Refresh unconditionally rebuilds the materialized contents from the
// source and emits one Reset plus a Count property notification.
func (v *View[S, R]) Refresh() {
	v.rebuild(true)
}

// Dispose cancels the view's subscription to the source. It is idempotent
// and safe to call multiple times. After disposal the view stops reacting
// to source mutations; the materialized contents stay frozen at their last
// state.
func (v *View[S, R]) Dispose() {
	if !v.disposed.CompareAndSwap(false, true) {
		return
	}
	if v.sub != nil {
		v.sub.Cancel()
	}
}

// Disposed reports whether Dispose has been called.
func (v *View[S, R]) Disposed() bool {
	return v.disposed.Load()
}

// rebuild recomputes items as sort(filter(snapshot).map(project)).
func (v *View[S, R]) rebuild(notify bool) {
	if v.disposed.Load() {
		return
	}

	snapshot := v.source.Snapshot()
	items := make([]R, 0, len(snapshot))
	for _, s := range snapshot {
		if v.filter != nil && !v.filter(s) {
			continue
		}
		items = append(items, v.project(s))
	}
	if v.compare != nil {
		sort.SliceStable(items, func(i, j int) bool {
			return v.compare(items[i], items[j]) < 0
		})
	}
	v.items = items

	if notify {
		v.notifyReset()
	}
}

func (v *View[S, R]) notifyReset() {
	v.PublishProperty(change.Count)
	v.PublishProperty(change.Indexer)
	v.Publish(change.NewReset[R]())
}
