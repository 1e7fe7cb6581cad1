package collections

import (
	"slices"
	"testing"

	"github.com/vireo-dev/vireo/pkg/change"
)

func TestSetAddIdempotent(t *testing.T) {
	s := NewSet[string]()
	rec := newRecorder[string]()
	s.OnCollectionChanged(rec.onChange)

	if !s.Add("a") {
		t.Error("expected true adding new element")
	}
	if len(rec.changes) != 1 || rec.changes[0].Kind != change.KindAdd {
		t.Fatalf("expected one Add, got %v", rec.kinds())
	}

	rec.reset()
	if s.Add("a") {
		t.Error("expected false adding present element")
	}
	if len(rec.changes) != 0 {
		t.Errorf("duplicate add must emit nothing, got %v", rec.kinds())
	}
}

func TestSetRemove(t *testing.T) {
	s := NewSetOf([]string{"a", "b"})
	rec := newRecorder[string]()
	s.OnCollectionChanged(rec.onChange)

	if s.Remove("z") {
		t.Error("expected false removing absent element")
	}
	if len(rec.changes) != 0 {
		t.Errorf("absent removal must emit nothing, got %v", rec.kinds())
	}
	if !s.Remove("a") {
		t.Error("expected true removing present element")
	}
	if rec.changes[0].Kind != change.KindRemove || rec.changes[0].Items[0] != "a" {
		t.Errorf("unexpected remove event: %+v", rec.changes[0])
	}
}

func TestSetUnionWith(t *testing.T) {
	s := NewSetOf([]int{1, 2})
	rec := newRecorder[int]()
	s.OnCollectionChanged(rec.onChange)

	s.UnionWith(slices.Values([]int{2, 3, 4}))

	if s.Len() != 4 {
		t.Errorf("expected Len 4, got %d", s.Len())
	}
	if len(rec.changes) != 1 || rec.changes[0].Kind != change.KindReset {
		t.Fatalf("expected one Reset, got %v", rec.kinds())
	}

	// Union with a subset changes nothing and emits nothing.
	rec.reset()
	s.UnionWith(slices.Values([]int{1, 2}))
	if len(rec.changes) != 0 {
		t.Errorf("no-op union must emit nothing, got %v", rec.kinds())
	}
}

func TestSetIntersectWith(t *testing.T) {
	s := NewSetOf([]int{1, 2, 3})
	rec := newRecorder[int]()
	s.OnCollectionChanged(rec.onChange)

	s.IntersectWith(slices.Values([]int{2, 3, 9}))

	if s.Len() != 2 || !s.Contains(2) || !s.Contains(3) {
		t.Errorf("unexpected contents: %v", s.Snapshot())
	}
	if len(rec.changes) != 1 || rec.changes[0].Kind != change.KindReset {
		t.Errorf("expected one Reset, got %v", rec.kinds())
	}
}

func TestSetExceptWith(t *testing.T) {
	s := NewSetOf([]int{1, 2, 3})
	rec := newRecorder[int]()
	s.OnCollectionChanged(rec.onChange)

	s.ExceptWith(slices.Values([]int{2, 9}))
	if s.Len() != 2 || s.Contains(2) {
		t.Errorf("unexpected contents: %v", s.Snapshot())
	}
	if len(rec.changes) != 1 || rec.changes[0].Kind != change.KindReset {
		t.Errorf("expected one Reset, got %v", rec.kinds())
	}

	rec.reset()
	s.ExceptWith(slices.Values([]int{42}))
	if len(rec.changes) != 0 {
		t.Errorf("no-op except must emit nothing, got %v", rec.kinds())
	}
}

func TestSetSymmetricExceptWith(t *testing.T) {
	s := NewSetOf([]int{1, 2})

	s.SymmetricExceptWith(slices.Values([]int{2, 3, 3}))

	if s.Len() != 2 || !s.Contains(1) || !s.Contains(3) || s.Contains(2) {
		t.Errorf("unexpected contents: %v", s.Snapshot())
	}
}

func TestSetPredicates(t *testing.T) {
	s := NewSetOf([]int{1, 2})

	if !s.IsSubsetOf(slices.Values([]int{1, 2, 3})) {
		t.Error("expected subset")
	}
	if s.IsSubsetOf(slices.Values([]int{1})) {
		t.Error("expected not subset")
	}
	if !s.IsSupersetOf(slices.Values([]int{1})) {
		t.Error("expected superset")
	}
	if s.IsSupersetOf(slices.Values([]int{1, 9})) {
		t.Error("expected not superset")
	}
	if !s.Overlaps(slices.Values([]int{2, 9})) {
		t.Error("expected overlap")
	}
	if s.Overlaps(slices.Values([]int{8, 9})) {
		t.Error("expected no overlap")
	}
	if !s.SetEquals(slices.Values([]int{2, 1, 2})) {
		t.Error("expected set equality")
	}
	if s.SetEquals(slices.Values([]int{1})) {
		t.Error("expected set inequality")
	}

	empty := NewSet[int]()
	if !empty.IsSubsetOf(slices.Values([]int{})) {
		t.Error("empty set is a subset of anything")
	}
}
