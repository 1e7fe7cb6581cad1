package collections

import (
	"maps"
	"slices"
	"testing"
)

func TestToList(t *testing.T) {
	l := ToList(slices.Values([]int{1, 2, 3}))
	if l.Len() != 3 {
		t.Fatalf("expected Len 3, got %d", l.Len())
	}
	if v, _ := l.Get(1); v != 2 {
		t.Errorf("expected 2 at index 1, got %d", v)
	}
}

func TestToRangeList(t *testing.T) {
	l := ToRangeList(slices.Values([]string{"a", "b"}))
	if l.Len() != 2 {
		t.Errorf("expected Len 2, got %d", l.Len())
	}
}

func TestToMap(t *testing.T) {
	src := map[string]int{"a": 1, "b": 2}
	m := ToMap(maps.All(src))
	if m.Len() != 2 {
		t.Fatalf("expected Len 2, got %d", m.Len())
	}
	if v, ok := m.Get("b"); !ok || v != 2 {
		t.Errorf("expected b=2, got %d (%v)", v, ok)
	}
}

func TestToSet(t *testing.T) {
	s := ToSet(slices.Values([]int{1, 1, 2}))
	if s.Len() != 2 {
		t.Errorf("expected duplicates dropped, Len = %d", s.Len())
	}
}

func TestToQueueToStack(t *testing.T) {
	q := ToQueue(slices.Values([]int{1, 2}))
	if v, _ := q.Peek(); v != 1 {
		t.Errorf("queue front: expected 1, got %d", v)
	}

	s := ToStack(slices.Values([]int{1, 2}))
	if v, _ := s.Peek(); v != 2 {
		t.Errorf("stack top: expected 2, got %d", v)
	}
}

func TestConversionEmitsNoEvents(t *testing.T) {
	// Seeding a container from a sequence is construction, not mutation.
	l := ToList(slices.Values([]int{1, 2}))
	rec := newRecorder[int]()
	l.OnCollectionChanged(rec.onChange)
	if len(rec.changes) != 0 {
		t.Errorf("construction must not emit, got %v", rec.kinds())
	}
}
