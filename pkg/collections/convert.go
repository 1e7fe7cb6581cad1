package collections

import "iter"

// ToList collects seq into a new List. No events are emitted for the
// initial contents.
func ToList[T any](seq iter.Seq[T], opts ...Option) *List[T] {
	l := NewList[T](opts...)
	for item := range seq {
		l.items = append(l.items, item)
	}
	return l
}

// ToRangeList collects seq into a new RangeList.
func ToRangeList[T any](seq iter.Seq[T]) *RangeList[T] {
	l := NewRangeList[T]()
	for item := range seq {
		l.items = append(l.items, item)
	}
	return l
}

// ToMap collects seq into a new Map. Later entries overwrite earlier ones
// with the same key.
func ToMap[K comparable, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	for k, v := range seq {
		m.entries[k] = v
	}
	return m
}

// ToSet collects seq into a new Set, dropping duplicates.
func ToSet[T comparable](seq iter.Seq[T]) *Set[T] {
	s := NewSet[T]()
	for item := range seq {
		s.members[item] = struct{}{}
	}
	return s
}

// ToQueue collects seq into a new Queue; the first element of seq becomes
// the front.
func ToQueue[T any](seq iter.Seq[T], opts ...Option) *Queue[T] {
	q := NewQueue[T](opts...)
	for item := range seq {
		q.items = append(q.items, item)
	}
	return q
}

// ToStack collects seq into a new Stack; the last element of seq becomes
// the top.
func ToStack[T any](seq iter.Seq[T], opts ...Option) *Stack[T] {
	s := NewStack[T](opts...)
	for item := range seq {
		s.items = append(s.items, item)
	}
	return s
}
