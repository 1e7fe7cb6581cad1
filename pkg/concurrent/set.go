package concurrent

import (
	"iter"
	"sync"

	"github.com/vireo-dev/vireo/pkg/change"
)

// Set is a thread-safe hash set with the same contract as collections.Set.
type Set[T comparable] struct {
	change.Notifier[T]

	mu      sync.Mutex
	members map[T]struct{}
}

// NewSet creates an empty Set.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{members: make(map[T]struct{})}
}

// NewSetOf creates a Set seeded with items, dropping duplicates. No events
// are emitted for the initial contents.
func NewSetOf[T comparable](items []T) *Set[T] {
	s := NewSet[T]()
	for _, item := range items {
		s.members[item] = struct{}{}
	}
	return s
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.members)
}

// Contains reports whether item is a member.
func (s *Set[T]) Contains(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.members[item]
	return ok
}

// Add inserts item, returning false without any event when it is already
// present. The presence check and insert share one critical section.
func (s *Set[T]) Add(item T) bool {
	s.mu.Lock()
	if _, exists := s.members[item]; exists {
		s.mu.Unlock()
		return false
	}
	s.members[item] = struct{}{}
	s.mu.Unlock()

	s.PublishMutation(true, change.NewAdd(item))
	return true
}

// Remove deletes item, returning false without any event when it is absent.
func (s *Set[T]) Remove(item T) bool {
	s.mu.Lock()
	if _, exists := s.members[item]; !exists {
		s.mu.Unlock()
		return false
	}
	delete(s.members, item)
	s.mu.Unlock()

	s.PublishMutation(true, change.NewRemove(item))
	return true
}

// Clear removes all members, emitting a single Reset when the set was
// non-empty.
func (s *Set[T]) Clear() {
	s.mu.Lock()
	if len(s.members) == 0 {
		s.mu.Unlock()
		return
	}
	clear(s.members)
	s.mu.Unlock()

	s.PublishMutation(true, change.NewReset[T]())
}

// UnionWith adds every element of other in one critical section. One Reset
// is emitted when the set grew, nothing otherwise.
func (s *Set[T]) UnionWith(other iter.Seq[T]) {
	s.mu.Lock()
	changed := false
	for item := range other {
		if _, exists := s.members[item]; !exists {
			s.members[item] = struct{}{}
			changed = true
		}
	}
	s.mu.Unlock()

	if changed {
		s.PublishMutation(true, change.NewReset[T]())
	}
}

// IntersectWith removes every member not present in other, in one critical
// section. One Reset is emitted when the set shrank, nothing otherwise.
func (s *Set[T]) IntersectWith(other iter.Seq[T]) {
	s.mu.Lock()
	keep := make(map[T]struct{})
	for item := range other {
		if _, exists := s.members[item]; exists {
			keep[item] = struct{}{}
		}
	}
	changed := len(keep) != len(s.members)
	s.members = keep
	s.mu.Unlock()

	if changed {
		s.PublishMutation(true, change.NewReset[T]())
	}
}

// ExceptWith removes every element of other in one critical section. One
// Reset is emitted when the set shrank, nothing otherwise.
func (s *Set[T]) ExceptWith(other iter.Seq[T]) {
	s.mu.Lock()
	changed := false
	for item := range other {
		if _, exists := s.members[item]; exists {
			delete(s.members, item)
			changed = true
		}
	}
	s.mu.Unlock()

	if changed {
		s.PublishMutation(true, change.NewReset[T]())
	}
}

// SymmetricExceptWith toggles membership of every distinct element of other,
// in one critical section. One Reset is emitted when the set changed,
// nothing otherwise.
func (s *Set[T]) SymmetricExceptWith(other iter.Seq[T]) {
	s.mu.Lock()
	changed := false
	seen := make(map[T]struct{})
	for item := range other {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		if _, exists := s.members[item]; exists {
			delete(s.members, item)
		} else {
			s.members[item] = struct{}{}
		}
		changed = true
	}
	s.mu.Unlock()

	if changed {
		s.PublishMutation(true, change.NewReset[T]())
	}
}

// IsSubsetOf reports whether every member is contained in other. The check
// runs against a point-in-time snapshot of the members.
func (s *Set[T]) IsSubsetOf(other iter.Seq[T]) bool {
	members := s.memberSet()
	found := make(map[T]struct{}, len(members))
	for item := range other {
		if _, exists := members[item]; exists {
			found[item] = struct{}{}
			if len(found) == len(members) {
				return true
			}
		}
	}
	return len(members) == 0
}

// IsSupersetOf reports whether the set contains every element of other.
func (s *Set[T]) IsSupersetOf(other iter.Seq[T]) bool {
	members := s.memberSet()
	for item := range other {
		if _, exists := members[item]; !exists {
			return false
		}
	}
	return true
}

// Overlaps reports whether the set shares at least one element with other.
func (s *Set[T]) Overlaps(other iter.Seq[T]) bool {
	members := s.memberSet()
	for item := range other {
		if _, exists := members[item]; exists {
			return true
		}
	}
	return false
}

// SetEquals reports whether the set contains exactly the distinct elements
// of other.
func (s *Set[T]) SetEquals(other iter.Seq[T]) bool {
	members := s.memberSet()
	seen := make(map[T]struct{})
	for item := range other {
		if _, exists := members[item]; !exists {
			return false
		}
		seen[item] = struct{}{}
	}
	return len(seen) == len(members)
}

func (s *Set[T]) memberSet() map[T]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[T]struct{}, len(s.members))
	for item := range s.members {
		out[item] = struct{}{}
	}
	return out
}

// Snapshot returns a point-in-time copy of the members in unspecified
// order.
func (s *Set[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, 0, len(s.members))
	for item := range s.members {
		out = append(out, item)
	}
	return out
}

// All iterates a point-in-time snapshot, never the live storage.
func (s *Set[T]) All() iter.Seq[T] {
	snapshot := s.Snapshot()
	return func(yield func(T) bool) {
		for _, item := range snapshot {
			if !yield(item) {
				return
			}
		}
	}
}
