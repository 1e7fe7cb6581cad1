package collections

import (
	"iter"

	"github.com/vireo-dev/vireo/pkg/change"
)

// Set is a hash set that notifies observers about every mutation. Set
// semantics are idempotent: adding a present element or removing an absent
// one returns false and emits nothing.
//
// The algebraic in-place mutators (UnionWith, IntersectWith, ExceptWith,
// SymmetricExceptWith) are bulk operations: when they change the set they
// emit a single Reset rather than per-element events.
type Set[T comparable] struct {
	change.Notifier[T]

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
	return len(s.members)
}

// Contains reports whether item is a member.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.members[item]
	return ok
}

// Add inserts item, returning false without any event when it is already
// present.
func (s *Set[T]) Add(item T) bool {
	if _, exists := s.members[item]; exists {
		return false
	}
	s.members[item] = struct{}{}
	s.PublishMutation(true, change.NewAdd(item))
	return true
}

// Remove deletes item, returning false without any event when it is absent.
func (s *Set[T]) Remove(item T) bool {
	if _, exists := s.members[item]; !exists {
		return false
	}
	delete(s.members, item)
	s.PublishMutation(true, change.NewRemove(item))
	return true
}

// Clear removes all members, emitting a single Reset. Clearing an empty set
// emits nothing.
func (s *Set[T]) Clear() {
	if len(s.members) == 0 {
		return
	}
	clear(s.members)
	s.PublishMutation(true, change.NewReset[T]())
}

// UnionWith adds every element of other. One Reset is emitted when the set
// grew, nothing otherwise.
func (s *Set[T]) UnionWith(other iter.Seq[T]) {
	changed := false
	for item := range other {
		if _, exists := s.members[item]; !exists {
			s.members[item] = struct{}{}
			changed = true
		}
	}
	s.publishBulk(changed)
}

// IntersectWith removes every element not present in other. One Reset is
// emitted when the set shrank, nothing otherwise.
func (s *Set[T]) IntersectWith(other iter.Seq[T]) {
	keep := make(map[T]struct{})
	for item := range other {
		if _, exists := s.members[item]; exists {
			keep[item] = struct{}{}
		}
	}
	changed := len(keep) != len(s.members)
	s.members = keep
	s.publishBulk(changed)
}

// ExceptWith removes every element present in other. One Reset is emitted
// when the set shrank, nothing otherwise.
func (s *Set[T]) ExceptWith(other iter.Seq[T]) {
	changed := false
	for item := range other {
		if _, exists := s.members[item]; exists {
			delete(s.members, item)
			changed = true
		}
	}
	s.publishBulk(changed)
}

// SymmetricExceptWith toggles membership of every element of other. One
// Reset is emitted when the set changed, nothing otherwise.
func (s *Set[T]) SymmetricExceptWith(other iter.Seq[T]) {
	changed := false
	seen := make(map[T]struct{})
	for item := range other {
		// A sequence may repeat an element; toggle it once.
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
	s.publishBulk(changed)
}

func (s *Set[T]) publishBulk(changed bool) {
	if !changed {
		return
	}
	s.PublishMutation(true, change.NewReset[T]())
}

// IsSubsetOf reports whether every member is contained in other.
func (s *Set[T]) IsSubsetOf(other iter.Seq[T]) bool {
	found := make(map[T]struct{}, len(s.members))
	for item := range other {
		if _, exists := s.members[item]; exists {
			found[item] = struct{}{}
			if len(found) == len(s.members) {
				return true
			}
		}
	}
	return len(s.members) == 0
}

// IsSupersetOf reports whether the set contains every element of other.
func (s *Set[T]) IsSupersetOf(other iter.Seq[T]) bool {
	for item := range other {
		if _, exists := s.members[item]; !exists {
			return false
		}
	}
	return true
}

// Overlaps reports whether the set shares at least one element with other.
func (s *Set[T]) Overlaps(other iter.Seq[T]) bool {
	for item := range other {
		if _, exists := s.members[item]; exists {
			return true
		}
	}
	return false
}

// SetEquals reports whether the set contains exactly the distinct elements
// of other.
func (s *Set[T]) SetEquals(other iter.Seq[T]) bool {
	seen := make(map[T]struct{})
	for item := range other {
		if _, exists := s.members[item]; !exists {
			return false
		}
		seen[item] = struct{}{}
	}
	return len(seen) == len(s.members)
}

// Snapshot returns a copy of the current members in unspecified order.
func (s *Set[T]) Snapshot() []T {
	out := make([]T, 0, len(s.members))
	for item := range s.members {
		out = append(out, item)
	}
	return out
}

// All iterates the live backing storage. The set must not be mutated during
// iteration.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range s.members {
			if !yield(item) {
				return
			}
		}
	}
}
