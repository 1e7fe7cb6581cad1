// Package collections provides mutable containers that broadcast structured
// change notifications to observers.
//
// Six container shapes are provided: List (dynamic array), RangeList (array
// with batch-replace semantics), Map, Set, Queue, and Stack. Each wraps a
// backing primitive exclusively, mutates it in place, then emits a
// change.Change describing the mutation plus property notifications for
// Count and the indexer.
//
// # Batch policy
//
// Multi-item operations (AddRange, EnqueueAll, PushAll) follow the
// container's batch policy. List, Queue, and Stack default to coarse
// batching: a bulk operation applies every item and then emits a single
// Reset. Constructing them with WithFineGrained switches to one Add event
// per item. RangeList is fixed to coarse batching; its ReplaceRange swaps
// the entire contents for one Reset. The policy is set at construction and
// never changes afterwards.
//
// # Concurrency
//
// These containers are not safe for concurrent mutation. Use a single
// writer, external synchronization, or the concurrent package.
package collections
