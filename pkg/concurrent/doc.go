// Package concurrent provides thread-safe counterparts of the containers in
// package collections, with the same method contracts and notification
// protocol.
//
// Every public method acquires the container's mutex for the duration of
// the storage mutation only. The change descriptor is decided inside the
// critical section (so Add-vs-Replace on Map is never mislabeled by a
// racing writer), then the mutex is released and notifications are
// delivered without holding it. A consequence, by contract: another
// goroutine may mutate the container between the unlock and delivery, so
// observers must tolerate notifications describing state that is already
// stale relative to current contents.
//
// Enumeration is snapshot-based: Snapshot and All copy the current elements
// under the mutex and iterate the copy, so iteration never observes a
// half-applied mutation and never blocks the container for its duration.
//
// The mutex makes each call atomic; it does not make compound sequences
// atomic. "Check Contains, then Add" remains racy across two calls.
package concurrent
