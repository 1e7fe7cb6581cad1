package change

import (
	"sync"
	"sync/atomic"
)

// globalSubID is the source of unique IDs for all subscriptions.
// Atomic increments keep ID generation lock-free.
var globalSubID uint64

func nextSubID() uint64 {
	return atomic.AddUint64(&globalSubID, 1)
}

// Subscription represents one registered handler on a Hub.
// Cancel is idempotent and safe to call from any goroutine.
type Subscription struct {
	id       uint64
	cancel   func(id uint64)
	canceled atomic.Bool
}

// Cancel removes the handler from its hub. Subsequent notifications are
// not delivered. Calling Cancel more than once is a no-op.
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	if s.canceled.CompareAndSwap(false, true) {
		s.cancel(s.id)
	}
}

type handler[E any] struct {
	id uint64
	fn func(E)
}

// Hub is a synchronous multi-subscriber fan-out channel for events of
// type E. The zero value is ready to use.
//
// Notify copies the subscriber list under a read lock before invoking
// handlers, so handlers run without any hub lock held and may subscribe
// or cancel from within a notification.
type Hub[E any] struct {
	mu       sync.RWMutex
	handlers []handler[E]
}

// Subscribe registers fn to receive every subsequent event. A nil fn
// returns a subscription that does nothing.
func (h *Hub[E]) Subscribe(fn func(E)) *Subscription {
	sub := &Subscription{id: nextSubID(), cancel: h.remove}
	if fn == nil {
		sub.canceled.Store(true)
		return sub
	}

	h.mu.Lock()
	h.handlers = append(h.handlers, handler[E]{id: sub.id, fn: fn})
	h.mu.Unlock()
	return sub
}

// Notify delivers event to every current subscriber, in subscription
// order, on the calling goroutine.
func (h *Hub[E]) Notify(event E) {
	h.mu.RLock()
	if len(h.handlers) == 0 {
		h.mu.RUnlock()
		return
	}
	handlers := make([]handler[E], len(h.handlers))
	copy(handlers, h.handlers)
	h.mu.RUnlock()

	for _, hd := range handlers {
		hd.fn(event)
	}
}

// Len returns the number of active subscriptions.
func (h *Hub[E]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.handlers)
}

func (h *Hub[E]) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, hd := range h.handlers {
		if hd.id == id {
			h.handlers = append(h.handlers[:i], h.handlers[i+1:]...)
			return
		}
	}
}
