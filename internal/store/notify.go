// ABOUTME: Change hub invoking live-query observers on every write.
// ABOUTME: Callbacks run synchronously under the hub lock, in write order.
package store

import (
	"sync"

	"github.com/google/uuid"
)

// Hub invokes each observer's callback once per broadcast. Callbacks run
// on the broadcaster's goroutine under the hub lock, so an observer sees
// one notification per write, in commit order, with no coalescing. A
// notification carries no payload; observers re-run their query against
// the store.
type Hub struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]func()
	done   chan struct{}
	closed bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[uuid.UUID]func()),
		done: make(chan struct{}),
	}
}

// Subscribe registers notify and invokes it once before returning so the
// observer starts from current state. The returned channel closes when
// the hub shuts down; release removes the registration. notify must not
// call back into the hub. Subscribing to a closed hub registers nothing
// and returns the already-closed channel.
func (h *Hub) Subscribe(notify func()) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return h.done, func() {}
	}

	id := uuid.New()
	h.subs[id] = notify
	notify()

	return h.done, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

// Broadcast invokes every observer callback on the caller's goroutine.
// The caller pays the observers' refresh cost; that is what pins each
// notification to the write that caused it.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, notify := range h.subs {
		notify()
	}
}

// Close shuts down the hub: observers see their done channel close and
// later broadcasts reach no one. Safe to call more than once.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	h.subs = nil
	close(h.done)
}
