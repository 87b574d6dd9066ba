// ABOUTME: Value is an always-has-a-value container for screen state.
// ABOUTME: Seeded with an explicit default; watchers get the current value first.
package live

import (
	"context"
	"sync"
)

// Value holds the latest value of type T and notifies watchers on change.
// Unlike Feed, a Value always has a value: it is seeded with an explicit
// default at construction so readers never observe an absent state.
type Value[T any] struct {
	mu       sync.RWMutex
	current  T
	watchers map[int]chan T
	nextID   int
}

// NewValue creates a Value seeded with the given default.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		current:  initial,
		watchers: make(map[int]chan T),
	}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set replaces the current value and notifies watchers. Watchers that
// have not consumed the previous notification see only the newest value.
func (v *Value[T]) Set(x T) {
	v.mu.Lock()
	v.current = x
	for _, ch := range v.watchers {
		offer(ch, x)
	}
	v.mu.Unlock()
}

// Update applies fn to the current value under the lock and stores the
// result, notifying watchers. Used for read-modify-write state merges.
func (v *Value[T]) Update(fn func(T) T) {
	v.mu.Lock()
	v.current = fn(v.current)
	for _, ch := range v.watchers {
		offer(ch, v.current)
	}
	v.mu.Unlock()
}

// Watch returns a channel that delivers the current value immediately and
// every subsequent change. The channel coalesces when the watcher lags and
// closes when ctx is cancelled.
func (v *Value[T]) Watch(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.watchers[id] = ch
	ch <- v.current
	v.mu.Unlock()

	go func() {
		<-ctx.Done()
		v.mu.Lock()
		delete(v.watchers, id)
		v.mu.Unlock()
		close(ch)
	}()

	return ch
}

// offer delivers x on a capacity-one channel, displacing a stale value
// when the watcher has not caught up.
func offer[T any](ch chan T, x T) {
	for {
		select {
		case ch <- x:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
