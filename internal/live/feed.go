// ABOUTME: Feed is a single-consumer stream of query snapshots.
// ABOUTME: Sources push one notification per change; nothing is skipped.
package live

import (
	"context"
	"log/slog"
	"sync"
)

// Source notifies observers that the data behind a feed changed. Subscribe
// registers notify, invokes it once synchronously so the observer starts
// from current state, and invokes it again once per subsequent change, in
// change order. Implementations must serialize notify calls. The returned
// channel closes when the source shuts down; release removes the
// registration.
type Source interface {
	Subscribe(notify func()) (done <-chan struct{}, release func())
}

// Feed delivers an initial snapshot immediately after creation and one
// fresh snapshot per source change, even when the content is unchanged.
// Snapshots are fetched at notification time and queued per feed, so a
// consumer sees the state behind every individual change: a lagging
// consumer reads the backlog in order, never a collapsed summary of it.
// A feed supports a single consumer, which must either keep reading
// Updates or call Close.
type Feed[T any] struct {
	updates chan T
	fetch   func(context.Context) (T, error)
	logger  *slog.Logger

	mu        sync.Mutex
	queue     []T
	latest    T
	hasLatest bool

	wake chan struct{}

	stop      func()
	done      chan struct{}
	closeOnce sync.Once
}

// NewFeed starts a feed over fetch, refreshing whenever src notifies.
// The feed stops when ctx is cancelled or Close is called.
func NewFeed[T any](ctx context.Context, src Source, fetch func(context.Context) (T, error)) *Feed[T] {
	ctx, cancel := context.WithCancel(ctx)
	f := &Feed[T]{
		updates: make(chan T, 1),
		fetch:   fetch,
		logger:  slog.Default(),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	srcDone, release := src.Subscribe(func() { f.refresh(ctx) })
	f.stop = func() {
		release()
		cancel()
	}
	go f.deliver(ctx, srcDone)
	return f
}

// refresh fetches a snapshot and queues it for delivery. It runs on the
// notifying goroutine, so the snapshot reflects the exact state behind the
// notification. A failed fetch queues nothing and keeps the previous
// snapshot in place; live readers are not a failure surface.
func (f *Feed[T]) refresh(ctx context.Context) {
	snapshot, err := f.fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			f.logger.Warn("live refresh failed", "error", err)
		}
		return
	}
	f.enqueue(snapshot)
}

// enqueue appends a snapshot to the pending backlog and wakes delivery.
func (f *Feed[T]) enqueue(snapshot T) {
	f.mu.Lock()
	f.queue = append(f.queue, snapshot)
	f.latest = snapshot
	f.hasLatest = true
	f.mu.Unlock()

	select {
	case f.wake <- struct{}{}:
	default:
	}
}

// pop removes the oldest queued snapshot, if any.
func (f *Feed[T]) pop() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queue) == 0 {
		var zero T
		return zero, false
	}
	snapshot := f.queue[0]
	f.queue = f.queue[1:]
	return snapshot, true
}

// deliver hands queued snapshots to the consumer in order. When the
// backlog is empty and the source has shut down, the consumer channel
// closes; queued snapshots are always drained first.
func (f *Feed[T]) deliver(ctx context.Context, srcDone <-chan struct{}) {
	defer close(f.done)
	defer close(f.updates)
	for {
		snapshot, ok := f.pop()
		if !ok {
			select {
			case <-ctx.Done():
				return
			case <-srcDone:
				return
			case <-f.wake:
				continue
			}
		}
		select {
		case f.updates <- snapshot:
		case <-ctx.Done():
			return
		}
	}
}

// Updates returns the consumer channel. It closes when the feed stops.
// A feed supports a single consumer.
func (f *Feed[T]) Updates() <-chan T {
	return f.updates
}

// Latest returns the most recent snapshot, if any has been produced yet.
func (f *Feed[T]) Latest() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, f.hasLatest
}

// Close stops the feed, releases its subscription, and waits for the
// delivery goroutine to exit. Safe to call more than once.
func (f *Feed[T]) Close() {
	f.closeOnce.Do(func() {
		f.stop()
		<-f.done
	})
}

// Map derives a feed whose snapshots are transformed by fn. The source
// feed's consumer channel is taken over by the mapping; closing the
// derived feed closes the source. Every source snapshot maps to exactly
// one derived snapshot.
func Map[T, U any](src *Feed[T], fn func(T) U) *Feed[U] {
	ctx, cancel := context.WithCancel(context.Background())
	out := &Feed[U]{
		updates: make(chan U, 1),
		logger:  src.logger,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	out.stop = func() {
		src.Close()
		cancel()
	}

	srcDone := make(chan struct{})
	go func() {
		defer close(srcDone)
		for snapshot := range src.updates {
			out.enqueue(fn(snapshot))
		}
	}()
	go out.deliver(ctx, srcDone)
	return out
}
