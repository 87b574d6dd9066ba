// ABOUTME: Tests for Feed refetch, backlog delivery, and close semantics.
// ABOUTME: Uses a fake callback source to drive refreshes deterministically.
package live

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeSource is a manually-driven Source for tests. Like a real source,
// it invokes callbacks synchronously under its lock.
type fakeSource struct {
	mu     sync.Mutex
	subs   map[int]func()
	nextID int
	done   chan struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		subs: make(map[int]func()),
		done: make(chan struct{}),
	}
}

func (s *fakeSource) Subscribe(notify func()) (<-chan struct{}, func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = notify
	notify()
	s.mu.Unlock()

	return s.done, func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *fakeSource) signal() {
	s.mu.Lock()
	for _, notify := range s.subs {
		notify()
	}
	s.mu.Unlock()
}

func (s *fakeSource) close() {
	close(s.done)
}

func recvTimeout[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for emission")
		panic("unreachable")
	}
}

func TestFeedEmitsInitialSnapshot(t *testing.T) {
	src := newFakeSource()
	f := NewFeed(context.Background(), src, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	defer f.Close()

	if got := recvTimeout(t, f.Updates()); got != 42 {
		t.Errorf("initial snapshot = %d, want 42", got)
	}
	if latest, ok := f.Latest(); !ok || latest != 42 {
		t.Errorf("Latest() = %d, %v, want 42, true", latest, ok)
	}
}

func TestFeedRefetchesOnSignal(t *testing.T) {
	src := newFakeSource()
	n := 0
	f := NewFeed(context.Background(), src, func(ctx context.Context) (int, error) {
		n++
		return n, nil
	})
	defer f.Close()

	if got := recvTimeout(t, f.Updates()); got != 1 {
		t.Fatalf("first emission = %d, want 1", got)
	}

	src.signal()

	if got := recvTimeout(t, f.Updates()); got != 2 {
		t.Errorf("after signal = %d, want 2", got)
	}
}

func TestFeedDeliversBacklogInOrder(t *testing.T) {
	src := newFakeSource()
	n := 0
	f := NewFeed(context.Background(), src, func(ctx context.Context) (int, error) {
		n++
		return n, nil
	})
	defer f.Close()

	// Pile up snapshots without reading. Each signal fetches
	// synchronously, so the backlog is complete once the loop returns.
	for i := 0; i < 5; i++ {
		src.signal()
	}

	// The consumer reads every snapshot, oldest first, never a
	// collapsed summary of the backlog.
	for want := 1; want <= 6; want++ {
		if got := recvTimeout(t, f.Updates()); got != want {
			t.Fatalf("emission %d = %d, want %d", want, got, want)
		}
	}
}

func TestFeedKeepsSnapshotOnFetchError(t *testing.T) {
	src := newFakeSource()
	fail := false
	f := NewFeed(context.Background(), src, func(ctx context.Context) (int, error) {
		if fail {
			return 0, errors.New("boom")
		}
		return 7, nil
	})
	defer f.Close()

	if got := recvTimeout(t, f.Updates()); got != 7 {
		t.Fatalf("first emission = %d, want 7", got)
	}

	fail = true
	src.signal()

	// A failed fetch publishes nothing and keeps the last snapshot.
	select {
	case got := <-f.Updates():
		t.Errorf("unexpected emission %d after failed fetch", got)
	default:
	}
	if latest, ok := f.Latest(); !ok || latest != 7 {
		t.Errorf("Latest() after failed fetch = %d, %v, want 7, true", latest, ok)
	}
}

func TestFeedCloseStopsUpdates(t *testing.T) {
	src := newFakeSource()
	f := NewFeed(context.Background(), src, func(ctx context.Context) (int, error) {
		return 1, nil
	})

	recvTimeout(t, f.Updates())
	f.Close()
	f.Close() // idempotent

	if _, ok := <-f.Updates(); ok {
		t.Error("Updates() still open after Close")
	}
}

func TestFeedStopsWhenSourceCloses(t *testing.T) {
	src := newFakeSource()
	f := NewFeed(context.Background(), src, func(ctx context.Context) (int, error) {
		return 1, nil
	})
	defer f.Close()

	recvTimeout(t, f.Updates())
	src.close()

	select {
	case _, ok := <-f.Updates():
		if ok {
			t.Error("expected closed updates channel after source shutdown")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("feed did not stop after source closed")
	}
}

func TestMapTransformsSnapshots(t *testing.T) {
	src := newFakeSource()
	f := NewFeed(context.Background(), src, func(ctx context.Context) (int, error) {
		return 21, nil
	})
	doubled := Map(f, func(n int) int { return n * 2 })
	defer doubled.Close()

	if got := recvTimeout(t, doubled.Updates()); got != 42 {
		t.Errorf("mapped emission = %d, want 42", got)
	}
}

func TestMapDeliversBacklogInOrder(t *testing.T) {
	src := newFakeSource()
	n := 0
	f := NewFeed(context.Background(), src, func(ctx context.Context) (int, error) {
		n++
		return n, nil
	})
	tens := Map(f, func(n int) int { return n * 10 })
	defer tens.Close()

	for i := 0; i < 3; i++ {
		src.signal()
	}

	for want := 10; want <= 40; want += 10 {
		if got := recvTimeout(t, tens.Updates()); got != want {
			t.Fatalf("mapped emission = %d, want %d", got, want)
		}
	}
}
