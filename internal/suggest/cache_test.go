// ABOUTME: Tests for the suggestion session cache.
// ABOUTME: Covers hits, disabled mode, error pass-through, and dedupe.
package suggest

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// countingFetcher counts calls and returns a canned result or error.
type countingFetcher struct {
	mu      sync.Mutex
	calls   int
	result  []Suggestion
	err     error
	block   chan struct{} // when set, Suggestions waits on it
	started chan struct{} // closed-ish signal per call start
}

func (f *countingFetcher) Suggestions(ctx context.Context, q Query) ([]Suggestion, error) {
	f.mu.Lock()
	f.calls++
	started := f.started
	block := f.block
	f.mu.Unlock()
	if started != nil {
		started <- struct{}{}
	}
	if block != nil {
		<-block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *countingFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestCacheServesSecondReadFromMemory(t *testing.T) {
	fetcher := &countingFetcher{result: []Suggestion{{ID: 1, Name: "Push-up"}}}
	cache := NewCache(fetcher, 2, 1<<20, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := cache.Suggestions(ctx, Query{Limit: 10})
		if err != nil {
			t.Fatalf("Suggestions failed: %v", err)
		}
		if len(got) != 1 || got[0].Name != "Push-up" {
			t.Fatalf("got %v", got)
		}
	}

	if fetcher.callCount() != 1 {
		t.Errorf("fetcher called %d times, want 1 (second read cached)", fetcher.callCount())
	}
}

func TestCacheDistinguishesQueries(t *testing.T) {
	fetcher := &countingFetcher{result: []Suggestion{{ID: 1}}}
	cache := NewCache(fetcher, 2, 1<<20, time.Minute)
	ctx := context.Background()

	if _, err := cache.Suggestions(ctx, Query{Search: "press"}); err != nil {
		t.Fatalf("Suggestions failed: %v", err)
	}
	if _, err := cache.Suggestions(ctx, Query{Search: "squat"}); err != nil {
		t.Fatalf("Suggestions failed: %v", err)
	}

	if fetcher.callCount() != 2 {
		t.Errorf("fetcher called %d times, want 2 for distinct queries", fetcher.callCount())
	}
}

func TestCacheDisabledPassesThrough(t *testing.T) {
	fetcher := &countingFetcher{result: []Suggestion{{ID: 1}}}
	cache := NewCache(fetcher, 2, 0, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := cache.Suggestions(ctx, Query{}); err != nil {
			t.Fatalf("Suggestions failed: %v", err)
		}
	}
	if fetcher.callCount() != 3 {
		t.Errorf("fetcher called %d times, want 3 with cache disabled", fetcher.callCount())
	}
}

func TestCacheNeverCachesErrors(t *testing.T) {
	fetcher := &countingFetcher{err: ErrServer}
	cache := NewCache(fetcher, 2, 1<<20, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := cache.Suggestions(ctx, Query{}); !errors.Is(err, ErrServer) {
			t.Fatalf("error = %v, want ErrServer", err)
		}
	}
	if fetcher.callCount() != 2 {
		t.Errorf("fetcher called %d times, want 2 (errors not cached)", fetcher.callCount())
	}
}

func TestCacheDeduplicatesConcurrentFetches(t *testing.T) {
	fetcher := &countingFetcher{
		result:  []Suggestion{{ID: 1}},
		block:   make(chan struct{}),
		started: make(chan struct{}, 16),
	}
	cache := NewCache(fetcher, 2, 1<<20, time.Minute)
	ctx := context.Background()

	var done atomic.Int32
	const callers = 4
	for i := 0; i < callers; i++ {
		go func() {
			_, _ = cache.Suggestions(ctx, Query{})
			done.Add(1)
		}()
	}

	// Wait for the single shared fetch to start, then release it.
	select {
	case <-fetcher.started:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch never started")
	}
	close(fetcher.block)

	deadline := time.Now().Add(2 * time.Second)
	for done.Load() != callers && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if done.Load() != callers {
		t.Fatalf("only %d of %d callers returned", done.Load(), callers)
	}
	if got := fetcher.callCount(); got != 1 {
		t.Errorf("fetcher called %d times, want 1 shared fetch", got)
	}
}
