// ABOUTME: Suggestions state holder for the workout inspiration screen.
// ABOUTME: Loads asynchronously and falls back to the placeholder catalog.
package viewmodel

import (
	"context"
	"sync"

	"github.com/harperreed/fitlog/internal/live"
	"github.com/harperreed/fitlog/internal/suggest"
)

// SuggestionsState is everything the suggestions screen renders. On a
// fetch failure the screen shows the fallback catalog plus a message,
// never an empty error-only state.
type SuggestionsState struct {
	Suggestions  []suggest.Suggestion
	Message      string
	FromFallback bool
	Loading      bool
}

// SuggestionsModel loads workout suggestions through a Fetcher (the raw
// client or its session cache).
type SuggestionsModel struct {
	fetcher suggest.Fetcher
	state   *live.Value[SuggestionsState]
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
}

// NewSuggestions creates a suggestions holder.
func NewSuggestions(fetcher suggest.Fetcher) *SuggestionsModel {
	ctx, cancel := context.WithCancel(context.Background())
	return &SuggestionsModel{
		fetcher: fetcher,
		state:   live.NewValue(SuggestionsState{Suggestions: []suggest.Suggestion{}}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// State returns the suggestions state container.
func (m *SuggestionsModel) State() *live.Value[SuggestionsState] {
	return m.state
}

// Load fetches a page of suggestions asynchronously. Failures are
// classified into their user-facing message and replaced by the
// placeholder catalog. Ignored while a load is already in flight.
func (m *SuggestionsModel) Load(q suggest.Query) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Get().Loading {
		return
	}
	m.state.Update(func(s SuggestionsState) SuggestionsState {
		s.Loading = true
		return s
	})

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		suggestions, err := m.fetcher.Suggestions(m.ctx, q)
		if m.ctx.Err() != nil {
			return
		}
		m.state.Update(func(s SuggestionsState) SuggestionsState {
			s.Loading = false
			if err != nil {
				s.Message = suggest.UserMessage(err)
				s.Suggestions = suggest.Fallback()
				s.FromFallback = true
				return s
			}
			s.Message = ""
			s.Suggestions = suggestions
			s.FromFallback = false
			return s
		})
	}()
}

// Offline fills the state with the placeholder catalog without touching
// the network.
func (m *SuggestionsModel) Offline() {
	m.state.Update(func(s SuggestionsState) SuggestionsState {
		s.Loading = false
		s.Message = ""
		s.Suggestions = suggest.Fallback()
		s.FromFallback = true
		return s
	})
}

// Close cancels any in-flight load and waits for it to stop touching
// state.
func (m *SuggestionsModel) Close() {
	m.cancel()
	m.wg.Wait()
}
