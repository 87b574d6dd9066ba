// ABOUTME: Settings state holder for theme and step-goal preferences.
// ABOUTME: Validates the goal range locally before touching the store.
package viewmodel

import (
	"context"
	"sync"

	"github.com/harperreed/fitlog/internal/live"
	"github.com/harperreed/fitlog/internal/prefs"
)

// SettingsState is everything the settings screen renders.
type SettingsState struct {
	Preferences  prefs.Preferences
	GoalError    string
	ErrorMessage string
	Busy         bool
}

// SettingsModel observes the live preference sequence and exposes the
// two preference write actions.
type SettingsModel struct {
	store  *prefs.Store
	state  *live.Value[SettingsState]
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSettings creates a settings holder observing the preference store.
func NewSettings(store *prefs.Store) *SettingsModel {
	ctx, cancel := context.WithCancel(context.Background())
	m := &SettingsModel{
		store:  store,
		state:  live.NewValue(SettingsState{Preferences: prefs.Defaults()}),
		ctx:    ctx,
		cancel: cancel,
	}

	watched := store.Watch(ctx)
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		for p := range watched.Watch(ctx) {
			p := p
			m.state.Update(func(s SettingsState) SettingsState {
				s.Preferences = p
				return s
			})
		}
	}()

	return m
}

// State returns the settings state container.
func (m *SettingsModel) State() *live.Value[SettingsState] {
	return m.state
}

// SetStepGoal validates the goal locally; out-of-range values surface a
// field error without touching the store. Valid values are written
// asynchronously with the busy flag set for the duration.
func (m *SettingsModel) SetStepGoal(goal int) {
	if goal < prefs.MinStepGoal || goal > prefs.MaxStepGoal {
		m.state.Update(func(s SettingsState) SettingsState {
			s.GoalError = prefs.ErrGoalOutOfRange.Error()
			return s
		})
		return
	}

	m.state.Update(func(s SettingsState) SettingsState {
		s.GoalError = ""
		s.Busy = true
		return s
	})

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		err := m.store.SetStepGoal(goal)
		if m.ctx.Err() != nil {
			return
		}
		m.state.Update(func(s SettingsState) SettingsState {
			s.Busy = false
			if err != nil {
				s.ErrorMessage = "could not save step goal: " + err.Error()
			}
			return s
		})
	}()
}

// SetDarkTheme writes the theme flag asynchronously.
func (m *SettingsModel) SetDarkTheme(enabled bool) {
	m.state.Update(func(s SettingsState) SettingsState {
		s.Busy = true
		return s
	})

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		err := m.store.SetDarkTheme(enabled)
		if m.ctx.Err() != nil {
			return
		}
		m.state.Update(func(s SettingsState) SettingsState {
			s.Busy = false
			if err != nil {
				s.ErrorMessage = "could not save theme: " + err.Error()
			}
			return s
		})
	}()
}

// Close stops the preference observation and waits for in-flight writes
// to finish updating state.
func (m *SettingsModel) Close() {
	m.cancel()
	m.wg.Wait()
}
