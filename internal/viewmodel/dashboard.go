// ABOUTME: Dashboard state holder: live activity list plus aggregates.
// ABOUTME: Merges repository feeds into one always-current state value.
package viewmodel

import (
	"context"
	"sync"

	"github.com/harperreed/fitlog/internal/live"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
)

// DashboardState is everything the dashboard screen renders. It always
// has a value: before the first live emission it holds the explicit
// empty state, never nil.
type DashboardState struct {
	Activities           []*models.Activity
	TotalCalories        int64
	TotalDistanceKm      float64
	TotalDurationMinutes int64
	ActivityCount        int64
	ErrorMessage         string
}

// DashboardModel subscribes to the live activity list and the aggregate
// feeds and merges their emissions into a single state container.
// Displayed state changes only through live re-emission; the delete
// action never splices the list itself.
type DashboardModel struct {
	repo   storage.Repository
	state  *live.Value[DashboardState]
	cancel context.CancelFunc
	ctx    context.Context
	feeds  []interface{ Close() }
	wg     sync.WaitGroup
}

// NewDashboard creates a dashboard holder and immediately begins
// observing the repository. Call Close when the screen goes away; every
// subscription created here is cancelled with it.
func NewDashboard(repo storage.Repository) *DashboardModel {
	ctx, cancel := context.WithCancel(context.Background())
	m := &DashboardModel{
		repo:   repo,
		state:  live.NewValue(DashboardState{Activities: []*models.Activity{}}),
		cancel: cancel,
		ctx:    ctx,
	}

	activities := repo.WatchActivities(ctx, storage.ListFilter{})
	calories := repo.WatchTotalCalories(ctx)
	distance := repo.WatchTotalDistance(ctx)
	duration := repo.WatchTotalDuration(ctx)
	count := repo.WatchActivityCount(ctx)
	m.feeds = []interface{ Close() }{activities, calories, distance, duration, count}

	consume(m, activities, func(s DashboardState, v []*models.Activity) DashboardState {
		s.Activities = v
		return s
	})
	consume(m, calories, func(s DashboardState, v int64) DashboardState {
		s.TotalCalories = v
		return s
	})
	consume(m, distance, func(s DashboardState, v float64) DashboardState {
		s.TotalDistanceKm = v
		return s
	})
	consume(m, duration, func(s DashboardState, v int64) DashboardState {
		s.TotalDurationMinutes = v
		return s
	})
	consume(m, count, func(s DashboardState, v int64) DashboardState {
		s.ActivityCount = v
		return s
	})

	return m
}

// consume merges every emission of one feed into the dashboard state.
func consume[T any](m *DashboardModel, feed *live.Feed[T], merge func(DashboardState, T) DashboardState) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		for v := range feed.Updates() {
			v := v
			m.state.Update(func(s DashboardState) DashboardState {
				return merge(s, v)
			})
		}
	}()
}

// State returns the dashboard's state container.
func (m *DashboardModel) State() *live.Value[DashboardState] {
	return m.state
}

// DeleteActivity removes an activity asynchronously. The displayed list
// updates through live re-emission; a failure lands in the error slot
// and leaves prior state unchanged.
func (m *DashboardModel) DeleteActivity(id int64) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := m.repo.DeleteByID(m.ctx, id); err != nil {
			if m.ctx.Err() != nil {
				return
			}
			m.state.Update(func(s DashboardState) DashboardState {
				s.ErrorMessage = "could not delete activity: " + err.Error()
				return s
			})
		}
	}()
}

// ClearError empties the error slot.
func (m *DashboardModel) ClearError() {
	m.state.Update(func(s DashboardState) DashboardState {
		s.ErrorMessage = ""
		return s
	})
}

// Close tears down every subscription the holder created and waits for
// its goroutines. No observation survives the holder.
func (m *DashboardModel) Close() {
	m.cancel()
	for _, feed := range m.feeds {
		feed.Close()
	}
	m.wg.Wait()
}
