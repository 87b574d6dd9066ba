// ABOUTME: Integration tests for the full fitlog pipeline.
// ABOUTME: Exercises store, repository, live feeds, view models, and preferences together.
package test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/prefs"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/harperreed/fitlog/internal/viewmodel"
)

// waitFor polls until check passes or the deadline hits.
func waitFor(t *testing.T, what string, check func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if check() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestFullPipeline(t *testing.T) {
	tmpDir := t.TempDir()
	ctx := context.Background()

	repo, err := storage.Open(tmpDir)
	if err != nil {
		t.Fatalf("Failed to open repository: %v", err)
	}
	defer repo.Close()

	// The dashboard observes before anything is written
	dashboard := viewmodel.NewDashboard(repo)
	defer dashboard.Close()

	waitFor(t, "empty dashboard seed", func() bool {
		return dashboard.State().Get().ActivityCount == 0
	})

	// Log an activity through the editor with auto-estimated calories
	editor := viewmodel.NewEditor(repo, 0)
	defer editor.Close()

	editor.SetType("running")
	editor.SetDuration("30")
	if src := editor.State().Get().CaloriesSource; src != viewmodel.FieldAutoFilled {
		t.Fatalf("CaloriesSource = %v, want auto-filled", src)
	}
	if got := editor.State().Get().Form.Calories; got != "350" {
		t.Fatalf("Auto-filled calories = %q, want %q", got, "350")
	}
	editor.Submit()

	var savedID int64
	waitFor(t, "editor save", func() bool {
		savedID = editor.State().Get().SavedID
		return savedID != 0
	})

	// The write propagates to the dashboard without any manual refresh
	waitFor(t, "dashboard to reflect the save", func() bool {
		s := dashboard.State().Get()
		return s.ActivityCount == 1 && s.TotalCalories == 350 && len(s.Activities) == 1
	})

	// A second write from a plain repository call also propagates
	second := models.NewActivity("cycling", 60, 500).WithDistance(20)
	if _, err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	waitFor(t, "dashboard to reflect the second save", func() bool {
		s := dashboard.State().Get()
		return s.ActivityCount == 2 && s.TotalCalories == 850 && s.TotalDistanceKm == 20
	})

	// Newest first
	s := dashboard.State().Get()
	if s.Activities[0].Type != "cycling" {
		t.Errorf("Expected newest activity first, got %q", s.Activities[0].Type)
	}

	// Deleting through the dashboard removes via live re-emission
	dashboard.DeleteActivity(savedID)
	waitFor(t, "dashboard to reflect the delete", func() bool {
		s := dashboard.State().Get()
		return s.ActivityCount == 1 && len(s.Activities) == 1
	})

	// Stats agree with the dashboard
	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalCalories != 500 || stats.ActivityCount != 1 {
		t.Errorf("Stats = %+v, want 500 kcal over 1 activity", stats)
	}

	// Export includes the surviving activity
	data, err := storage.ExportJSON(ctx, repo)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected non-empty export")
	}
}

func TestPreferencesPipeline(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := prefs.Open(filepath.Join(tmpDir, "prefs"))
	if err != nil {
		t.Fatalf("Failed to open preference store: %v", err)
	}
	defer store.Close()

	settings := viewmodel.NewSettings(store)
	defer settings.Close()

	waitFor(t, "settings seed", func() bool {
		return settings.State().Get().Preferences.DailyStepGoal == prefs.DefaultStepGoal
	})

	// A valid goal write round-trips through the store watcher
	settings.SetStepGoal(15000)
	waitFor(t, "goal update", func() bool {
		return settings.State().Get().Preferences.DailyStepGoal == 15000
	})

	// An out-of-range goal surfaces an error and leaves the store alone
	settings.SetStepGoal(500)
	waitFor(t, "goal error", func() bool {
		return settings.State().Get().GoalError != ""
	})
	goal, err := store.StepGoal()
	if err != nil {
		t.Fatalf("StepGoal failed: %v", err)
	}
	if goal != 15000 {
		t.Errorf("Stored goal = %d, want 15000 after rejected write", goal)
	}

	// Theme toggles propagate too
	settings.SetDarkTheme(true)
	waitFor(t, "theme update", func() bool {
		return settings.State().Get().Preferences.DarkTheme
	})
}

func TestConcurrentWritersSingleReader(t *testing.T) {
	repo, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	feed := repo.WatchActivities(ctx, storage.ListFilter{})
	defer feed.Close()

	done := make(chan error, 4)
	for w := 0; w < 4; w++ {
		go func() {
			for i := 0; i < 5; i++ {
				a := models.NewActivity("running", 10, 100)
				if _, err := repo.Save(ctx, a); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 4; i++ {
		if err := <-done; err != nil {
			t.Fatalf("Concurrent save failed: %v", err)
		}
	}

	// Writes are serialized, so Latest converges on the terminal state.
	waitFor(t, "final list emission", func() bool {
		list, ok := feed.Latest()
		return ok && len(list) == 20
	})

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.ActivityCount != 20 || stats.TotalCalories != 2000 {
		t.Errorf("Stats = %+v, want 20 activities and 2000 kcal", stats)
	}
}
