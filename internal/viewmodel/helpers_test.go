// ABOUTME: Shared test helpers for state-holder tests.
// ABOUTME: In-memory repository setup and state polling.
package viewmodel

import (
	"testing"
	"time"

	"github.com/harperreed/fitlog/internal/storage"
)

func setupTestRepo(t *testing.T) storage.Repository {
	t.Helper()
	repo, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

// waitFor polls until check passes or the deadline expires.
func waitFor(t *testing.T, what string, check func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if check() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
