// ABOUTME: Live preference sequence built on Badger's Subscribe.
// ABOUTME: Exposes preferences as an always-has-a-value container.
package prefs

import (
	"context"
	"errors"
	"log/slog"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/pb"

	"github.com/harperreed/fitlog/internal/live"
)

// Watch returns a live container holding the current preferences,
// re-read after every preference write. The container is seeded with the
// stored values (or defaults when the read fails) and updates until ctx
// is cancelled.
func (s *Store) Watch(ctx context.Context) *live.Value[Preferences] {
	initial, err := s.Preferences()
	if err != nil {
		slog.Warn("seed preference watch", "error", err)
		initial = Defaults()
	}
	value := live.NewValue(initial)

	go func() {
		matches := []pb.Match{{Prefix: []byte(keyPrefix)}}
		err := s.db.Subscribe(ctx, func(kv *badger.KVList) error {
			p, err := s.Preferences()
			if err != nil {
				slog.Warn("refresh preference watch", "error", err)
				return nil
			}
			value.Set(p)
			return nil
		}, matches)
		if err != nil && ctx.Err() == nil && !errors.Is(err, badger.ErrDBClosed) {
			slog.Warn("preference subscription ended", "error", err)
		}
	}()

	return value
}
