// ABOUTME: Badger-backed user preference storage.
// ABOUTME: Two independent keys: dark theme flag and daily step goal.
package prefs

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
)

const (
	keyPrefix    = "pref:"
	keyDarkTheme = keyPrefix + "dark_theme"
	keyStepGoal  = keyPrefix + "daily_step_goal"

	// DefaultStepGoal is the daily step goal before the user sets one.
	DefaultStepGoal = 10000

	// MinStepGoal and MaxStepGoal bound valid daily step goals.
	MinStepGoal = 1000
	MaxStepGoal = 50000
)

// ErrGoalOutOfRange is returned when a step-goal write falls outside
// [MinStepGoal, MaxStepGoal]. The write is rejected before persistence;
// the stored value is unchanged.
var ErrGoalOutOfRange = fmt.Errorf("daily step goal must be between %d and %d", MinStepGoal, MaxStepGoal)

// Preferences is the full process-wide preference set.
type Preferences struct {
	DarkTheme     bool
	DailyStepGoal int
}

// Defaults returns the preference values used before anything is stored.
func Defaults() Preferences {
	return Preferences{DarkTheme: false, DailyStepGoal: DefaultStepGoal}
}

// Store holds preferences in a Badger key-value database. Writes are
// transactional; each key is independently readable and writable.
type Store struct {
	db *badger.DB
}

var (
	sharedStore *Store
	sharedOnce  sync.Once
	sharedErr   error
)

// Shared returns the process-wide preference store, opening it on first
// call. Safe under concurrent first access; never recreated afterwards.
func Shared(dir string) (*Store, error) {
	sharedOnce.Do(func() {
		sharedStore, sharedErr = Open(dir)
	})
	return sharedStore, sharedErr
}

// Open opens (or creates) a preference store in dir. An empty dir opens
// an in-memory store (used by tests).
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open preference store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DarkTheme reports whether the dark theme is enabled. Defaults to
// false when never set.
func (s *Store) DarkTheme() (bool, error) {
	value, err := s.get(keyDarkTheme)
	if err != nil {
		return false, err
	}
	if value == "" {
		return Defaults().DarkTheme, nil
	}
	return value == "true", nil
}

// SetDarkTheme stores the dark theme flag.
func (s *Store) SetDarkTheme(enabled bool) error {
	return s.set(keyDarkTheme, strconv.FormatBool(enabled))
}

// StepGoal returns the daily step goal. Defaults to DefaultStepGoal
// when never set.
func (s *Store) StepGoal() (int, error) {
	value, err := s.get(keyStepGoal)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return Defaults().DailyStepGoal, nil
	}
	goal, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("corrupt step goal value %q: %w", value, err)
	}
	return goal, nil
}

// SetStepGoal stores the daily step goal. Values outside
// [MinStepGoal, MaxStepGoal] are rejected with ErrGoalOutOfRange before
// anything is written.
func (s *Store) SetStepGoal(goal int) error {
	if goal < MinStepGoal || goal > MaxStepGoal {
		return ErrGoalOutOfRange
	}
	return s.set(keyStepGoal, strconv.Itoa(goal))
}

// Preferences reads the full preference set in one snapshot.
func (s *Store) Preferences() (Preferences, error) {
	p := Defaults()
	err := s.db.View(func(txn *badger.Txn) error {
		if value, err := readKey(txn, keyDarkTheme); err != nil {
			return err
		} else if value != "" {
			p.DarkTheme = value == "true"
		}
		if value, err := readKey(txn, keyStepGoal); err != nil {
			return err
		} else if value != "" {
			goal, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("corrupt step goal value %q: %w", value, err)
			}
			p.DailyStepGoal = goal
		}
		return nil
	})
	if err != nil {
		return Preferences{}, fmt.Errorf("read preferences: %w", err)
	}
	return p, nil
}

func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		v, err := readKey(txn, key)
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("read preference %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) set(key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("write preference %s: %w", key, err)
	}
	return nil
}

// readKey returns the value for key, or "" when the key is absent.
func readKey(txn *badger.Txn, key string) (string, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var value string
	err = item.Value(func(v []byte) error {
		value = string(v)
		return nil
	})
	return value, err
}
