package profile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStorage matches every *StorageError via errors.Is.
	ErrStorage = errors.New("profile storage error")

	ErrInvalidName   = errors.New("invalid player name")
	ErrNegativeScore = errors.New("score must not be negative")
)

// StorageError reports a failed read or write of the backing store.
// It is never retried; callers decide what to do with it.
type StorageError struct {
	Op   string
	Name string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("profile storage: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("profile storage: %s %q: %v", e.Op, e.Name, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is reports whether target is ErrStorage.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// CheckName rejects empty or blank player names.
func CheckName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// CheckScore rejects negative scores.
func CheckScore(score int) error {
	if score < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeScore, score)
	}
	return nil
}
