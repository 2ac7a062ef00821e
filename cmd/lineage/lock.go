package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"lineage/internal/config"
)

// acquireRunLock takes an exclusive file lock in the data directory so
// that only one writer mutates the person store at a time. The returned
// function releases the lock.
func acquireRunLock(cfg *config.Config) (func(), error) {
	lock := flock.New(filepath.Join(cfg.Paths.DataDir, "lineage.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another lineage import is already running")
	}
	return func() { _ = lock.Unlock() }, nil
}
