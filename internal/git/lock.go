package git

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// InstanceLock prevents two stashtui instances from mutating the
// same repository's stashes concurrently. The lock file lives in the
// common git dir so all worktrees of a repo share one lock.
type InstanceLock struct {
	fl *flock.Flock
}

// AcquireInstanceLock takes the per-repo lock without blocking.
// It fails if another instance already holds it.
func AcquireInstanceLock(gitDir string) (*InstanceLock, error) {
	fl := flock.New(filepath.Join(gitDir, "stashtui.lock"))

	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", fl.Path(), err)
	}
	if !locked {
		return nil, fmt.Errorf("another stashtui instance is already running for this repository")
	}

	return &InstanceLock{fl: fl}, nil
}

// Release drops the lock.
func (l *InstanceLock) Release() {
	_ = l.fl.Unlock()
}
