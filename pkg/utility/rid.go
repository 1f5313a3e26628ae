package utility

import (
	"sync"

	"github.com/google/uuid"
)

// RunID identifies a single estimation run. Everything produced by one run
// (samples consumed, intermediate estimates, the final model) carries the
// same RunID.
type RunID = uuid.UUID

var (
	runID     RunID
	runIDOnce sync.Once
	runIDMu   sync.RWMutex
)

func GetRunID() RunID {
	runIDOnce.Do(func() {
		runID = uuid.Must(uuid.NewV7())
	})

	runIDMu.RLock()
	defer runIDMu.RUnlock()
	return runID
}

// ResetRunID starts a fresh run. Estimator state never survives across runs,
// so callers reset before reusing a process for another experiment.
func ResetRunID() RunID {
	runIDMu.Lock()
	defer runIDMu.Unlock()

	runID = uuid.Must(uuid.NewV7())
	return runID
}
