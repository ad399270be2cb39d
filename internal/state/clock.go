package state

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

var (
	processID = uuid.NewString()
	sequence  uint64
)

// ProcessID identifies the running process in logs.
func ProcessID() string { return processID }

// nextSequence numbers history changes. It is process-wide so that changes
// from several pads (one per browser session) still sort in log output.
func nextSequence() uint64 {
	return atomic.AddUint64(&sequence, 1)
}

func newID(kind string) string {
	return fmt.Sprintf("%s-%s", kind, uuid.NewString())
}
