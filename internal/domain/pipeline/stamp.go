package pipeline

import (
	"time"

	"github.com/google/uuid"
)

func stampID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// Timestamps are truncated to microseconds so a value read back from
// postgres compares equal to the one returned at creation.
func stampTime(t *time.Time) {
	if t.IsZero() {
		*t = time.Now().UTC().Truncate(time.Microsecond)
	}
}
