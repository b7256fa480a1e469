package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
// ulid.Make draws from a process-wide monotonic entropy source, so ids
// created within the same millisecond still sort and never collide.
func NewULID() string {
	return ulid.Make().String()
}
