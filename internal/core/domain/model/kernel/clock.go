package kernel

import "time"

// Now returns the current instant in UTC, truncated to microseconds so that
// values survive a round trip through PostgreSQL timestamps unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
