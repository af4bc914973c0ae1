package clock

import "time"

// Clock stamps createdAt, joinedAt and updatedAt values. Stores and services
// take it as a dependency so tests can pin time with a ManualClock.
type Clock interface {
	Now() time.Time
}
