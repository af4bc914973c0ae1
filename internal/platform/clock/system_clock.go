package clock

import "time"

// SystemClock is the production Clock. It reports UTC so timestamps written by
// the memory and postgres stores format identically.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now().UTC() }
