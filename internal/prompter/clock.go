package prompter

import "time"

// Clock supplies the wall-clock time the scroll engine measures elapsed
// playback against.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
