package utils

import "time"

// DeltaTimer measures the time between consecutive calls to Next.
type DeltaTimer struct {
	last time.Time
}

// Next returns the time since the previous call, or 0 on the first call.
func (d *DeltaTimer) Next() time.Duration {
	// one timestamp per call, so no error accumulates between frames
	now := time.Now()

	defer d.Set(now)
	if d.last.IsZero() {
		return 0
	}
	return now.Sub(d.last)
}

func (d *DeltaTimer) Set(t time.Time) {
	d.last = t
}
