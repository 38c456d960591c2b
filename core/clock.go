package gestures

import (
	"context"
	"time"
)

// Clock provides millisecond timestamps for event stamping and the
// cooperative suspension primitive used between emitted events. Timestamps
// only need to be monotonic relative to each other; they are not wall time.
type Clock interface {
	Now() int64
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct {
	epoch time.Time
}

func newSystemClock() *systemClock {
	return &systemClock{epoch: time.Now()}
}

func (c *systemClock) Now() int64 {
	return time.Since(c.epoch).Milliseconds()
}

// Sleep suspends for d, waking early with the context's error if it is
// cancelled first.
func (c *systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
