package gestures

import (
	"context"
	"fmt"
)

type gestureTask func(context.Context) error

// panicSafeGestureTask converts a panic inside the emission task into an
// error so an internal fault follows the same catch-log-abandon path as a
// dispatch failure and never escapes to crash the host.
func panicSafeGestureTask(run func(context.Context) error) gestureTask {
	return func(ctx context.Context) (err error) {
		defer func() {
			if recovered := recover(); recovered != nil {
				err = fmt.Errorf("gesture task panicked: %v", recovered)
			}
		}()

		return run(ctx)
	}
}
