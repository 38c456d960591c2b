package pointer

import "context"

// Surface is the host-side collaborator a gesture is replayed against.
//
// IsDisplayable and IsInteractive are consulted once before a gesture
// starts; a surface that fails either check receives no events. Dispatch
// must tolerate repeated calls with monotonically increasing EventTime for
// the same DownTime.
type Surface interface {
	IsDisplayable() bool
	IsInteractive() bool
	Dispatch(ctx context.Context, event TimedEvent) error
}
