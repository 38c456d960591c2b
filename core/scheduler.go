package gestures

// Scheduler decides which execution context gesture tasks run on. The
// default schedules each task on its own goroutine; hosts whose surface
// requires dispatch from a particular loop (a UI thread, an event loop
// shim) supply their own.
type Scheduler interface {
	Schedule(task func())
}

type goroutineScheduler struct{}

func (goroutineScheduler) Schedule(task func()) { go task() }
