package gestures

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rastkol/swipe-core/core/pointer"
)

// GestureRequest describes one drag to replay against a target surface.
type GestureRequest struct {
	Target pointer.Surface
	Start  pointer.Point
	End    pointer.Point
	// Duration is advisory. The elapsed time of a gesture is the sum of
	// its randomized per-step delays, not a deadline.
	Duration time.Duration
}

// Gesture is the handle returned by [Sequencer.Run]. The emission task runs
// independently of the caller; the handle reports progress and supports
// cancellation.
type Gesture struct {
	id      string
	request GestureRequest

	ctx    context.Context
	cancel context.CancelFunc
	emit   eventEmitter

	done       chan struct{}
	finishOnce sync.Once

	mu        sync.Mutex
	emitted   []pointer.TimedEvent
	cancelled bool
	completed bool
	err       error
}

func newGesture(ctx context.Context, request GestureRequest, emit eventEmitter) *Gesture {
	if emit == nil {
		emit = noopEventEmitter
	}
	if ctx == nil {
		ctx = context.Background()
	}

	gestureCtx, cancel := context.WithCancel(ctx)
	return &Gesture{
		id:      uuid.NewString(),
		request: request,
		ctx:     gestureCtx,
		cancel:  cancel,
		emit:    emit,
		done:    make(chan struct{}),
	}
}

// ID returns the unique identifier stamped on this gesture's events.
func (g *Gesture) ID() string { return g.id }

// Cancel stops further event emission for this gesture. Events already
// dispatched are not undone and no compensating up event is synthesized;
// the surface is left mid-gesture.
func (g *Gesture) Cancel() {
	g.mu.Lock()
	g.cancelled = true
	g.mu.Unlock()

	g.cancel()
}

// Done is closed once the gesture reaches a terminal state.
func (g *Gesture) Done() <-chan struct{} { return g.done }

// Err returns the cause of an aborted gesture, nil otherwise.
func (g *Gesture) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}

func (g *Gesture) finish() {
	g.finishOnce.Do(func() {
		g.cancel()
		close(g.done)
	})
}

func (g *Gesture) recordEmitted(event pointer.TimedEvent) {
	g.mu.Lock()
	g.emitted = append(g.emitted, event)
	g.mu.Unlock()
}

func (g *Gesture) markCompleted() {
	g.mu.Lock()
	g.completed = true
	g.mu.Unlock()
}

func (g *Gesture) markCancelled() {
	g.mu.Lock()
	g.cancelled = true
	g.mu.Unlock()
}

func (g *Gesture) setErr(err error) {
	g.mu.Lock()
	g.err = err
	g.mu.Unlock()
}

func (g *Gesture) emittedCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.emitted)
}

// GestureSnapshot is a point-in-time copy of a gesture's state.
type GestureSnapshot struct {
	ID        string
	Start     pointer.Point
	End       pointer.Point
	Duration  time.Duration
	Events    []pointer.TimedEvent
	Cancelled bool
	Completed bool
	Err       error
}

// Snapshot returns a detached copy of the gesture's state. The returned
// event list shares nothing with the handle and can outlive it.
func (g *Gesture) Snapshot() GestureSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snapshot := GestureSnapshot{
		ID:        g.id,
		Start:     g.request.Start,
		End:       g.request.End,
		Duration:  g.request.Duration,
		Cancelled: g.cancelled,
		Completed: g.completed,
		Err:       g.err,
	}
	copier.Copy(&snapshot.Events, g.emitted)
	return snapshot
}
