package gestures

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/rastkol/swipe-core/core/events"
	"github.com/rastkol/swipe-core/core/pointer"
	"github.com/rastkol/swipe-core/core/trajectory"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Sequencer replays humanized drag gestures against pointer surfaces. Each
// call to [Sequencer.Run] schedules one independent emission task; tasks
// share no mutable state and the sequencer never serializes gestures on
// the same target. Callers needing a sequential guarantee must not issue
// overlapping gestures against one surface.
type Sequencer struct {
	clock        Clock
	entropy      Entropy
	scheduler    Scheduler
	timing       Timing
	trajectories TrajectorySource

	closeOnce sync.Once
	wg        sync.WaitGroup

	mu     sync.Mutex
	active map[string]*Gesture
	closed bool
}

func NewSequencer(opts ...SequencerOption) *Sequencer {
	s := &Sequencer{
		clock:     newSystemClock(),
		entropy:   newSystemEntropy(),
		scheduler: goroutineScheduler{},
		timing:    DefaultTiming(),
		active:    make(map[string]*Gesture),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Every concurrent gesture task draws from this one source.
	s.entropy = &lockedEntropy{inner: s.entropy}

	if s.trajectories == nil {
		s.trajectories = trajectory.NewGenerator(trajectory.WithEntropy(s.entropy))
	}

	return s
}

// Run schedules one gesture and returns its handle immediately, before any
// event is emitted. The emission task checks the target's preconditions
// once, then replays down, the trajectory's moves and up with humanized
// timing. Every terminal outcome is reported through the registered
// callbacks; nothing is ever returned or raised to the caller.
func (s *Sequencer) Run(ctx context.Context, request GestureRequest, opts ...RunOption) *Gesture {
	runOptions := RunOptions{}
	for _, opt := range opts {
		opt(&runOptions)
	}

	gesture := newGesture(ctx, request, newCallbackEventEmitter(runOptions))

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		log.Println("Warning: sequencer already closed, skipping gesture")
		gesture.emit(events.NewGestureSkipped(gesture.id, events.SkipReasonSequencerClosed))
		gesture.finish()
		return gesture
	}
	s.active[gesture.id] = gesture
	// Registered under the same lock that Close takes before waiting, so
	// Close cannot observe a zero counter with this task still pending.
	s.wg.Add(1)
	s.mu.Unlock()

	s.scheduler.Schedule(func() {
		defer s.wg.Done()
		defer s.release(gesture)
		s.perform(gesture)
	})

	return gesture
}

// Close stops accepting new gestures, cancels in-flight ones and waits for
// their tasks to settle.
func (s *Sequencer) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		active := make([]*Gesture, 0, len(s.active))
		for _, gesture := range s.active {
			active = append(active, gesture)
		}
		s.mu.Unlock()

		for _, gesture := range active {
			gesture.Cancel()
		}
		s.wg.Wait()
	})
}

func (s *Sequencer) release(g *Gesture) {
	s.mu.Lock()
	delete(s.active, g.id)
	s.mu.Unlock()

	g.finish()
}

func (s *Sequencer) perform(g *Gesture) {
	ctx, span := tracer.Start(g.ctx, "perform gesture", trace.WithAttributes(
		attribute.String("gesture.id", g.id),
		attribute.Int64("gesture.duration_hint_ms", g.request.Duration.Milliseconds()),
	))
	defer span.End()

	task := panicSafeGestureTask(func(ctx context.Context) error {
		return s.emitSequence(ctx, g)
	})

	err := task(ctx)
	if err == nil {
		return
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		g.markCancelled()
		span.AddEvent("gesture cancelled")
		g.emit(events.NewGestureCancelled(g.id))
		return
	}

	g.setErr(err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	logger.ErrorContext(ctx, "abandoning gesture", "gesture_id", g.id, "error", err)
	g.emit(events.NewGestureAborted(g.id, err))
}

func (s *Sequencer) emitSequence(ctx context.Context, g *Gesture) error {
	target := g.request.Target
	if target == nil || !target.IsDisplayable() {
		g.emit(events.NewGestureSkipped(g.id, events.SkipReasonNotDisplayable))
		return nil
	}
	if !target.IsInteractive() {
		g.emit(events.NewGestureSkipped(g.id, events.SkipReasonNotInteractive))
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	g.emit(events.NewGestureStarted(g.id, g.request.Start, g.request.End))

	downTime := s.clock.Now()
	eventTime := downTime
	if err := s.dispatch(ctx, g, pointer.TimedEvent{
		Kind:      pointer.KindDown,
		Position:  g.request.Start,
		DownTime:  downTime,
		EventTime: eventTime,
	}); err != nil {
		return err
	}

	if err := s.clock.Sleep(ctx, s.timing.pressToMovePause(s.entropy)); err != nil {
		return err
	}

	for _, offset := range s.trajectories.Generate(g.request.End.X - g.request.Start.X) {
		if err := ctx.Err(); err != nil {
			return err
		}

		position := pointer.Point{
			X: g.request.Start.X + offset.X,
			Y: g.request.Start.Y + offset.Y + s.timing.jitter(s.entropy),
		}
		eventTime += s.timing.moveInterval(s.entropy)
		if err := s.dispatch(ctx, g, pointer.TimedEvent{
			Kind:      pointer.KindMove,
			Position:  position,
			DownTime:  downTime,
			EventTime: eventTime,
		}); err != nil {
			return err
		}

		if err := s.clock.Sleep(ctx, s.timing.microDelay(s.entropy)); err != nil {
			return err
		}
	}

	// The up event lands on the requested endpoint, not on whatever the
	// last trajectory sample rounded to.
	eventTime += s.timing.moveInterval(s.entropy)
	if err := s.dispatch(ctx, g, pointer.TimedEvent{
		Kind:      pointer.KindUp,
		Position:  g.request.End,
		DownTime:  downTime,
		EventTime: eventTime,
	}); err != nil {
		return err
	}

	g.markCompleted()
	g.emit(events.NewGestureCompleted(g.id, g.emittedCount()))
	return nil
}

func (s *Sequencer) dispatch(ctx context.Context, g *Gesture, event pointer.TimedEvent) error {
	if err := g.request.Target.Dispatch(ctx, event); err != nil {
		return fmt.Errorf("failed to dispatch %s event: %w", event.Kind, err)
	}

	g.recordEmitted(event)
	g.emit(events.NewGesturePointerEmitted(g.id, event))
	return nil
}
