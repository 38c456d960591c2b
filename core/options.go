package gestures

import (
	"github.com/rastkol/swipe-core/core/events"
	"github.com/rastkol/swipe-core/core/pointer"
)

type SequencerOption func(*Sequencer)

// WithClock replaces the clock used for event stamping and suspension.
func WithClock(clock Clock) SequencerOption {
	return func(s *Sequencer) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithEntropy replaces the randomness source. The same source feeds
// trajectory overshoot, interval draws and jitter unless a trajectory
// source is supplied separately.
func WithEntropy(entropy Entropy) SequencerOption {
	return func(s *Sequencer) {
		if entropy != nil {
			s.entropy = entropy
		}
	}
}

// WithScheduler replaces the execution context gesture tasks run on.
func WithScheduler(scheduler Scheduler) SequencerOption {
	return func(s *Sequencer) {
		if scheduler != nil {
			s.scheduler = scheduler
		}
	}
}

// WithTiming replaces the stock timing profile.
func WithTiming(timing Timing) SequencerOption {
	return func(s *Sequencer) { s.timing = timing }
}

// TrajectorySource produces the relative displacement path for a gesture's
// primary-axis distance.
type TrajectorySource interface {
	Generate(totalDistance float64) []pointer.Point
}

// WithTrajectorySource replaces the default motion-profile generator.
func WithTrajectorySource(source TrajectorySource) SequencerOption {
	return func(s *Sequencer) {
		if source != nil {
			s.trajectories = source
		}
	}
}

type RunOptions struct {
	onStarted   func(start, end pointer.Point)
	onPointer   func(event pointer.TimedEvent)
	onCompleted func(emittedEvents int)
	onSkipped   func(reason events.SkipReason)
	onAborted   func(err error)
	onCancelled func()
}

type RunOption func(*RunOptions)

// WithStartedCallback registers a callback invoked once the precondition
// checks pass, before the down event is dispatched.
func WithStartedCallback(callback func(start, end pointer.Point)) RunOption {
	return func(o *RunOptions) {
		o.onStarted = callback
	}
}

// WithPointerCallback registers a callback for every pointer event the
// target surface accepted, in emission order.
//
// The callback runs inline on the emission path and should not block.
func WithPointerCallback(callback func(event pointer.TimedEvent)) RunOption {
	return func(o *RunOptions) {
		o.onPointer = callback
	}
}

// WithCompletedCallback registers a callback for successful completion,
// carrying the number of events dispatched.
func WithCompletedCallback(callback func(emittedEvents int)) RunOption {
	return func(o *RunOptions) {
		o.onCompleted = callback
	}
}

// WithSkippedCallback registers a callback for gestures dropped by a
// precondition check. A skip is not an error; no other callback fires.
func WithSkippedCallback(callback func(reason events.SkipReason)) RunOption {
	return func(o *RunOptions) {
		o.onSkipped = callback
	}
}

// WithAbortedCallback registers a callback for gestures abandoned after a
// dispatch failure or an internal fault. The failure never propagates
// anywhere else.
func WithAbortedCallback(callback func(err error)) RunOption {
	return func(o *RunOptions) {
		o.onAborted = callback
	}
}

// WithCancelledCallback registers a callback for gestures stopped through
// their handle.
func WithCancelledCallback(callback func()) RunOption {
	return func(o *RunOptions) {
		o.onCancelled = callback
	}
}
