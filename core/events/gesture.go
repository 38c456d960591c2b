package events

import "github.com/rastkol/swipe-core/core/pointer"

const (
	// KindGestureStarted identifies the start of an emission sequence.
	KindGestureStarted Kind = "gesture.started"
	// KindGesturePointerEmitted identifies one dispatched pointer event.
	KindGesturePointerEmitted Kind = "gesture.pointer_emitted"
	// KindGestureCompleted identifies a fully emitted gesture.
	KindGestureCompleted Kind = "gesture.completed"
	// KindGestureSkipped identifies a gesture dropped before any emission.
	KindGestureSkipped Kind = "gesture.skipped"
	// KindGestureAborted identifies a gesture abandoned mid-sequence.
	KindGestureAborted Kind = "gesture.aborted"
	// KindGestureCancelled identifies a gesture stopped by its handle.
	KindGestureCancelled Kind = "gesture.cancelled"
)

// SkipReason states which precondition dropped a gesture.
type SkipReason string

const (
	SkipReasonNotDisplayable  SkipReason = "target_not_displayable"
	SkipReasonNotInteractive  SkipReason = "target_not_interactive"
	SkipReasonSequencerClosed SkipReason = "sequencer_closed"
)

// GestureStarted marks the down event being about to dispatch.
type GestureStarted struct {
	Base
	GestureID string
	Start     pointer.Point
	End       pointer.Point
}

// NewGestureStarted creates a gesture started event.
func NewGestureStarted(gestureID string, start, end pointer.Point) GestureStarted {
	return GestureStarted{Base: NewBase(KindGestureStarted), GestureID: gestureID, Start: start, End: end}
}

// GesturePointerEmitted carries one pointer event that was accepted by the
// target surface.
type GesturePointerEmitted struct {
	Base
	GestureID string
	Pointer   pointer.TimedEvent
}

// NewGesturePointerEmitted creates a pointer emitted event.
func NewGesturePointerEmitted(gestureID string, event pointer.TimedEvent) GesturePointerEmitted {
	return GesturePointerEmitted{Base: NewBase(KindGesturePointerEmitted), GestureID: gestureID, Pointer: event}
}

// GestureCompleted marks the up event having been dispatched.
type GestureCompleted struct {
	Base
	GestureID     string
	EmittedEvents int
}

// NewGestureCompleted creates a gesture completed event.
func NewGestureCompleted(gestureID string, emittedEvents int) GestureCompleted {
	return GestureCompleted{Base: NewBase(KindGestureCompleted), GestureID: gestureID, EmittedEvents: emittedEvents}
}

// GestureSkipped marks a gesture dropped by a precondition check before any
// event was emitted.
type GestureSkipped struct {
	Base
	GestureID string
	Reason    SkipReason
}

func (e GestureSkipped) String() string { return string(e.Reason) }

// NewGestureSkipped creates a gesture skipped event.
func NewGestureSkipped(gestureID string, reason SkipReason) GestureSkipped {
	return GestureSkipped{Base: NewBase(KindGestureSkipped), GestureID: gestureID, Reason: reason}
}

// GestureAborted marks a gesture abandoned after a dispatch failure or an
// internal fault. Events already dispatched are not undone.
type GestureAborted struct {
	Base
	GestureID string
	Err       error
}

func (e GestureAborted) String() string {
	if e.Err == nil {
		return "gesture aborted"
	}
	return e.Err.Error()
}

// NewGestureAborted creates a gesture aborted event.
func NewGestureAborted(gestureID string, err error) GestureAborted {
	return GestureAborted{Base: NewBase(KindGestureAborted), GestureID: gestureID, Err: err}
}

// GestureCancelled marks a gesture stopped through its handle with no
// further emission.
type GestureCancelled struct {
	Base
	GestureID string
}

// NewGestureCancelled creates a gesture cancelled event.
func NewGestureCancelled(gestureID string) GestureCancelled {
	return GestureCancelled{Base: NewBase(KindGestureCancelled), GestureID: gestureID}
}
