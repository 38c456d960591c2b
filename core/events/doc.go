// Package events defines the typed observability event contract for the
// gesture sequencer.
//
// All kinds live in the gesture.* namespace:
//
//   - GestureStarted (gesture.started): the precondition checks passed and
//     the down event is about to be dispatched.
//   - GesturePointerEmitted (gesture.pointer_emitted): one pointer event was
//     accepted by the target surface.
//   - GestureCompleted (gesture.completed): the up event was dispatched; the
//     sequence is whole.
//   - GestureSkipped (gesture.skipped): a precondition failed and the
//     gesture was dropped with zero events emitted. Not an error.
//   - GestureAborted (gesture.aborted): dispatch failed or the emission task
//     faulted; the remaining sequence was abandoned. Carries the cause.
//   - GestureCancelled (gesture.cancelled): the gesture handle was cancelled
//     and emission stopped. No compensating up event is synthesized.
//
// Exactly one of completed, skipped, aborted or cancelled terminates every
// gesture.
package events
