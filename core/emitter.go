package gestures

import "github.com/rastkol/swipe-core/core/events"

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

func newCallbackEventEmitter(opts RunOptions) eventEmitter {
	return func(event events.Event) {
		switch typedEvent := event.(type) {
		case events.GestureStarted:
			if opts.onStarted != nil {
				opts.onStarted(typedEvent.Start, typedEvent.End)
			}
		case events.GesturePointerEmitted:
			if opts.onPointer != nil {
				opts.onPointer(typedEvent.Pointer)
			}
		case events.GestureCompleted:
			if opts.onCompleted != nil {
				opts.onCompleted(typedEvent.EmittedEvents)
			}
		case events.GestureSkipped:
			if opts.onSkipped != nil {
				opts.onSkipped(typedEvent.Reason)
			}
		case events.GestureAborted:
			if opts.onAborted != nil {
				opts.onAborted(typedEvent.Err)
			}
		case events.GestureCancelled:
			if opts.onCancelled != nil {
				opts.onCancelled()
			}
		}
	}
}
