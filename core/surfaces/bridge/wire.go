package bridge

import "github.com/rastkol/swipe-core/core/pointer"

// Frame is the JSON message exchanged with a remote pointer bridge. The
// bridge sends a single status frame after the connection is established;
// every frame after that is an input frame sent by this client.
type Frame struct {
	Type string `json:"type" jsonschema:"enum=status,enum=input"`

	// Status frame fields.
	Displayable bool `json:"displayable,omitempty"`
	Interactive bool `json:"interactive,omitempty"`

	// Input frame fields. Times are in milliseconds since the bridge
	// session epoch.
	Kind      string  `json:"kind,omitempty" jsonschema:"enum=down,enum=move,enum=up"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	DownTime  int64   `json:"downTime,omitempty"`
	EventTime int64   `json:"eventTime,omitempty"`
}

const (
	frameTypeStatus = "status"
	frameTypeInput  = "input"
)

func frameFor(event pointer.TimedEvent) Frame {
	return Frame{
		Type:      frameTypeInput,
		Kind:      string(event.Kind),
		X:         event.Position.X,
		Y:         event.Position.Y,
		DownTime:  event.DownTime,
		EventTime: event.EventTime,
	}
}
