// Package pointer defines the pointer event data model and the surface
// contract gestures are dispatched against.
package pointer

// Point is a surface-absolute coordinate or a relative displacement, in
// pixels. Values are immutable once produced.
type Point struct {
	X float64
	Y float64
}

// Add returns the point translated by delta.
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Kind identifies one of the three pointer event phases of a single-contact
// gesture.
type Kind string

const (
	// KindDown marks initial contact at the gesture origin.
	KindDown Kind = "down"
	// KindMove marks an intermediate contact position.
	KindMove Kind = "move"
	// KindUp marks contact release at the gesture endpoint.
	KindUp Kind = "up"
)

// TimedEvent is one unit of sequencer output, handed to a surface and then
// discarded.
//
// DownTime is fixed for the whole gesture and set when the down event is
// stamped. EventTime is monotonically non-decreasing across the gesture's
// event sequence. Both are milliseconds on the clock the sequencer was
// configured with.
type TimedEvent struct {
	Kind      Kind
	Position  Point
	DownTime  int64
	EventTime int64
}
