// Package desktop provides a pointer surface backed by the local desktop
// cursor.
package desktop

import (
	"context"
	"fmt"

	"github.com/go-vgo/robotgo"
	"github.com/rastkol/swipe-core/core/pointer"
)

// Surface drives the OS cursor and left mouse button through robotgo.
// Down/move/up map to press, drag and release, so a replayed gesture is a
// real OS-level drag.
type Surface struct {
	button string
}

func NewSurface() *Surface {
	return &Surface{button: "left"}
}

// IsDisplayable reports whether a display is available to drag on.
func (s *Surface) IsDisplayable() bool {
	width, height := robotgo.GetScreenSize()
	return width > 0 && height > 0
}

// IsInteractive reports whether the cursor can be driven. The desktop has
// no enablement concept beyond having a display, so this mirrors
// displayability.
func (s *Surface) IsInteractive() bool {
	return s.IsDisplayable()
}

func (s *Surface) Dispatch(ctx context.Context, event pointer.TimedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	x, y := int(event.Position.X), int(event.Position.Y)
	switch event.Kind {
	case pointer.KindDown:
		robotgo.Move(x, y)
		if err := robotgo.Toggle(s.button, "down"); err != nil {
			return fmt.Errorf("failed to press %s button: %w", s.button, err)
		}
	case pointer.KindMove:
		robotgo.Move(x, y)
	case pointer.KindUp:
		robotgo.Move(x, y)
		if err := robotgo.Toggle(s.button, "up"); err != nil {
			return fmt.Errorf("failed to release %s button: %w", s.button, err)
		}
	default:
		return fmt.Errorf("unsupported pointer event kind %q", event.Kind)
	}

	return nil
}
