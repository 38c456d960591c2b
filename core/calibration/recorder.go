package calibration

import (
	"context"
	"math"
	"sync"
	"time"

	hook "github.com/robotn/gohook"
	"github.com/rastkol/swipe-core/core/pointer"
)

// Recorder captures left-button drags from the live OS input stream.
type Recorder struct {
	mu      sync.Mutex
	samples []Sample
	current *dragCapture
}

type dragCapture struct {
	downAt     time.Time
	lastMoveAt time.Time

	start       pointer.Point
	points      []pointer.Point
	pressToMove time.Duration
	intervals   []time.Duration
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record listens for drags until the context is cancelled, then returns
// everything captured. Presses without any movement are discarded.
func (r *Recorder) Record(ctx context.Context) []Sample {
	hook.Register(hook.MouseDown, []string{}, func(e hook.Event) {
		if e.Button != hook.MouseMap["left"] && e.Button != 1 {
			return
		}
		r.mu.Lock()
		defer r.mu.Unlock()
		r.current = &dragCapture{
			downAt: time.Now(),
			start:  pointer.Point{X: float64(e.X), Y: float64(e.Y)},
		}
	})

	hook.Register(hook.MouseDrag, []string{}, func(e hook.Event) {
		now := time.Now()
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.current == nil {
			return
		}
		if len(r.current.points) == 0 {
			r.current.pressToMove = now.Sub(r.current.downAt)
		} else {
			r.current.intervals = append(r.current.intervals, now.Sub(r.current.lastMoveAt))
		}
		r.current.lastMoveAt = now
		r.current.points = append(r.current.points, pointer.Point{X: float64(e.X), Y: float64(e.Y)})
	})

	hook.Register(hook.MouseUp, []string{}, func(e hook.Event) {
		if e.Button != hook.MouseMap["left"] && e.Button != 1 {
			return
		}
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.current == nil {
			return
		}
		capture := r.current
		r.current = nil
		if len(capture.points) == 0 {
			return
		}

		end := pointer.Point{X: float64(e.X), Y: float64(e.Y)}
		r.samples = append(r.samples, Sample{
			PressToMove:   capture.pressToMove,
			MoveIntervals: capture.intervals,
			Deviations:    deviationsFromLine(capture.start, end, capture.points),
		})
	})

	events := hook.Start()
	go func() {
		<-ctx.Done()
		hook.End()
	}()
	<-hook.Process(events)

	return r.Samples()
}

func (r *Recorder) Samples() []Sample {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Sample(nil), r.samples...)
}

// deviationsFromLine measures each point's signed perpendicular distance
// from the press-to-release line. A press released in place has no line to
// deviate from, so every distance degenerates to the offset from the press
// point.
func deviationsFromLine(start, end pointer.Point, points []pointer.Point) []float64 {
	dx, dy := end.X-start.X, end.Y-start.Y
	length := math.Hypot(dx, dy)

	deviations := make([]float64, 0, len(points))
	for _, p := range points {
		if length == 0 {
			deviations = append(deviations, math.Hypot(p.X-start.X, p.Y-start.Y))
			continue
		}
		deviations = append(deviations, ((p.X-start.X)*dy-(p.Y-start.Y)*dx)/length)
	}
	return deviations
}
