package trajectory

import (
	"math"
	"testing"
)

type pinnedEntropy struct{ value float64 }

func (e pinnedEntropy) Float64() float64 { return e.value }

func TestGenerateEndsExactlyOnTarget(t *testing.T) {
	generator := NewGenerator()

	for _, distance := range []float64{1, 10, 100, 250, 1337.5, -80, -412} {
		path := generator.Generate(distance)
		if len(path) == 0 {
			t.Fatalf("expected non-empty path for distance %v", distance)
		}
		if got := path[len(path)-1].X; got != distance {
			t.Fatalf("expected path for distance %v to end exactly on target, got %v", distance, got)
		}
	}
}

func TestGenerateApproachesThenOvershootsThenCorrects(t *testing.T) {
	generator := NewGenerator()

	path := generator.Generate(300)
	if len(path) < 4 {
		t.Fatalf("expected at least approach, overshoot and correction points, got %d", len(path))
	}

	overshootIndex := len(path) - 3
	for i := 1; i <= overshootIndex; i++ {
		if path[i].X < path[i-1].X {
			t.Fatalf("expected non-decreasing approach, point %d went from %v to %v", i, path[i-1].X, path[i].X)
		}
	}

	overshoot, correction, final := path[len(path)-3].X, path[len(path)-2].X, path[len(path)-1].X
	if overshoot <= 300 {
		t.Fatalf("expected overshoot past the target, got %v", overshoot)
	}
	if correction >= overshoot || final >= correction {
		t.Fatalf("expected two monotonically decreasing correction steps, got %v, %v, %v", overshoot, correction, final)
	}
}

func TestGeneratePinnedOvershootYieldsExactTriplet(t *testing.T) {
	// Float64 pinned to 0.5 draws an overshoot in the middle of the range.
	generator := NewGenerator(WithEntropy(pinnedEntropy{value: 0.5}))
	profile := DefaultProfile()
	overshoot := profile.OvershootMin + 0.5*(profile.OvershootMax-profile.OvershootMin)

	path := generator.Generate(100)
	if len(path) < 3 {
		t.Fatalf("expected at least the overshoot triplet, got %d points", len(path))
	}

	tail := path[len(path)-3:]
	if tail[0].X != 100+overshoot || tail[1].X != 100+overshoot/2 || tail[2].X != 100 {
		t.Fatalf("expected triplet (%v, %v, 100), got (%v, %v, %v)",
			100+overshoot, 100+overshoot/2, tail[0].X, tail[1].X, tail[2].X)
	}
}

func TestGenerateZeroDistanceStillProducesTriplet(t *testing.T) {
	generator := NewGenerator(WithEntropy(pinnedEntropy{value: 0}))

	path := generator.Generate(0)
	if len(path) != 3 {
		t.Fatalf("expected exactly the overshoot triplet for zero distance, got %d points", len(path))
	}
	if path[2].X != 0 {
		t.Fatalf("expected zero-distance path to end at 0, got %v", path[2].X)
	}
}

func TestGenerateNegativeDistanceMirrorsPath(t *testing.T) {
	forward := NewGenerator(WithEntropy(pinnedEntropy{value: 0.25})).Generate(120)
	backward := NewGenerator(WithEntropy(pinnedEntropy{value: 0.25})).Generate(-120)

	if len(forward) != len(backward) {
		t.Fatalf("expected mirrored path lengths to match, got %d and %d", len(forward), len(backward))
	}
	for i := range forward {
		if math.Abs(forward[i].X+backward[i].X) > 1e-9 {
			t.Fatalf("expected point %d to mirror, got %v and %v", i, forward[i].X, backward[i].X)
		}
	}
}

func TestGenerateSecondaryAxisIsUnpopulated(t *testing.T) {
	path := NewGenerator().Generate(200)
	for i, point := range path {
		if point.Y != 0 {
			t.Fatalf("expected secondary axis of point %d to be zero, got %v", i, point.Y)
		}
	}
}
