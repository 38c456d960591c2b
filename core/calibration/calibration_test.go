package calibration

import (
	"testing"
	"time"

	"github.com/rastkol/swipe-core/core/pointer"
)

func TestDeriveBoundsFollowObservedExtremes(t *testing.T) {
	samples := []Sample{
		{
			PressToMove:   150 * time.Millisecond,
			MoveIntervals: []time.Duration{10 * time.Millisecond, 14 * time.Millisecond},
			Deviations:    []float64{1.2, -2.4},
		},
		{
			PressToMove:   90 * time.Millisecond,
			MoveIntervals: []time.Duration{6 * time.Millisecond, 30 * time.Millisecond},
			Deviations:    []float64{0.5, 1.7},
		},
	}

	timing, err := Derive(samples)
	if err != nil {
		t.Fatalf("expected derive to succeed, got %v", err)
	}

	if timing.PressToMoveMin != 90*time.Millisecond {
		t.Fatalf("expected press-to-move min 90ms, got %v", timing.PressToMoveMin)
	}
	if timing.PressToMoveMax != 150*time.Millisecond {
		t.Fatalf("expected press-to-move max 150ms, got %v", timing.PressToMoveMax)
	}
	if timing.MoveIntervalMinMs != 6 {
		t.Fatalf("expected move interval min 6ms, got %d", timing.MoveIntervalMinMs)
	}
	if timing.MoveIntervalMaxMs != 30 {
		t.Fatalf("expected move interval max 30ms, got %d", timing.MoveIntervalMaxMs)
	}
	if timing.JitterAmplitude != 3 {
		t.Fatalf("expected jitter amplitude 3, got %d", timing.JitterAmplitude)
	}
}

func TestDeriveKeepsStockMicroDelays(t *testing.T) {
	samples := []Sample{{
		PressToMove:   100 * time.Millisecond,
		MoveIntervals: []time.Duration{12 * time.Millisecond},
	}}

	timing, err := Derive(samples)
	if err != nil {
		t.Fatalf("expected derive to succeed, got %v", err)
	}

	if timing.MicroDelayMin != 2*time.Millisecond || timing.MicroDelayMax != 6*time.Millisecond {
		t.Fatalf("expected stock micro delays, got %v and %v", timing.MicroDelayMin, timing.MicroDelayMax)
	}
}

func TestDeriveClampsSubMillisecondIntervals(t *testing.T) {
	samples := []Sample{{
		PressToMove:   100 * time.Millisecond,
		MoveIntervals: []time.Duration{200 * time.Microsecond, 800 * time.Microsecond},
	}}

	timing, err := Derive(samples)
	if err != nil {
		t.Fatalf("expected derive to succeed, got %v", err)
	}

	if timing.MoveIntervalMinMs != 1 {
		t.Fatalf("expected clamped move interval min 1ms, got %d", timing.MoveIntervalMinMs)
	}
	if timing.MoveIntervalMaxMs != 1 {
		t.Fatalf("expected clamped move interval max 1ms, got %d", timing.MoveIntervalMaxMs)
	}
}

func TestDeriveRejectsEmptyInput(t *testing.T) {
	if _, err := Derive(nil); err == nil {
		t.Fatalf("expected derive to fail without samples")
	}
	if _, err := Derive([]Sample{{PressToMove: time.Second}}); err == nil {
		t.Fatalf("expected derive to fail without move intervals")
	}
}

func TestDeviationsFromLineAreSignedPerpendicularDistances(t *testing.T) {
	start := pointer.Point{X: 0, Y: 0}
	end := pointer.Point{X: 100, Y: 0}
	points := []pointer.Point{
		{X: 25, Y: 0},
		{X: 50, Y: -3},
		{X: 75, Y: 2},
	}

	deviations := deviationsFromLine(start, end, points)
	if len(deviations) != 3 {
		t.Fatalf("expected 3 deviations, got %d", len(deviations))
	}
	if deviations[0] != 0 {
		t.Fatalf("expected on-line point to have zero deviation, got %v", deviations[0])
	}
	if deviations[1] != 3 {
		t.Fatalf("expected deviation 3, got %v", deviations[1])
	}
	if deviations[2] != -2 {
		t.Fatalf("expected deviation -2, got %v", deviations[2])
	}
}

func TestDeviationsFromDegenerateLineFallBackToOffsets(t *testing.T) {
	start := pointer.Point{X: 10, Y: 10}
	deviations := deviationsFromLine(start, start, []pointer.Point{{X: 13, Y: 14}})
	if len(deviations) != 1 || deviations[0] != 5 {
		t.Fatalf("expected offset distance 5, got %v", deviations)
	}
}
