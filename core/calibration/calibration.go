// Package calibration records real drags performed by a person and derives
// a timing profile from them, so replayed gestures pace themselves the way
// that person actually drags.
package calibration

import (
	"fmt"
	"math"
	"time"

	gestures "github.com/rastkol/swipe-core/core"
)

// Sample is one recorded drag: the reaction pause between press and first
// move, the gaps between consecutive moves, and how far each move strayed
// from the straight press-to-release line.
type Sample struct {
	PressToMove   time.Duration
	MoveIntervals []time.Duration
	Deviations    []float64
}

// Derive folds recorded drags into a timing profile. Press pauses and move
// intervals are bounded by the extremes observed across all samples; the
// jitter amplitude is the largest deviation from the drag line, rounded up.
// Micro delays stay at their stock values since they pace dispatch rather
// than timestamps and are not observable in a recording.
func Derive(samples []Sample) (gestures.Timing, error) {
	if len(samples) == 0 {
		return gestures.Timing{}, fmt.Errorf("no samples to derive timing from")
	}

	timing := gestures.DefaultTiming()
	pressMin, pressMax := time.Duration(math.MaxInt64), time.Duration(0)
	intervalMin, intervalMax := time.Duration(math.MaxInt64), time.Duration(0)
	maxDeviation := 0.0
	intervals := 0

	for _, sample := range samples {
		if sample.PressToMove < pressMin {
			pressMin = sample.PressToMove
		}
		if sample.PressToMove > pressMax {
			pressMax = sample.PressToMove
		}
		for _, interval := range sample.MoveIntervals {
			if interval < intervalMin {
				intervalMin = interval
			}
			if interval > intervalMax {
				intervalMax = interval
			}
			intervals++
		}
		for _, deviation := range sample.Deviations {
			if abs := math.Abs(deviation); abs > maxDeviation {
				maxDeviation = abs
			}
		}
	}

	if intervals == 0 {
		return gestures.Timing{}, fmt.Errorf("no move intervals in any sample")
	}

	timing.PressToMoveMin = pressMin
	timing.PressToMoveMax = pressMax
	timing.MoveIntervalMinMs = intervalMin.Milliseconds()
	timing.MoveIntervalMaxMs = intervalMax.Milliseconds()
	if timing.MoveIntervalMinMs < 1 {
		timing.MoveIntervalMinMs = 1
	}
	if timing.MoveIntervalMaxMs < timing.MoveIntervalMinMs {
		timing.MoveIntervalMaxMs = timing.MoveIntervalMinMs
	}
	timing.JitterAmplitude = int(math.Ceil(maxDeviation))

	return timing, nil
}
