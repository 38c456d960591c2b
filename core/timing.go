package gestures

import "time"

// Timing bounds every randomized interval the sequencer draws. The stock
// values are implementation constants, not caller-tunable per gesture; a
// sequencer can be built with a replacement profile, typically one derived
// by the calibration package from recorded human drags.
type Timing struct {
	// PressToMoveMin/Max bound the pause between the down event and the
	// first move, modeling reaction latency before a drag starts.
	PressToMoveMin time.Duration
	PressToMoveMax time.Duration

	// MoveIntervalMinMs/MaxMs bound the advance of the event timestamp
	// between consecutive samples.
	MoveIntervalMinMs int64
	MoveIntervalMaxMs int64

	// MicroDelayMin/Max bound the wall-clock pause between dispatched
	// moves, modeling variable drag speed. Drawn independently of the
	// timestamp advance.
	MicroDelayMin time.Duration
	MicroDelayMax time.Duration

	// JitterAmplitude bounds the signed secondary-axis perturbation
	// applied to each move, in whole pixels.
	JitterAmplitude int
}

// DefaultTiming returns the stock humanized timing profile.
func DefaultTiming() Timing {
	return Timing{
		PressToMoveMin:    120 * time.Millisecond,
		PressToMoveMax:    240 * time.Millisecond,
		MoveIntervalMinMs: 8,
		MoveIntervalMaxMs: 24,
		MicroDelayMin:     2 * time.Millisecond,
		MicroDelayMax:     6 * time.Millisecond,
		JitterAmplitude:   3,
	}
}

func (t Timing) pressToMovePause(entropy Entropy) time.Duration {
	return durationBetween(t.PressToMoveMin, t.PressToMoveMax, entropy)
}

func (t Timing) moveInterval(entropy Entropy) int64 {
	if t.MoveIntervalMaxMs <= t.MoveIntervalMinMs {
		return t.MoveIntervalMinMs
	}
	return t.MoveIntervalMinMs + int64(entropy.IntN(int(t.MoveIntervalMaxMs-t.MoveIntervalMinMs)))
}

func (t Timing) microDelay(entropy Entropy) time.Duration {
	return durationBetween(t.MicroDelayMin, t.MicroDelayMax, entropy)
}

func (t Timing) jitter(entropy Entropy) float64 {
	if t.JitterAmplitude <= 0 {
		return 0
	}
	return float64(entropy.IntN(2*t.JitterAmplitude+1) - t.JitterAmplitude)
}

func durationBetween(min, max time.Duration, entropy Entropy) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(entropy.Float64()*float64(max-min))
}
