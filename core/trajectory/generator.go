package trajectory

import (
	"math"
	"math/rand/v2"

	"github.com/rastkol/swipe-core/core/pointer"
)

// Entropy is the randomness the generator consumes. The overshoot draw is
// the only random input to trajectory generation; pin it for reproducible
// paths.
type Entropy interface {
	Float64() float64
}

type GeneratorOption func(*Generator)

// WithProfile replaces the stock motion profile.
func WithProfile(profile Profile) GeneratorOption {
	return func(g *Generator) { g.profile = profile }
}

// WithEntropy replaces the overshoot randomness source.
func WithEntropy(entropy Entropy) GeneratorOption {
	return func(g *Generator) {
		if entropy != nil {
			g.entropy = entropy
		}
	}
}

// Generator produces relative displacement paths along the primary axis.
// The secondary axis of every produced point is zero; jitter is the
// sequencer's concern.
type Generator struct {
	profile Profile
	entropy Entropy
}

func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		profile: DefaultProfile(),
		entropy: systemEntropy{},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate returns the ordered relative displacements for a drag covering
// totalDistance along the primary axis. The distance is signed; a negative
// value mirrors the whole path.
//
// The returned path is never empty and its last element is exactly
// totalDistance. A zero distance still yields the overshoot/correction
// triplet, which reads as contact tremor for a press-in-place gesture.
func (g *Generator) Generate(totalDistance float64) []pointer.Point {
	distance := math.Abs(totalDistance)
	sign := 1.0
	if totalDistance < 0 {
		sign = -1.0
	}

	profile := g.profile
	commit := distance * profile.CommitRatio

	var path []float64
	position, velocity := 0.0, 0.0
	for position < distance {
		accel := profile.Accel
		if position >= commit {
			accel = profile.Decel
		}

		var covered float64
		covered, velocity = profile.step(velocity, accel)
		if position >= commit && velocity < profile.MinVelocity {
			velocity = profile.MinVelocity
		}

		position += covered
		if position >= distance {
			break
		}
		path = append(path, position)
	}

	overshoot := profile.OvershootMin + g.entropy.Float64()*(profile.OvershootMax-profile.OvershootMin)
	path = append(path, distance+overshoot, distance+overshoot/2, distance)

	points := make([]pointer.Point, len(path))
	for i, offset := range path {
		points[i] = pointer.Point{X: sign * offset}
	}
	// The final point must land exactly on the requested displacement,
	// sign included.
	points[len(points)-1] = pointer.Point{X: totalDistance}

	return points
}

type systemEntropy struct{}

func (systemEntropy) Float64() float64 { return rand.Float64() }
