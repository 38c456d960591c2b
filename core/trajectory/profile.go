// Package trajectory generates humanized primary-axis motion paths for
// drag gestures: a constant-acceleration run-up, a constant-deceleration
// approach, a slight overshoot past the target, and a two-step correction
// back onto it.
package trajectory

// Profile holds the constant-acceleration regime parameters of the motion
// model. All distances are in pixels and the timestep is dimensionless;
// the generator advances position with s = v·t + ½·a·t² per step.
type Profile struct {
	// Accel is the acceleration applied while position is below
	// CommitRatio of the total distance (px/step²).
	Accel float64
	// Decel is the deceleration applied past CommitRatio (negative,
	// px/step²).
	Decel float64
	// CommitRatio is the fraction of the total distance at which the
	// profile switches from acceleration to deceleration.
	CommitRatio float64
	// Timestep is the fixed integration step.
	Timestep float64
	// MinVelocity floors the velocity once past CommitRatio so the
	// deceleration regime cannot stall short of the target.
	MinVelocity float64
	// OvershootMin and OvershootMax bound the uniform draw for how far
	// the path slides past the target before correcting back (px).
	OvershootMin float64
	OvershootMax float64
}

// DefaultProfile returns the stock finger-drag motion profile.
func DefaultProfile() Profile {
	return Profile{
		Accel:        6.0,
		Decel:        -4.0,
		CommitRatio:  0.7,
		Timestep:     0.5,
		MinVelocity:  2.0,
		OvershootMin: 2.0,
		OvershootMax: 8.0,
	}
}

// step advances one integration step and returns the distance covered and
// the new velocity.
func (p Profile) step(v, a float64) (float64, float64) {
	t := p.Timestep
	return v*t + 0.5*a*t*t, v + a*t
}
