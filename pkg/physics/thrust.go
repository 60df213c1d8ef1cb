package physics

import "math"

// PlayerThrust is the velocity added per tick while thrust is held.
const PlayerThrust = 0.1

// NormalizeDegrees converts an unbounded angle in radians to degrees in
// [-180, 180].
func NormalizeDegrees(radians float64) float64 {
	r := math.Mod(radians*180/math.Pi, 360)
	if r > 180 {
		r -= 360
	}
	if r < -180 {
		r += 360
	}
	return r
}

// DirectionFromAngle maps an angle in degrees, already normalized to
// [-180, 180], onto a direction whose components are linear within each
// quadrant. The result lies on the unit diamond |x|+|y| = 1, not the unit
// circle. An angle of exactly 180 is evaluated as -180.
func DirectionFromAngle(r float64) Vector2D {
	if r == 180 {
		r = -180
	}

	var dir Vector2D
	switch {
	case r >= 0 && r < 90:
		dir.X = 1 - r/90
		dir.Y = r / 90
	case r >= 90 && r < 180:
		q := math.Mod(r, 90) / 90
		dir.X = -q
		dir.Y = 1 - q
	case r >= -90 && r < 0:
		dir.X = 1 + r/90
		dir.Y = r / 90
	case r >= -180 && r < -90:
		q := math.Mod(r, 90) / 90
		dir.X = q
		dir.Y = -(1 + q)
	}
	return dir
}

// ApplyThrust pushes the craft along its facing direction. It must only be
// called on ticks where thrust input is active.
func ApplyThrust(c *Craft, thrust float64) {
	dir := DirectionFromAngle(NormalizeDegrees(c.Rotation))
	c.Velocity = c.Velocity.Add(dir.Scale(thrust))
}
