package gamemath

import "math"

// LaunchVelocity converts an aim angle (radians, upper half-plane) and a
// charged power into a launch velocity. Screen Y grows downward, so a
// positive sine points up.
func LaunchVelocity(angle, power, factor float64) (velX, velY float64) {
	return math.Cos(angle) * factor * power, -math.Sin(angle) * factor * power
}

// Normalize returns the unit vector of (x, y) and its length. A zero vector
// returns (0, 0, 0).
func Normalize(x, y float64) (nx, ny, length float64) {
	length = math.Hypot(x, y)
	if length == 0 {
		return 0, 0, 0
	}
	return x / length, y / length, length
}
