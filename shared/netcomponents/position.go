package netcomponents

import "math"

// Pose is the renderable placement of an entity: world position and heading.
type Pose struct {
	X, Y float64
	R    float64 // radians
}

// Lerp interpolates a scalar. The endpoints are returned exactly.
func Lerp(from, to, t float64) float64 {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	return from + (to-from)*t
}

// LerpAngle interpolates between two headings along the shortest arc.
func LerpAngle(from, to, t float64) float64 {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	return from + NormalizeAngle(to-from)*t
}

// NormalizeAngle wraps a into [-pi, pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// LerpPose interpolates position linearly and heading along the shortest arc.
func LerpPose(from, to Pose, t float64) Pose {
	return Pose{
		X: Lerp(from.X, to.X, t),
		Y: Lerp(from.Y, to.Y, t),
		R: LerpAngle(from.R, to.R, t),
	}
}
