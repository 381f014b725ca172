// internal/utils/math.go
package utils

import "math"

// Lerp performs standard linear interpolation
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// EaseToward moves (x, y) the fraction t of the way to (tx, ty).
// Called once per frame this decays the remaining distance by (1-t) each frame.
func EaseToward(x, y, tx, ty, t float64) (float64, float64) {
	return Lerp(x, tx, t), Lerp(y, ty, t)
}

// AimVelocity returns a velocity of the given speed pointing from (fromX, fromY) to (toX, toY).
func AimVelocity(fromX, fromY, toX, toY, speed float64) (vx, vy float64) {
	angle := math.Atan2(toY-fromY, toX-fromX)
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// Distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// CirclesOverlap reports strict overlap; tangent circles do not overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < r1+r2
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
