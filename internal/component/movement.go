// component/movement.go
package component

// Position is a point in viewport coordinates
type Position struct {
	X, Y float64
}

// Velocity is a per-frame displacement
type Velocity struct {
	X, Y float64
}
