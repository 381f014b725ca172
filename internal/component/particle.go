package component

// Particle is a fading spark emitted when the player is hit.
// Its alpha only ever goes down.
type Particle struct {
	Position
	Velocity Velocity
	Renderable
}
