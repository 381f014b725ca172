package component

// Player is the controllable entity. Radius never changes after creation.
type Player struct {
	Position
	Target Position // eased toward every frame; overwritten by input at any time
	Renderable
}
