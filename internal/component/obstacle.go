package component

import "go-dodge/internal/types"

// Obstacle moves in a straight line. Velocity is fixed when it spawns.
type Obstacle struct {
	ID types.EntityID
	Position
	Velocity Velocity
	Renderable
	Edge Edge // which side of the viewport it came from
}

// Edge identifies a viewport side.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
	EdgeCount
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	}
	return "unknown"
}
