package app

import (
	"log"

	"go-dodge/internal/config"
)

// Viewport is the live size of the render surface. Spawning and retirement read it
// on every use, so a resize takes effect on the next frame.
type Viewport struct {
	width, height float64
}

// NewViewport creates a viewport, rejecting non-positive sizes.
func NewViewport(width, height int) (*Viewport, error) {
	if err := config.ValidateViewport(width, height); err != nil {
		return nil, err
	}
	return &Viewport{width: float64(width), height: float64(height)}, nil
}

// Resize updates the size. Invalid sizes are rejected and the last good size kept.
func (v *Viewport) Resize(width, height int) error {
	if err := config.ValidateViewport(width, height); err != nil {
		log.Printf("Viewport resize rejected: %v", err)
		return err
	}
	v.width, v.height = float64(width), float64(height)
	return nil
}

func (v *Viewport) Size() (float64, float64) {
	return v.width, v.height
}
