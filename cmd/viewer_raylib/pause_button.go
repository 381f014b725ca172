package main

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// pauseButton toggles between two bars and a play triangle, pulsing briefly on each toggle.
type pauseButton struct {
	X, Y       float32
	Size       float32
	Paused     bool
	lastToggle time.Time
}

func newPauseButton(x, y, size float32) *pauseButton {
	return &pauseButton{X: x, Y: y, Size: size}
}

func (b *pauseButton) Toggle() {
	b.Paused = !b.Paused
	b.lastToggle = time.Now()
}

func (b *pauseButton) Clicked(pos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(pos, rl.NewVector2(b.X, b.Y), b.Size*1.5)
}

func (b *pauseButton) Draw(clr rl.Color) {
	elapsed := time.Since(b.lastToggle).Seconds()
	s := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))

	if b.Paused {
		p1 := rl.NewVector2(b.X-s, b.Y-s*1.2)
		p2 := rl.NewVector2(b.X-s, b.Y+s*1.2)
		p3 := rl.NewVector2(b.X+s, b.Y)
		rl.DrawTriangle(p1, p2, p3, clr)
		return
	}
	w, h, gap := s*0.6, s*2, s*0.4
	rl.DrawRectangleV(rl.NewVector2(b.X-w-gap/2, b.Y-h/2), rl.NewVector2(w, h), clr)
	rl.DrawRectangleV(rl.NewVector2(b.X+gap/2, b.Y-h/2), rl.NewVector2(w, h), clr)
}
