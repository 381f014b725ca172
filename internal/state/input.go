package state

import (
	"log"

	"go-dodge/internal/app"
	"go-dodge/internal/component"
	"go-dodge/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerInput turns mouse, touch and arrow keys into target updates.
// Mouse moves always steer once a player exists; touches only steer a running session.
type PointerInput struct {
	lastX, lastY int
	touchIDs     []ebiten.TouchID
}

func NewPointerInput() *PointerInput {
	return &PointerInput{lastX: -1, lastY: -1}
}

// Apply forwards this tick's input to the game.
func (in *PointerInput) Apply(game *app.Game) {
	if x, y := ebiten.CursorPosition(); x != in.lastX || y != in.lastY {
		in.lastX, in.lastY = x, y
		in.setTarget(game, float64(x), float64(y))
	}

	if game.Phase() == component.Running {
		in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
		if len(in.touchIDs) > 0 {
			x, y := ebiten.TouchPosition(in.touchIDs[0])
			in.setTarget(game, float64(x), float64(y))
		}
	}

	var dx, dy float64
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		dy -= config.KeyboardNudge
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		dy += config.KeyboardNudge
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		dx -= config.KeyboardNudge
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		dx += config.KeyboardNudge
	}
	if dx != 0 || dy != 0 {
		if err := game.NudgeTarget(dx, dy); err != nil {
			log.Printf("Nudge ignored: %v", err)
		}
	}
}

func (in *PointerInput) setTarget(game *app.Game, x, y float64) {
	if err := game.SetTarget(x, y); err != nil {
		log.Printf("Target ignored: %v", err)
	}
}

// justClicked returns the position of a left click or a new touch this tick.
func justClicked() (int, int, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return x, y, true
	}
	return 0, 0, false
}

// confirmPressed reports Space or Enter this tick.
func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
