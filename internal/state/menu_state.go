// internal/state/menu_state.go
package state

import (
	"go-dodge/internal/config"
	"go-dodge/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// MenuState is the start screen. It is also where Escape returns to after stopping a session.
type MenuState struct {
	sm      *StateMachine
	ctx     *Context
	overlay *ui.Overlay
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{
		sm:      sm,
		ctx:     ctx,
		overlay: ui.NewOverlay("Dodge", "Start", ctx.TitleFace, ctx.ButtonFace),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	w, h := m.ctx.Game.Viewport.Size()
	m.overlay.Layout(int(w), int(h))

	start := confirmPressed()
	if x, y, ok := justClicked(); ok && m.overlay.Clicked(x, y) {
		start = true
	}
	if start {
		m.ctx.Game.Start()
		m.sm.SetState(NewPlayState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	canvas := ui.NewCanvas(screen)
	canvas.Fade(config.BackgroundColor, 1)
	m.ctx.Game.Draw(canvas)
	m.overlay.Draw(screen)
}

func (m *MenuState) Exit() {}
