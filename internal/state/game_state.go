// internal/state/game_state.go
package state

import (
	"fmt"

	"go-dodge/internal/component"
	"go-dodge/internal/config"
	"go-dodge/internal/event"
	"go-dodge/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayState runs a session and shows the game-over panel once it ends.
type PlayState struct {
	sm       *StateMachine
	ctx      *Context
	gameOver *ui.Overlay
	listener event.Listener
}

func NewPlayState(sm *StateMachine, ctx *Context) *PlayState {
	ps := &PlayState{
		sm:       sm,
		ctx:      ctx,
		gameOver: ui.NewOverlay("", "Restart", ctx.TitleFace, ctx.ButtonFace),
	}
	ps.listener = event.Func(ps.onGameOver)
	return ps
}

func (g *PlayState) onGameOver(e event.Event) {
	if score, ok := e.Data.(int); ok {
		g.gameOver.Title = fmt.Sprintf("Final Score: %d", score)
	}
}

func (g *PlayState) Enter() {
	g.ctx.Game.Subscribe(event.GameOver, g.listener)
	if g.ctx.Game.Phase() == component.GameOver && g.gameOver.Title == "" {
		g.gameOver.Title = fmt.Sprintf("Final Score: %d", g.ctx.Game.Score())
	}
}

func (g *PlayState) Update() {
	game := g.ctx.Game

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		game.Stop()
		g.sm.SetState(NewMenuState(g.sm, g.ctx))
		return
	}
	if game.Phase() == component.Running && inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.ctx.Input.Apply(game)

	if game.Phase() == component.GameOver {
		w, h := game.Viewport.Size()
		g.gameOver.Layout(int(w), int(h))
		restart := confirmPressed()
		if x, y, ok := justClicked(); ok && g.gameOver.Clicked(x, y) {
			restart = true
		}
		if restart {
			g.gameOver.Title = ""
			game.Restart()
		}
	}

	game.Step()
}

func (g *PlayState) Draw(screen *ebiten.Image) {
	canvas := ui.NewCanvas(screen)
	canvas.Fade(config.BackgroundColor, config.TrailAlpha)
	g.ctx.Game.Draw(canvas)
	g.ctx.Score.Draw(screen)
	if g.ctx.Game.Phase() == component.GameOver {
		g.gameOver.Draw(screen)
	}
}

func (g *PlayState) Exit() {
	g.ctx.Game.EventDispatcher.Unsubscribe(event.GameOver, g.listener)
}
