// Package terminal drives a game from a tcell screen.
package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-dodge/internal/app"
	"go-dodge/internal/component"
	"go-dodge/internal/config"
	"go-dodge/pkg/render"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var errQuit = errors.New("quit requested")

// Frontend owns the screen side of a terminal session: input, resize and drawing.
type Frontend struct {
	screen   tcell.Screen
	game     *app.Game
	viewport *app.Viewport
	cells    *render.Cells
	tps      int
}

// NewFrontend sizes the viewport to the screen. The screen must already be initialised.
func NewFrontend(screen tcell.Screen, game *app.Game, viewport *app.Viewport, tps int) *Frontend {
	if tps <= 0 {
		tps = config.TicksPerSec
	}
	f := &Frontend{
		screen:   screen,
		game:     game,
		viewport: viewport,
		cells:    render.NewCells(screen),
		tps:      tps,
	}
	f.resize(screen.Size())
	return f
}

func (f *Frontend) resize(cols, rows int) {
	w, h := render.ViewportSize(cols, rows)
	if err := f.viewport.Resize(w, h); err != nil {
		log.Printf("Terminal %dx%d too small: %v", cols, rows, err)
	}
}

// HandleEvent applies one input event. It reports true when the user asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.resize(ev.Size())
		f.screen.Sync()

	case *tcell.EventMouse:
		x, y := ev.Position()
		if f.game.Phase() == component.Running {
			_ = f.game.SetTarget(render.CellCenter(x, y))
		} else if ev.Buttons()&tcell.Button1 != 0 {
			f.game.Start()
		}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			return true
		case tcell.KeyEnter:
			f.startIfWaiting()
		case tcell.KeyUp:
			_ = f.game.NudgeTarget(0, -config.KeyboardNudge)
		case tcell.KeyDown:
			_ = f.game.NudgeTarget(0, config.KeyboardNudge)
		case tcell.KeyLeft:
			_ = f.game.NudgeTarget(-config.KeyboardNudge, 0)
		case tcell.KeyRight:
			_ = f.game.NudgeTarget(config.KeyboardNudge, 0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case ' ':
				f.startIfWaiting()
			}
		}
	}
	return false
}

func (f *Frontend) startIfWaiting() {
	if f.game.Phase() != component.Running {
		f.game.Start()
	}
}

// Frame advances the game one step and redraws.
func (f *Frontend) Frame() {
	f.game.Step()
	f.Draw()
}

func (f *Frontend) Draw() {
	f.screen.Clear()
	f.game.Draw(f.cells)

	cols, rows := f.screen.Size()
	switch f.game.Phase() {
	case component.Idle:
		f.centered(rows/2-1, cols, "DODGE", tcell.ColorAqua)
		f.centered(rows/2+1, cols, "Enter or click to start, q to quit", tcell.ColorWhite)
	case component.Running:
		f.cells.Text(1, 0, fmt.Sprintf("Score: %d", f.game.Score()), tcell.ColorWhite)
	case component.GameOver:
		f.centered(rows/2-1, cols, "GAME OVER", tcell.ColorRed)
		f.centered(rows/2, cols, fmt.Sprintf("Final Score: %d", f.game.Score()), tcell.ColorWhite)
		f.centered(rows/2+2, cols, "Enter or click to restart", tcell.ColorWhite)
	}
	f.screen.Show()
}

func (f *Frontend) centered(row, cols int, s string, fg tcell.Color) {
	f.cells.Text((cols-runewidth.StringWidth(s))/2, row, s, fg)
}

// Run polls input on one goroutine and ticks frames on another until the user
// quits or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	g.Go(func() error {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return nil
			}
			if _, ok := ev.(*tcell.EventInterrupt); ok {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer func() {
			// unblocks PollEvent
			_ = f.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		ticker := time.NewTicker(time.Second / time.Duration(f.tps))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-events:
				if f.HandleEvent(ev) {
					return errQuit
				}
			case <-ticker.C:
				f.Frame()
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
