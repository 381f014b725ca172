package terminal

import (
	"context"
	"strings"
	"testing"
	"time"

	"go-dodge/internal/app"
	"go-dodge/internal/component"
	"go-dodge/internal/utils"

	"github.com/gdamore/tcell/v2"
)

func newTestFrontend(t *testing.T, cols, rows int) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)

	vp, err := app.NewViewport(800, 600)
	if err != nil {
		t.Fatal(err)
	}
	game := app.NewGame(vp, utils.NewPRNGService(5))
	return NewFrontend(s, game, vp, 60), s
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func screenText(s tcell.Screen) string {
	cols, rows := s.Size()
	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r, _, _, _ := s.GetContent(col, row)
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestViewportFollowsScreen(t *testing.T) {
	f, _ := newTestFrontend(t, 100, 50)
	if w, h := f.viewport.Size(); w != 800 || h != 800 {
		t.Fatalf("viewport = %vx%v, want 800x800", w, h)
	}
	f.HandleEvent(tcell.NewEventResize(50, 20))
	if w, h := f.viewport.Size(); w != 400 || h != 320 {
		t.Fatalf("viewport after resize = %vx%v, want 400x320", w, h)
	}
	f.HandleEvent(tcell.NewEventResize(0, 0))
	if w, h := f.viewport.Size(); w != 400 || h != 320 {
		t.Fatalf("empty resize changed viewport to %vx%v", w, h)
	}
}

func TestEnterStartsAndArrowsNudge(t *testing.T) {
	f, _ := newTestFrontend(t, 100, 50)
	if quit := f.HandleEvent(key(tcell.KeyEnter)); quit {
		t.Fatal("Enter asked to quit")
	}
	if f.game.Phase() != component.Running {
		t.Fatalf("phase = %v, want running", f.game.Phase())
	}
	p := f.game.World.Player
	x, y := p.Target.X, p.Target.Y

	f.HandleEvent(key(tcell.KeyRight))
	f.HandleEvent(key(tcell.KeyUp))
	if p.Target.X != x+30 || p.Target.Y != y-30 {
		t.Fatalf("target = (%v, %v), want (%v, %v)", p.Target.X, p.Target.Y, x+30, y-30)
	}
}

func TestMouseStartsThenSteers(t *testing.T) {
	f, _ := newTestFrontend(t, 100, 50)
	f.HandleEvent(tcell.NewEventMouse(3, 3, tcell.ButtonNone, tcell.ModNone))
	if f.game.Phase() != component.Idle {
		t.Fatal("mouse motion started the game")
	}
	f.HandleEvent(tcell.NewEventMouse(3, 3, tcell.Button1, tcell.ModNone))
	if f.game.Phase() != component.Running {
		t.Fatal("click did not start the game")
	}
	f.HandleEvent(tcell.NewEventMouse(10, 4, tcell.ButtonNone, tcell.ModNone))
	if p := f.game.World.Player; p.Target.X != 84 || p.Target.Y != 72 {
		t.Fatalf("target = (%v, %v), want cell centre (84, 72)", p.Target.X, p.Target.Y)
	}
}

func TestEnterWhileRunningDoesNotRestart(t *testing.T) {
	f, _ := newTestFrontend(t, 100, 50)
	f.HandleEvent(key(tcell.KeyEnter))
	for i := 0; i < 5; i++ {
		f.game.Step()
	}
	f.HandleEvent(runeKey(' '))
	if f.game.World.Frame != 5 {
		t.Fatalf("frame = %d, session was restarted", f.game.World.Frame)
	}
}

func TestQuitKeys(t *testing.T) {
	f, _ := newTestFrontend(t, 100, 50)
	for _, ev := range []*tcell.EventKey{runeKey('q'), key(tcell.KeyEscape), key(tcell.KeyCtrlC)} {
		if !f.HandleEvent(ev) {
			t.Errorf("%v did not quit", ev.Name())
		}
	}
}

func TestDrawShowsPhaseText(t *testing.T) {
	f, s := newTestFrontend(t, 100, 50)
	f.Draw()
	if !strings.Contains(screenText(s), "DODGE") {
		t.Fatal("idle screen missing title")
	}

	f.game.Start()
	f.Draw()
	if !strings.Contains(screenText(s), "Score: 0") {
		t.Fatal("running screen missing score")
	}

	f.game.World.Score = 40
	f.game.StateSystem.SwitchToGameOver()
	f.Draw()
	if !strings.Contains(screenText(s), "Final Score: 40") {
		t.Fatal("game over screen missing final score")
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	f, s := newTestFrontend(t, 80, 24)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()

	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run = %v, want nil", err)
		}
	case <-ctx.Done():
		t.Fatal("Run did not return after quit")
	}
	if f.game.Phase() != component.Running {
		t.Fatalf("phase = %v, Enter was not applied before quit", f.game.Phase())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f, _ := newTestFrontend(t, 80, 24)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run ignored cancellation")
	}
}
