// cmd/viewer_raylib/main.go
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"go-dodge/internal/app"
	"go-dodge/internal/component"
	"go-dodge/internal/config"
	"go-dodge/internal/utils"
	"go-dodge/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	configPath = flag.String("config", "", "path to a JSON settings file")
	seedFlag   = flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	debugFlag  = flag.Bool("debug", false, "write logs to logs/dodge.log")
)

const glowAlpha = 0.25

func toColor(c color.RGBA, alpha float64) rl.Color {
	return rl.Fade(rl.NewColor(c.R, c.G, c.B, 255), float32(alpha))
}

// raylibRenderer draws into whatever target is active, a render texture here.
type raylibRenderer struct{}

func (raylibRenderer) DrawCircle(req render.DrawRequest) {
	if req.Alpha <= 0 || req.Radius <= 0 {
		return
	}
	center := rl.NewVector2(float32(req.X), float32(req.Y))
	if req.Glow > 0 {
		rl.DrawCircleV(center, float32(req.Radius+req.Glow/2), toColor(req.Color, req.Alpha*glowAlpha))
	}
	rl.DrawCircleV(center, float32(req.Radius), toColor(req.Color, req.Alpha))
}

// trailTarget keeps last frame's pixels so each frame only fades them.
type trailTarget struct {
	tex           rl.RenderTexture2D
	width, height int32
}

func newTrailTarget(w, h int32) *trailTarget {
	t := &trailTarget{tex: rl.LoadRenderTexture(w, h), width: w, height: h}
	rl.BeginTextureMode(t.tex)
	rl.ClearBackground(toColor(config.BackgroundColor, 1))
	rl.EndTextureMode()
	return t
}

func (t *trailTarget) unload() {
	rl.UnloadRenderTexture(t.tex)
}

func (t *trailTarget) present() {
	// render textures are stored upside down
	src := rl.NewRectangle(0, 0, float32(t.width), -float32(t.height))
	rl.DrawTextureRec(t.tex.Texture, src, rl.NewVector2(0, 0), rl.White)
}

func drawCentered(text string, y, size int32, clr rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, (int32(rl.GetScreenWidth())-w)/2, y, size, clr)
}

func handleInput(game *app.Game) {
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		m := rl.GetMousePosition()
		if err := game.SetTarget(float64(m.X), float64(m.Y)); err != nil {
			log.Printf("Target ignored: %v", err)
		}
	}
	if game.Phase() == component.Running && rl.GetTouchPointCount() > 0 {
		p := rl.GetTouchPosition(0)
		_ = game.SetTarget(float64(p.X), float64(p.Y))
	}

	var dx, dy float64
	if rl.IsKeyPressed(rl.KeyUp) {
		dy -= config.KeyboardNudge
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		dy += config.KeyboardNudge
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		dx -= config.KeyboardNudge
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		dx += config.KeyboardNudge
	}
	if dx != 0 || dy != 0 {
		_ = game.NudgeTarget(dx, dy)
	}

	confirm := rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) ||
		rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	if confirm && game.Phase() != component.Running {
		game.Start()
	}
}

func drawOverlay(game *app.Game) {
	h := int32(rl.GetScreenHeight())
	switch game.Phase() {
	case component.Idle:
		drawCentered("DODGE", h/2-40, 40, toColor(config.PlayerColor, 1))
		drawCentered("Click or press Enter to start", h/2+20, 20, rl.RayWhite)
	case component.Running:
		rl.DrawText(fmt.Sprintf("Score: %d", game.Score()), config.HUDOffsetX, config.HUDOffsetY, 22, rl.RayWhite)
	case component.GameOver:
		drawCentered("GAME OVER", h/2-50, 40, rl.Red)
		drawCentered(fmt.Sprintf("Final Score: %d", game.Score()), h/2, 24, rl.RayWhite)
		drawCentered("Click or press Enter to restart", h/2+40, 20, rl.RayWhite)
	}
}

func main() {
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seedFlag != 0 {
		settings.Seed = *seedFlag
	}
	if *debugFlag {
		settings.Debug = true
	}
	if f := config.SetupLogging(settings.Debug); f != nil {
		defer f.Close()
	}

	viewport, err := app.NewViewport(settings.Width, settings.Height)
	if err != nil {
		log.Fatal(err)
	}
	rng := utils.NewPRNGService(settings.Seed)
	log.Printf("Seed %d", rng.Seed())
	game := app.NewGame(viewport, rng)

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(settings.Width), int32(settings.Height), "Dodge | mouse or arrows to steer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.TPS))

	target := newTrailTarget(int32(settings.Width), int32(settings.Height))
	defer func() { target.unload() }()
	pause := newPauseButton(float32(settings.Width)-40, 36, 12)

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
			if err := viewport.Resize(w, h); err == nil {
				target.unload()
				target = newTrailTarget(int32(w), int32(h))
				pause.X = float32(w) - 40
			}
		}

		if game.Phase() != component.Running && pause.Paused {
			pause.Toggle()
		}
		if game.Phase() == component.Running && (rl.IsKeyPressed(rl.KeyP) ||
			(rl.IsMouseButtonPressed(rl.MouseButtonLeft) && pause.Clicked(rl.GetMousePosition()))) {
			pause.Toggle()
		}
		if !pause.Paused {
			handleInput(game)
			game.Step()
		}

		rl.BeginTextureMode(target.tex)
		rl.DrawRectangle(0, 0, target.width, target.height, toColor(config.BackgroundColor, config.TrailAlpha))
		game.Draw(raylibRenderer{})
		rl.EndTextureMode()

		rl.BeginDrawing()
		rl.ClearBackground(toColor(config.BackgroundColor, 1))
		target.present()
		drawOverlay(game)
		if game.Phase() == component.Running {
			pause.Draw(rl.RayWhite)
		}
		if pause.Paused {
			drawCentered("PAUSED", int32(rl.GetScreenHeight())/2-20, 40, rl.RayWhite)
		}
		rl.EndDrawing()
	}
}
