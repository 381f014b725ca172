// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"go-dodge/internal/app"
	"go-dodge/internal/config"
	"go-dodge/internal/state"
	"go-dodge/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configPath = flag.String("config", "", "path to a JSON settings file")
	seedFlag   = flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	debugFlag  = flag.Bool("debug", false, "write logs to logs/dodge.log")
	pprofAddr  = flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
)

type AppGame struct {
	stateMachine *state.StateMachine
	viewport     *app.Viewport
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout keeps the logical screen equal to the window so the viewport tracks resizes.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if err := a.viewport.Resize(outsideWidth, outsideHeight); err != nil {
		w, h := a.viewport.Size()
		return int(w), int(h)
	}
	return outsideWidth, outsideHeight
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

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	viewport, err := app.NewViewport(settings.Width, settings.Height)
	if err != nil {
		log.Fatal(err)
	}
	rng := utils.NewPRNGService(settings.Seed)
	log.Printf("Seed %d", rng.Seed())
	game := app.NewGame(viewport, rng)

	ctx, err := state.NewContext(game)
	if err != nil {
		log.Fatal(err)
	}
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, ctx))

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle("Dodge")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(settings.TPS)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(&AppGame{stateMachine: sm, viewport: viewport}); err != nil {
		log.Fatal(err)
	}
}
