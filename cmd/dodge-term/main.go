// cmd/dodge-term/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"go-dodge/internal/app"
	"go-dodge/internal/config"
	"go-dodge/internal/terminal"
	"go-dodge/internal/utils"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

var (
	configPath = flag.String("config", "", "path to a JSON settings file")
	seedFlag   = flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	debugFlag  = flag.Bool("debug", false, "write logs to logs/dodge.log")
)

func run() error {
	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		return err
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "creating screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initialising screen")
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	// replaced by the screen size straight away
	viewport, err := app.NewViewport(settings.Width, settings.Height)
	if err != nil {
		return err
	}
	rng := utils.NewPRNGService(settings.Seed)
	log.Printf("Seed %d", rng.Seed())
	game := app.NewGame(viewport, rng)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return terminal.NewFrontend(screen, game, viewport, settings.TPS).Run(ctx)
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
