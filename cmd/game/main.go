package main

import (
	"flag"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/coinrun/internal/application/game"
	"github.com/younwookim/coinrun/internal/application/scene/menu"
	"github.com/younwookim/coinrun/internal/application/session"
	"github.com/younwookim/coinrun/internal/infrastructure/config"
	"github.com/younwookim/coinrun/internal/infrastructure/theme"
)

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Re-run a recorded file headless and report the outcome")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "coinrun",
	})

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		logger.Fatal("config subfs", "err", err)
	}
	cfg, err := config.NewFSLoader(fsys).LoadAll()
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	if *replayFlag != "" {
		if err := runReplay(cfg.Physics, *replayFlag, logger); err != nil {
			logger.Fatal("replay", "err", err)
		}
		return
	}

	// The theme endpoint is optional: without credentials the session
	// plays with the built-in fallback theme.
	provider := theme.NewHTTPProvider(
		os.Getenv("COINRUN_THEME_URL"),
		os.Getenv("COINRUN_THEME_KEY"),
		logger,
	)
	sess := session.New(cfg.Physics, provider, logger)

	screenW := cfg.Physics.Display.ScreenWidth
	screenH := cfg.Physics.Display.ScreenHeight
	g := game.New(menu.New(sess, *recordFlag, screenW, screenH), screenW, screenH)

	ebiten.SetWindowSize(screenW*cfg.Physics.Display.Scale, screenH*cfg.Physics.Display.Scale)
	ebiten.SetWindowTitle("Coin Run")
	ebiten.SetTPS(cfg.Physics.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game loop", "err", err)
	}
}
