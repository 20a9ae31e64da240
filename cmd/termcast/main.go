// Command termcast plays a level in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"gridcaster/internal/config"
	"gridcaster/internal/game"
	"gridcaster/internal/graphics"
	"gridcaster/internal/logger"
	"gridcaster/internal/monster"
	"gridcaster/internal/terminal"
	"gridcaster/internal/world"
)

func main() {
	var (
		configPath string
		levelPath  string
		logPath    string
		width      int
		height     int
	)
	flag.StringVar(&configPath, "config", "config.yaml", "Configuration file")
	flag.StringVar(&levelPath, "level", "", "Level file (default from config)")
	flag.StringVar(&logPath, "log", "termcast.log", "Log file; the terminal itself is busy")
	flag.IntVar(&width, "w", 320, "Projection width in pixels")
	flag.IntVar(&height, "h", 200, "Projection height in pixels")
	flag.Parse()

	if err := run(configPath, levelPath, logPath, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "termcast: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, levelPath, logPath string, width, height int) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// A small projection keeps per-cell sampling cheap; turning is on the
	// keyboard since there is no mouse look.
	cfg.Display.ScreenWidth = width
	cfg.Display.ScreenHeight = height
	cfg.Camera.NumRays = width / 2
	cfg.Camera.TextureSize = 64
	cfg.Player.KeyRotation = true
	if err := cfg.Validate(); err != nil {
		return err
	}
	if levelPath == "" {
		levelPath = cfg.Level.Path
	}

	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logFile.Close()
	logger.Init(cfg.Logging.Level, cfg.Logging.Format, logFile)

	if _, err := monster.LoadMonsterConfig("assets/monsters.yaml"); err != nil {
		logger.WithComponent("termcast").WithError(err).Warn("failed to load monster config, using defaults")
	}
	level, err := world.LoadLevel(levelPath)
	if err != nil {
		return err
	}
	sim := game.NewSimulation(cfg, level, graphics.NewSpriteManager("assets", cfg.Camera.TextureSize), nil)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := terminal.Run(ctx, sim, screen); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
