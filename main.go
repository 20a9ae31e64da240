package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"gridcaster/internal/audio"
	"gridcaster/internal/config"
	"gridcaster/internal/display"
	"gridcaster/internal/game"
	"gridcaster/internal/graphics"
	"gridcaster/internal/logger"
	"gridcaster/internal/monster"
	"gridcaster/internal/world"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")
	logger.Init(cfg.Logging.Level, cfg.Logging.Format, nil)
	log := logger.WithComponent("main")

	// Enemy roster; unknown kinds fall back to the enemy section of config.yaml
	if _, err := monster.LoadMonsterConfig("assets/monsters.yaml"); err != nil {
		log.WithError(err).Warn("failed to load monster config, using defaults")
	}

	level := world.MustLoadLevel(cfg.Level.Path)
	assets := graphics.NewSpriteManager("assets", cfg.Camera.TextureSize)

	var sink audio.Sink = audio.Nop{}
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			log.WithError(err).Warn("audio disabled")
		} else {
			defer sm.Cleanup()
			sink = sm
		}
	}

	sim := game.NewSimulation(cfg, level, assets, sink)
	if err := display.Run(sim); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("game exited")
	}
}
