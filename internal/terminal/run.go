package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"gridcaster/internal/game"
	"gridcaster/internal/logger"
)

// Run drives sim on s at the configured tick rate until a quit key, ctx
// cancellation or the event stream ending. s must already be initialised;
// Run does not call Fini.
func Run(ctx context.Context, sim *game.Simulation, s tcell.Screen) error {
	cfg := sim.Config()
	out := NewScreen(s, sim.Projection(), cfg.Colors)
	controls := NewControls(DefaultHold)
	dt := cfg.GetTickMillis()
	log := logger.WithComponent("terminal")

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Duration(dt * float64(time.Millisecond)))
	defer ticker.Stop()

	cols, rows := s.Size()
	log.WithFields(logrus.Fields{"cols": cols, "rows": rows, "tps": cfg.GetTPS()}).Info("terminal frontend started")
	out.Draw(sim)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if controls.Handle(ev) {
					log.Info("quit requested")
					return nil
				}
			case *tcell.EventResize:
				s.Sync()
			}
		case <-ticker.C:
			sim.Tick(dt, controls.Intent())
			out.Draw(sim)
		}
	}
}
