package game

import (
	"time"

	"github.com/sirupsen/logrus"
)

const perfLogInterval = 5 * time.Second

// updatePerformanceMetrics feeds game counters to the frame monitor
func (s *Simulation) updatePerformanceMetrics() {
	searches := 0
	if s.pathfinder != nil {
		searches = s.pathfinder.Stats().Searches
	}
	s.monitor.UpdateGameMetrics(s.list.Len(), s.Alive(), searches)
}

// maybeLogFrameStats logs a stage snapshot every perfLogInterval when
// logging.frame_stats is on, plus any stage over the tick budget.
func (s *Simulation) maybeLogFrameStats(now time.Time) {
	if !s.cfg.Logging.FrameStats {
		return
	}
	if !s.lastStatsLog.IsZero() && now.Sub(s.lastStatsLog) < perfLogInterval {
		return
	}
	s.lastStatsLog = now

	s.log.WithFields(logrus.Fields(s.monitor.GetDetailedStats())).Info("frame stats")

	budget := time.Duration(s.cfg.GetTickMillis() * float64(time.Millisecond))
	for _, alert := range s.monitor.CheckPerformanceAlerts(budget) {
		s.log.WithFields(logrus.Fields{
			"type":      alert.Type,
			"value":     alert.Value,
			"threshold": alert.Threshold,
		}).Warn(alert.Message)
	}
}
