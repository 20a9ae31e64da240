package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Stage names one timed step of a frame or tick.
type Stage int

const (
	StageFrame Stage = iota
	StageRaycast
	StageSprites
	StageSort
	StageAgents
	StageCompose
	numStages
)

var stageNames = [numStages]string{
	StageFrame:   "frame",
	StageRaycast: "raycast",
	StageSprites: "sprites",
	StageSort:    "sort",
	StageAgents:  "agents",
	StageCompose: "compose",
}

func (s Stage) String() string {
	if s < 0 || s >= numStages {
		return "unknown"
	}
	return stageNames[s]
}

// smoothing is the weight of the newest sample in the rolling averages.
const smoothing = 0.1

// FrameMonitor tracks per-stage timings for the render and logic loops
type FrameMonitor struct {
	// Last sample per stage, nanoseconds
	last       [numStages]atomic.Uint64
	frameCount atomic.Uint64
	tickCount  atomic.Uint64

	// Game-specific metrics
	entriesRendered atomic.Uint64
	agentsAlive     atomic.Int32
	routeSearches   atomic.Uint64

	// Statistics
	mutex     sync.RWMutex
	avg       [numStages]float64 // nanoseconds
	startTime time.Time

	// Configuration
	enableDetailed bool
}

// NewFrameMonitor creates a new frame monitor
func NewFrameMonitor() *FrameMonitor {
	return &FrameMonitor{
		startTime:      time.Now(),
		enableDetailed: true,
	}
}

// StageTimer measures one stage
type StageTimer struct {
	monitor   *FrameMonitor
	stage     Stage
	startTime time.Time
}

// Start begins timing a stage
func (fm *FrameMonitor) Start(stage Stage) *StageTimer {
	return &StageTimer{
		monitor:   fm,
		stage:     stage,
		startTime: time.Now(),
	}
}

// End completes the stage timing and returns its duration
func (st *StageTimer) End() time.Duration {
	d := time.Since(st.startTime)
	st.monitor.Record(st.stage, d)
	return d
}

// Record stores a sample for stage
func (fm *FrameMonitor) Record(stage Stage, d time.Duration) {
	if stage < 0 || stage >= numStages {
		return
	}
	ns := uint64(d.Nanoseconds())
	fm.last[stage].Store(ns)
	switch stage {
	case StageFrame:
		fm.frameCount.Add(1)
	case StageAgents:
		fm.tickCount.Add(1)
	}

	fm.mutex.Lock()
	if !fm.enableDetailed {
		fm.mutex.Unlock()
		return
	}
	if fm.avg[stage] == 0 {
		fm.avg[stage] = float64(ns)
	} else {
		fm.avg[stage] += smoothing * (float64(ns) - fm.avg[stage])
	}
	fm.mutex.Unlock()
}

// ProfiledFunction wraps a function with stage timing
func (fm *FrameMonitor) ProfiledFunction(stage Stage, fn func()) time.Duration {
	t := fm.Start(stage)
	fn()
	return t.End()
}

// UpdateGameMetrics updates game-specific metrics
func (fm *FrameMonitor) UpdateGameMetrics(entries int, agentsAlive int, routeSearches int) {
	fm.entriesRendered.Store(uint64(entries))
	fm.agentsAlive.Store(int32(agentsAlive))
	fm.routeSearches.Store(uint64(routeSearches))
}

// Average returns the rolling average for stage
func (fm *FrameMonitor) Average(stage Stage) time.Duration {
	if stage < 0 || stage >= numStages {
		return 0
	}
	fm.mutex.RLock()
	defer fm.mutex.RUnlock()
	return time.Duration(fm.avg[stage])
}

// Last returns the latest sample for stage
func (fm *FrameMonitor) Last(stage Stage) time.Duration {
	if stage < 0 || stage >= numStages {
		return 0
	}
	return time.Duration(fm.last[stage].Load())
}

// FPS derives frames per second from the average frame time
func (fm *FrameMonitor) FPS() float64 {
	avg := fm.Average(StageFrame)
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// GetDetailedStats returns detailed performance statistics
func (fm *FrameMonitor) GetDetailedStats() map[string]interface{} {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	fm.mutex.RLock()
	uptime := time.Since(fm.startTime)
	fm.mutex.RUnlock()

	stats := map[string]interface{}{
		"uptime_seconds":  uptime.Seconds(),
		"frame_count":     fm.frameCount.Load(),
		"tick_count":      fm.tickCount.Load(),
		"fps":             fm.FPS(),
		"entries":         fm.entriesRendered.Load(),
		"agents_alive":    fm.agentsAlive.Load(),
		"route_searches":  fm.routeSearches.Load(),
		"memory_alloc_mb": memStats.Alloc / 1024 / 1024,
		"gc_cycles":       memStats.NumGC,
	}
	for s := Stage(0); s < numStages; s++ {
		stats["avg_"+s.String()+"_ms"] = float64(fm.Average(s)) / float64(time.Millisecond)
	}
	return stats
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts checks for performance issues and returns alerts.
// budget is the frame time the game loop targets.
func (fm *FrameMonitor) CheckPerformanceAlerts(budget time.Duration) []PerformanceAlert {
	alerts := make([]PerformanceAlert, 0)
	currentTime := time.Now()

	if avg := fm.Average(StageFrame); budget > 0 && avg > budget {
		alerts = append(alerts, PerformanceAlert{
			Type:      "slow_frame",
			Message:   "Average frame time is over budget",
			Value:     float64(avg) / float64(time.Millisecond),
			Threshold: float64(budget) / float64(time.Millisecond),
			Timestamp: currentTime,
		})
	}

	frame := fm.Average(StageFrame)
	raycast := fm.Average(StageRaycast)
	if frame > 0 && raycast > frame*3/4 {
		alerts = append(alerts, PerformanceAlert{
			Type:      "raycast_bound",
			Message:   "Raycasting takes most of the frame",
			Value:     float64(raycast) / float64(frame),
			Threshold: 0.75,
			Timestamp: currentTime,
		})
	}

	return alerts
}

// EnableDetailedLogging enables/disables rolling averages
func (fm *FrameMonitor) EnableDetailedLogging(enabled bool) {
	fm.mutex.Lock()
	defer fm.mutex.Unlock()
	fm.enableDetailed = enabled
}

// Reset resets all counters
func (fm *FrameMonitor) Reset() {
	for i := range fm.last {
		fm.last[i].Store(0)
	}
	fm.frameCount.Store(0)
	fm.tickCount.Store(0)
	fm.entriesRendered.Store(0)
	fm.agentsAlive.Store(0)
	fm.routeSearches.Store(0)

	fm.mutex.Lock()
	fm.avg = [numStages]float64{}
	fm.startTime = time.Now()
	fm.mutex.Unlock()
}
