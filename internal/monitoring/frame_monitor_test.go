package monitoring

import (
	"testing"
	"time"
)

func TestNewFrameMonitor(t *testing.T) {
	fm := NewFrameMonitor()

	if fm == nil {
		t.Fatal("NewFrameMonitor returned nil")
	}
	if !fm.enableDetailed {
		t.Error("Expected enableDetailed to be true")
	}
	if time.Since(fm.startTime) > time.Second {
		t.Error("Start time should be recent")
	}
}

func TestFrameMonitorStageTiming(t *testing.T) {
	fm := NewFrameMonitor()

	timer := fm.Start(StageFrame)
	time.Sleep(5 * time.Millisecond)
	d := timer.End()

	if fm.frameCount.Load() != 1 {
		t.Errorf("Expected frame count to be 1, got %d", fm.frameCount.Load())
	}
	if d < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms, got %v", d)
	}
	if fm.Last(StageFrame) != d {
		t.Errorf("Last() = %v, want %v", fm.Last(StageFrame), d)
	}
	if fm.Average(StageFrame) != d {
		t.Errorf("first sample should seed the average, got %v", fm.Average(StageFrame))
	}
}

func TestFrameMonitorRollingAverage(t *testing.T) {
	fm := NewFrameMonitor()
	fm.Record(StageRaycast, 10*time.Millisecond)
	fm.Record(StageRaycast, 20*time.Millisecond)

	want := 11 * time.Millisecond
	got := fm.Average(StageRaycast)
	if diff := got - want; diff < -time.Microsecond || diff > time.Microsecond {
		t.Errorf("average = %v, want %v", got, want)
	}

	fm.EnableDetailedLogging(false)
	fm.Record(StageRaycast, time.Second)
	if fm.Average(StageRaycast) != got {
		t.Errorf("average changed with detailed logging off: %v", fm.Average(StageRaycast))
	}
	if fm.Last(StageRaycast) != time.Second {
		t.Error("last sample should still be recorded")
	}
}

func TestFrameMonitorAlerts(t *testing.T) {
	fm := NewFrameMonitor()
	fm.Record(StageFrame, 40*time.Millisecond)
	fm.Record(StageRaycast, 35*time.Millisecond)

	alerts := fm.CheckPerformanceAlerts(time.Second / 60)
	types := map[string]bool{}
	for _, a := range alerts {
		types[a.Type] = true
	}
	if !types["slow_frame"] || !types["raycast_bound"] {
		t.Errorf("expected slow_frame and raycast_bound alerts, got %+v", alerts)
	}

	fm.Reset()
	if len(fm.CheckPerformanceAlerts(time.Second/60)) != 0 {
		t.Error("expected no alerts after reset")
	}
}

func TestFrameMonitorDetailedStats(t *testing.T) {
	fm := NewFrameMonitor()
	fm.UpdateGameMetrics(820, 3, 12)
	fm.ProfiledFunction(StageSort, func() {})

	stats := fm.GetDetailedStats()
	for _, key := range []string{"fps", "entries", "agents_alive", "avg_sort_ms", "avg_raycast_ms"} {
		if _, ok := stats[key]; !ok {
			t.Errorf("missing stat %q", key)
		}
	}
	if stats["entries"] != uint64(820) {
		t.Errorf("entries = %v", stats["entries"])
	}
}

func TestStageString(t *testing.T) {
	if StageAgents.String() != "agents" || Stage(99).String() != "unknown" {
		t.Error("unexpected stage names")
	}
}
