package game

import (
	"fmt"
	"time"
)

// RoundStats counts what happened during one round.
type RoundStats struct {
	Shots       int
	Hits        int
	Kills       int
	DamageTaken int
	// Elapsed is simulated time while the round was active and unpaused.
	Elapsed time.Duration
}

// Accuracy is the share of shots that hit, 0 when nothing was fired.
func (r RoundStats) Accuracy() float64 {
	if r.Shots == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Shots)
}

// FormatPlayTime formats the play time as HH:MM:SS, or MM:SS under an hour
func FormatPlayTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
