package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays synthesised effects through the system speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	played      [numEvents]int
}

// NewSoundManager creates a new sound manager. volume is linear, 1 = unity.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts the effect for e. Events arriving before Initialize are
// counted but not heard.
func (sm *SoundManager) Play(e Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if e < 0 || e >= numEvents {
		return
	}
	sm.played[e]++
	if !sm.initialized {
		return
	}
	s := CreateSound(e, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(newVolume(s, sm.volume))
	speaker.Unlock()
}

// Played returns how many times e was triggered
func (sm *SoundManager) Played(e Event) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if e < 0 || e >= numEvents {
		return 0
	}
	return sm.played[e]
}
