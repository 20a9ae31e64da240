package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping its frequency
type oscillator struct {
	freq     float64
	sweep    float64 // Hz per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	sweep := 0.0
	if duration > 0 {
		sweep = (to - from) / duration.Seconds()
	}
	return &oscillator{
		freq:     from,
		sweep:    sweep,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		if freq < 0 {
			freq = 0
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is mapped to silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// shape wraps an oscillator in an envelope covering its whole duration
func shape(osc beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(osc, d, attack, release, rate)
}

// CreateSound builds the synthesised effect for e
func CreateSound(e Event, rate beep.SampleRate) beep.Streamer {
	switch e {
	case Shot:
		// Noise burst with a falling square tail
		d := 180 * time.Millisecond
		burst := shape(NewOscillator(0, 60*time.Millisecond, WaveNoise, rate), 60*time.Millisecond, 0, 50*time.Millisecond, rate)
		tail := shape(NewSweep(220, 60, d, WaveSquare, rate), d, 2*time.Millisecond, 150*time.Millisecond, rate)
		return beep.Mix(burst, newVolume(tail, 0.4))
	case EnemyPain:
		d := 150 * time.Millisecond
		return shape(NewSweep(500, 300, d, WaveSaw, rate), d, 5*time.Millisecond, 100*time.Millisecond, rate)
	case EnemyDeath:
		d := 600 * time.Millisecond
		return shape(NewSweep(400, 50, d, WaveSaw, rate), d, 10*time.Millisecond, 400*time.Millisecond, rate)
	case EnemyAttack:
		d := 120 * time.Millisecond
		return shape(NewSweep(900, 200, d, WaveSquare, rate), d, 2*time.Millisecond, 90*time.Millisecond, rate)
	case PlayerPain:
		d := 250 * time.Millisecond
		return shape(NewSweep(180, 90, d, WaveSine, rate), d, 10*time.Millisecond, 150*time.Millisecond, rate)
	}
	return nil
}
