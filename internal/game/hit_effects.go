package game

const (
	PainFlashMs = 250.0
	HitMarkerMs = 150.0
)

// HitEffects are short screen cues for damage taken and shots landed,
// counted down in simulated milliseconds.
type HitEffects struct {
	pain float64
	hit  float64
}

// Hurt starts the pain flash.
func (h *HitEffects) Hurt() {
	h.pain = PainFlashMs
}

// Hit starts the hit marker.
func (h *HitEffects) Hit() {
	h.hit = HitMarkerMs
}

// Update ages both cues by dt.
func (h *HitEffects) Update(dt float64) {
	h.pain = max(h.pain-dt, 0)
	h.hit = max(h.hit-dt, 0)
}

// Pain returns the flash strength in [0, 1], fading linearly.
func (h *HitEffects) Pain() float64 {
	return h.pain / PainFlashMs
}

// Marker reports whether the hit marker is showing.
func (h *HitEffects) Marker() bool {
	return h.hit > 0
}

// Clear removes any running cue.
func (h *HitEffects) Clear() {
	*h = HitEffects{}
}
