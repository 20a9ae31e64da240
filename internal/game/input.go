package game

// Intent is one frame of player input, sampled by a frontend.
type Intent struct {
	Forward float64 // +1 forward, -1 back
	Strafe  float64 // +1 right, -1 left
	Turn    float64 // +1 clockwise, used only with key rotation
	// MouseDX is the horizontal mouse motion in pixels since the last frame.
	MouseDX float64
	Fire    bool
	Pause   bool
	Restart bool
}

// Axis folds a pair of opposing buttons into -1, 0 or +1.
func Axis(negative, positive bool) float64 {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	}
	return 0
}

// Merge combines two intents, e.g. keyboard and a scripted source. Axes
// add and are clamped; buttons are ORed.
func (in Intent) Merge(other Intent) Intent {
	return Intent{
		Forward: clampAxis(in.Forward + other.Forward),
		Strafe:  clampAxis(in.Strafe + other.Strafe),
		Turn:    clampAxis(in.Turn + other.Turn),
		MouseDX: in.MouseDX + other.MouseDX,
		Fire:    in.Fire || other.Fire,
		Pause:   in.Pause || other.Pause,
		Restart: in.Restart || other.Restart,
	}
}

func clampAxis(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
