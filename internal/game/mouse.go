package game

import "gridcaster/internal/mathutil"

// ClampRelative limits one frame of horizontal mouse motion.
func ClampRelative(rel, maxRel float64) float64 {
	if maxRel <= 0 {
		return rel
	}
	return mathutil.Clamp(rel, -maxRel, maxRel)
}

// MouseLook turns the heading by rel pixels of horizontal mouse motion.
func (p *Player) MouseLook(rel, dt float64) {
	if rel == 0 {
		return
	}
	rel = ClampRelative(rel, p.cfg.MouseMaxRelative)
	p.View.Rotate(rel * p.cfg.MouseSensitivity * dt)
}

// OutsideBorder reports whether the cursor has drifted into the border band
// and should be recentred by the frontend.
func OutsideBorder(x, width, border int) bool {
	return x < border || x > width-border
}
