package sprite

import (
	"math"

	"gridcaster/internal/config"
	"gridcaster/internal/render"
	"gridcaster/internal/world"
)

// nearClip is the smallest normalised distance a billboard may be drawn at.
const nearClip = 0.5

// Projection is where a billboard landed on screen.
type Projection struct {
	ScreenX      float64 // centre column in pixels
	HalfWidth    float64 // half the projected width, floored
	Distance     float64
	NormDistance float64 // fisheye corrected, the entry depth
	Delta        float64 // bearing relative to heading
}

// Projector maps billboards into the wall raycaster's screen space.
type Projector struct {
	proj config.Projection
}

// NewProjector creates a projector sharing the caster's projection.
func NewProjector(proj config.Projection) *Projector {
	return &Projector{proj: proj}
}

// Project places d relative to vp. It returns false when the billboard is
// off screen or too close to the viewer. Project has no side effects.
func (p *Projector) Project(d Drawable, vp world.Viewpoint) (render.Entry, Projection, bool) {
	b := d.Billboard()
	if b.Image == nil {
		return render.Entry{}, Projection{}, false
	}
	bounds := b.Image.Bounds()
	imgW, imgH := bounds.Dx(), bounds.Dy()
	if imgW <= 0 || imgH <= 0 {
		return render.Entry{}, Projection{}, false
	}

	px := b.Pos.X - vp.X
	py := b.Pos.Y - vp.Y
	delta := math.Atan2(py, px) - vp.Angle
	if (px > 0 && vp.Angle > math.Pi) || (px < 0 && py < 0) {
		delta += 2 * math.Pi
	}

	pr := Projection{
		ScreenX:  (p.proj.HalfNumRays + delta/p.proj.AngleStep) * float64(p.proj.Scale),
		Distance: math.Hypot(px, py),
		Delta:    delta,
	}
	pr.NormDistance = pr.Distance * math.Cos(delta)

	imgHalfW := float64(imgW / 2)
	if pr.ScreenX <= -imgHalfW || pr.ScreenX >= float64(p.proj.ScreenWidth)+imgHalfW || pr.NormDistance <= nearClip {
		return render.Entry{}, pr, false
	}

	size := p.proj.ScreenDistance / pr.NormDistance * b.Scale
	w := size * float64(imgW) / float64(imgH)
	h := size
	pr.HalfWidth = math.Floor(w / 2)

	e := render.Entry{
		Depth: pr.NormDistance,
		Image: b.Image,
		Dst: render.Rect{
			X: pr.ScreenX - pr.HalfWidth,
			Y: p.proj.HalfHeight - math.Floor(h/2) + h*b.Shift,
			W: w,
			H: h,
		},
	}
	return e, pr, true
}
