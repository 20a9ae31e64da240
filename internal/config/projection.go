package config

import "math"

// Projection holds the screen-space constants derived from the display and
// camera settings. Both the wall raycaster and the sprite projector index
// columns with the same values, so they are computed in one place.
type Projection struct {
	ScreenWidth    int
	ScreenHeight   int
	HalfWidth      float64
	HalfHeight     float64
	FOV            float64
	HalfFOV        float64
	NumRays        int
	HalfNumRays    float64
	AngleStep      float64
	ScreenDistance float64
	// Scale is the pixel width of one ray column.
	Scale       int
	MaxDepth    int
	TextureSize int
}

// NewProjection derives projection constants for a screen of the given size.
func NewProjection(width, height, numRays int, fov float64, maxDepth, textureSize int) Projection {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	if numRays <= 0 || numRays > width {
		numRays = width
	}
	halfFOV := fov / 2
	halfWidth := float64(width) / 2
	scale := width / numRays
	if scale < 1 {
		scale = 1
	}
	return Projection{
		ScreenWidth:    width,
		ScreenHeight:   height,
		HalfWidth:      halfWidth,
		HalfHeight:     float64(height) / 2,
		FOV:            fov,
		HalfFOV:        halfFOV,
		NumRays:        numRays,
		HalfNumRays:    float64(numRays) / 2,
		AngleStep:      fov / float64(numRays),
		ScreenDistance: halfWidth / math.Tan(halfFOV),
		Scale:          scale,
		MaxDepth:       maxDepth,
		TextureSize:    textureSize,
	}
}

// Projection returns the projection constants for this configuration.
func (c *Config) Projection() Projection {
	return NewProjection(
		c.Display.ScreenWidth,
		c.Display.ScreenHeight,
		c.Camera.NumRays,
		c.GetCameraFOV(),
		c.GetMaxDepth(),
		c.Camera.TextureSize,
	)
}
