package terrain

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// ColorRamp blends between two colors by normalized elevation.
type ColorRamp struct {
	Low  mgl32.Vec3
	High mgl32.Vec3
}

// DefaultColorRamp goes from grass green at sea level to snow at the peaks.
func DefaultColorRamp() ColorRamp {
	return ColorRamp{
		Low:  mgl32.Vec3{0.22, 0.45, 0.16},
		High: mgl32.Vec3{0.95, 0.95, 0.97},
	}
}

// At returns the color for height given the terrain's maximum height.
// The blend factor height/maxHeight is clamped to [0,1]; a non-positive
// maxHeight yields the low color. Channels are clamped to [0,1].
func (r ColorRamp) At(height, maxHeight float64) mgl32.Vec3 {
	t := 0.0
	if maxHeight > 0 {
		t = math.Clamp(height/maxHeight, 0, 1)
	}
	c := r.Low.Add(r.High.Sub(r.Low).Mul(float32(t)))
	for i := range c {
		c[i] = mgl32.Clamp(c[i], 0, 1)
	}
	return c
}
