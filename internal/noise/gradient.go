// Package noise provides periodic 2D gradient noise and a wrap-around scalar
// grid for layering noise octaves.
package noise

import (
	"errors"
	"fmt"
	stdmath "math"

	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// Noise construction errors.
var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidScale     = errors.New("invalid scale")
)

// RandomSource yields uniform floats in [0, 1).
// *math/rand.Rand and *math/rand/v2.Rand both satisfy it.
type RandomSource interface {
	Float64() float64
}

// Sampler is anything that can be evaluated at a 2D coordinate.
type Sampler interface {
	Sample(x, y float64) float64
}

// GradientField is periodic Perlin-style gradient noise over a lattice of
// random unit vectors spaced scale units apart.
type GradientField struct {
	width  int
	height int
	scale  float64
	nodes  []math.Vec2
}

// NewGradientField creates a width x height lattice of random gradients.
func NewGradientField(width, height int, scale float64, rng RandomSource) (*GradientField, error) {
	if !(scale > 0) || stdmath.IsInf(scale, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	f := &GradientField{scale: scale}
	if err := f.Resize(width, height, rng); err != nil {
		return nil, err
	}
	return f, nil
}

// Resize reallocates the lattice and draws a fresh gradient for every node.
func (f *GradientField) Resize(width, height int, rng RandomSource) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: gradient field %dx%d", ErrInvalidDimension, width, height)
	}
	nodes := make([]math.Vec2, width*height)
	for i := range nodes {
		nodes[i] = math.UnitVector(2 * stdmath.Pi * rng.Float64())
	}
	f.width = width
	f.height = height
	f.nodes = nodes
	return nil
}

// Width returns the number of lattice nodes along x.
func (f *GradientField) Width() int { return f.width }

// Height returns the number of lattice nodes along y.
func (f *GradientField) Height() int { return f.height }

// Scale returns the node spacing in input units.
func (f *GradientField) Scale() float64 { return f.scale }

// Gradient returns the unit vector at lattice node (x, y), wrapped.
func (f *GradientField) Gradient(x, y int) math.Vec2 {
	return f.nodes[math.Wrap(y, f.height)*f.width+math.Wrap(x, f.width)]
}

// Sample evaluates the noise at (x, y). The result is exactly 0 on lattice
// nodes and continuous (with continuous gradient) everywhere else.
func (f *GradientField) Sample(x, y float64) float64 {
	x /= f.scale
	y /= f.scale

	fx := stdmath.Floor(x)
	fy := stdmath.Floor(y)
	cellX := int(fx)
	cellY := int(fy)

	lx := x - fx
	ly := y - fy

	tl := f.Gradient(cellX, cellY)
	tr := f.Gradient(cellX+1, cellY)
	bl := f.Gradient(cellX, cellY+1)
	br := f.Gradient(cellX+1, cellY+1)

	p := math.Vec2{X: lx, Y: ly}
	dTL := tl.Dot(p)
	dTR := tr.Dot(p.Sub(math.Vec2{X: 1}))
	dBL := bl.Dot(p.Sub(math.Vec2{Y: 1}))
	dBR := br.Dot(p.Sub(math.Vec2{X: 1, Y: 1}))

	sx := math.Quintic(lx)
	ix1 := math.Lerp(dTL, dTR, sx)
	ix2 := math.Lerp(dBL, dBR, sx)

	return math.Lerp(ix1, ix2, math.Quintic(ly))
}
