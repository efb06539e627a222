package terrain

import (
	"fmt"
	stdmath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/internal/noise"
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// Fractal synthesis constants.
const (
	DefaultFlatness = 100.0 // Node spacing of the lowest octave
	Octaves         = 8

	baseNodesX = 12 // Gradient nodes of the lowest octave
	baseNodesZ = 8
)

// Options tunes how a heightfield is computed. The zero value is valid.
type Options struct {
	// Workers splits noise sampling across goroutines. 0 or 1 runs on the
	// calling goroutine; output is identical either way.
	Workers int
}

// Generator synthesizes a sizeX x sizeZ lattice of heights from layered
// gradient noise. Heights are stored x-major: heights[x*sizeZ+z].
type Generator struct {
	sizeX     int
	sizeZ     int
	heights   []float64
	minHeight float64
	maxHeight float64
	opts      Options
}

// NewGenerator creates a generator for a sizeX x sizeZ lattice of points.
func NewGenerator(sizeX, sizeZ int) (*Generator, error) {
	return NewGeneratorWithOptions(sizeX, sizeZ, Options{})
}

// NewGeneratorWithOptions is NewGenerator with explicit options.
func NewGeneratorWithOptions(sizeX, sizeZ int, opts Options) (*Generator, error) {
	if sizeX < 2 || sizeZ < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, sizeX, sizeZ)
	}
	return &Generator{sizeX: sizeX, sizeZ: sizeZ, opts: opts}, nil
}

// Generate fills the heightfield with fractal noise remapped into
// [minHeight, maxHeight], with the outer ring of points forced to minHeight.
// A non-positive flatness falls back to DefaultFlatness.
func (g *Generator) Generate(rng noise.RandomSource, minHeight, maxHeight, flatness float64) error {
	if !(flatness > 0) || stdmath.IsInf(flatness, 1) {
		logger.Debug("flatness out of range, using default",
			zap.Float64("flatness", flatness),
			zap.Float64("default", DefaultFlatness))
		flatness = DefaultFlatness
	}
	if !(minHeight < maxHeight) || stdmath.IsInf(minHeight, 0) || stdmath.IsInf(maxHeight, 0) {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, minHeight, maxHeight)
	}

	grid, err := noise.NewScalarGrid(g.sizeX, g.sizeZ)
	if err != nil {
		return err
	}

	for n := 0; n < Octaves; n++ {
		factor := 1 << n
		field, err := noise.NewGradientField(baseNodesX*factor, baseNodesZ*factor, flatness/float64(factor), rng)
		if err != nil {
			return fmt.Errorf("octave %d: %w", n, err)
		}
		weight := 1 / float64(factor)
		if g.opts.Workers > 1 {
			grid.AccumulateParallel(field, weight, g.opts.Workers)
		} else {
			grid.Accumulate(field, weight)
		}
		logger.Debug("octave accumulated",
			zap.Int("octave", n),
			zap.Int("nodes_x", field.Width()),
			zap.Int("nodes_z", field.Height()),
			zap.Float64("scale", field.Scale()))
	}

	grid.Normalize()
	applyRim(grid)

	heights := make([]float64, g.sizeX*g.sizeZ)
	for x := 0; x < g.sizeX; x++ {
		for z := 0; z < g.sizeZ; z++ {
			heights[x*g.sizeZ+z] = remap(grid.Get(x, z), minHeight, maxHeight)
		}
	}

	g.heights = heights
	g.minHeight = minHeight
	g.maxHeight = maxHeight

	logger.Debug("terrain generated",
		zap.Int("size_x", g.sizeX),
		zap.Int("size_z", g.sizeZ),
		zap.Float64("flatness", flatness))
	return nil
}

// applyRim sets the outermost ring of the grid to -1.
func applyRim(grid *noise.ScalarGrid) {
	w, h := grid.Width(), grid.Height()
	for x := 0; x < w; x++ {
		grid.Set(x, 0, -1)
		grid.Set(x, h-1, -1)
	}
	for z := 0; z < h; z++ {
		grid.Set(0, z, -1)
		grid.Set(w-1, z, -1)
	}
}

// remap maps v from [-1,1] to [lo,hi]. The clamp absorbs rounding in hi-lo.
func remap(v, lo, hi float64) float64 {
	v01 := (v + 1) / 2
	return math.Clamp(lo+v01*(hi-lo), lo, hi)
}

// Size returns the number of grid points along X and Z.
func (g *Generator) Size() (int, int) {
	return g.sizeX, g.sizeZ
}

// MinHeight returns the lower bound of the generated range.
func (g *Generator) MinHeight() float64 { return g.minHeight }

// MaxHeight returns the upper bound of the generated range.
func (g *Generator) MaxHeight() float64 { return g.maxHeight }

// Generated reports whether heights are available.
func (g *Generator) Generated() bool { return g.heights != nil }

// Heights returns a copy of the heightfield, indexed x*sizeZ+z.
func (g *Generator) Heights() []float64 {
	out := make([]float64, len(g.heights))
	copy(out, g.heights)
	return out
}
