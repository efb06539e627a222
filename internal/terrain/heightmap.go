package terrain

import (
	stdmath "math"

	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// HeightAt returns the height of the grid point nearest to (x, z).
// Coordinates are rounded, not interpolated, and clamped to the lattice.
// Returns 0 before the terrain is generated.
func (g *Generator) HeightAt(x, z float64) float64 {
	if g.heights == nil {
		return 0
	}
	ix := clampIndex(stdmath.Round(x), g.sizeX)
	iz := clampIndex(stdmath.Round(z), g.sizeZ)
	return g.heights[ix*g.sizeZ+iz]
}

// InterpolatedHeightAt returns the bilinearly interpolated height at (x, z),
// clamped to the lattice. The mesh builder does not use it; it serves callers
// placing objects on the surface between grid points.
func (g *Generator) InterpolatedHeightAt(x, z float64) float64 {
	if g.heights == nil {
		return 0
	}

	x = math.Clamp(x, 0, float64(g.sizeX-1))
	z = math.Clamp(z, 0, float64(g.sizeZ-1))

	cellX := int(x)
	cellZ := int(z)
	if cellX >= g.sizeX-1 {
		cellX = g.sizeX - 2
	}
	if cellZ >= g.sizeZ-1 {
		cellZ = g.sizeZ - 2
	}

	fracX := x - float64(cellX)
	fracZ := z - float64(cellZ)

	h00 := g.heights[cellX*g.sizeZ+cellZ]
	h10 := g.heights[(cellX+1)*g.sizeZ+cellZ]
	h01 := g.heights[cellX*g.sizeZ+cellZ+1]
	h11 := g.heights[(cellX+1)*g.sizeZ+cellZ+1]

	// Lerp along X on both Z edges, then along Z
	near := math.Lerp(h00, h10, fracX)
	far := math.Lerp(h01, h11, fracX)
	return math.Lerp(near, far, fracZ)
}

func clampIndex(v float64, n int) int {
	return int(math.Clamp(v, 0, float64(n-1)))
}
