// Package terrain generates fractal heightfields and triangulates them into
// colored meshes.
package terrain

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// Terrain errors.
var (
	ErrInvalidDimension  = errors.New("invalid terrain dimension: need at least 2 points per axis")
	ErrInvalidRange      = errors.New("invalid height range: min must be below max")
	ErrNotGenerated      = errors.New("terrain has not been generated")
	ErrIncompleteHeights = errors.New("incomplete height data")
)

// Vertex represents a terrain mesh vertex.
type Vertex struct {
	Position mgl32.Vec3 // X/Z from the lattice, Y is elevation
	Normal   mgl32.Vec3
	Color    mgl32.Vec3 // RGB in [0,1]
}

// Mesh holds terrain geometry ready for upload.
// Indices is nil for a triangle soup, where every 3 consecutive vertices
// form one triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	if m.Indices != nil {
		return len(m.Indices) / 3
	}
	return len(m.Vertices) / 3
}

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) [3]uint32 {
	if m.Indices != nil {
		return [3]uint32{m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]}
	}
	base := uint32(3 * i)
	return [3]uint32{base, base + 1, base + 2}
}

// HeightSource is a sampled heightfield that can be triangulated.
type HeightSource interface {
	// Size returns the number of grid points along X and Z.
	Size() (sizeX, sizeZ int)
	HeightAt(x, z float64) float64
	MaxHeight() float64
}
