package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// BuildMesh triangulates a heightfield into a triangle soup.
// Each cell (i, j) spanning grid points i..i+1 and j..j+1 yields the
// triangles (TL, BL, BR) and (BR, TR, TL), both facing +Y.
func BuildMesh(src HeightSource, ramp ColorRamp) (*Mesh, error) {
	sizeX, sizeZ := src.Size()
	if sizeX < 2 || sizeZ < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, sizeX, sizeZ)
	}
	maxHeight := src.MaxHeight()

	vertices := make([]Vertex, 0, 6*(sizeX-1)*(sizeZ-1))
	bounds := emptyBounds()

	for i := 0; i < sizeX-1; i++ {
		for j := 0; j < sizeZ-1; j++ {
			tl := gridVertex(src, ramp, maxHeight, i, j)
			tr := gridVertex(src, ramp, maxHeight, i+1, j)
			br := gridVertex(src, ramp, maxHeight, i+1, j+1)
			bl := gridVertex(src, ramp, maxHeight, i, j+1)

			for _, v := range [4]*Vertex{&tl, &tr, &br, &bl} {
				bounds.extend(v.Position)
			}

			vertices = append(vertices,
				tl, bl, br,
				br, tr, tl,
			)
		}
	}

	m := &Mesh{Vertices: vertices, Bounds: bounds}
	accumulateFaceNormals(m)
	SmoothNormals(m.Vertices)
	return m, nil
}

// BuildIndexedMesh triangulates a heightfield with one shared vertex per grid
// point. Vertex (i, j) is stored at index i*sizeZ+j; triangle order matches
// BuildMesh.
func BuildIndexedMesh(src HeightSource, ramp ColorRamp) (*Mesh, error) {
	sizeX, sizeZ := src.Size()
	if sizeX < 2 || sizeZ < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, sizeX, sizeZ)
	}
	maxHeight := src.MaxHeight()

	vertices := make([]Vertex, 0, sizeX*sizeZ)
	bounds := emptyBounds()
	for i := 0; i < sizeX; i++ {
		for j := 0; j < sizeZ; j++ {
			v := gridVertex(src, ramp, maxHeight, i, j)
			bounds.extend(v.Position)
			vertices = append(vertices, v)
		}
	}

	indices := make([]uint32, 0, 6*(sizeX-1)*(sizeZ-1))
	for i := 0; i < sizeX-1; i++ {
		for j := 0; j < sizeZ-1; j++ {
			tl := uint32(i*sizeZ + j)
			tr := uint32((i+1)*sizeZ + j)
			br := tr + 1
			bl := tl + 1
			indices = append(indices,
				tl, bl, br,
				br, tr, tl,
			)
		}
	}

	m := &Mesh{Vertices: vertices, Indices: indices, Bounds: bounds}
	accumulateFaceNormals(m)
	for i := range m.Vertices {
		m.Vertices[i].Normal = normalizeOrUp(m.Vertices[i].Normal)
	}
	return m, nil
}

// Recolor reassigns every vertex color from its elevation, reusing the
// existing vertex buffer.
func (m *Mesh) Recolor(ramp ColorRamp, maxHeight float64) {
	for i := range m.Vertices {
		m.Vertices[i].Color = ramp.At(float64(m.Vertices[i].Position.Y()), maxHeight)
	}
}

func gridVertex(src HeightSource, ramp ColorRamp, maxHeight float64, i, j int) Vertex {
	h := src.HeightAt(float64(i), float64(j))
	return Vertex{
		Position: mgl32.Vec3{float32(i), float32(h), float32(j)},
		Color:    ramp.At(h, maxHeight),
	}
}

// accumulateFaceNormals adds each triangle's unnormalized normal to its
// vertices. The cross product length is twice the triangle area, which makes
// later averaging area-weighted.
func accumulateFaceNormals(m *Mesh) {
	for i := range m.Vertices {
		m.Vertices[i].Normal = mgl32.Vec3{}
	}
	for t := 0; t < m.TriangleCount(); t++ {
		idx := m.Triangle(t)
		a := m.Vertices[idx[0]].Position
		b := m.Vertices[idx[1]].Position
		c := m.Vertices[idx[2]].Position
		n := b.Sub(a).Cross(c.Sub(a))
		for _, k := range idx {
			m.Vertices[k].Normal = m.Vertices[k].Normal.Add(n)
		}
	}
}

// SmoothNormals sums normals at shared vertex positions and normalizes them,
// so a triangle soup shades like a connected surface.
func SmoothNormals(vertices []Vertex) {
	// Shared grid points have bit-identical positions, so exact keys suffice.
	posMap := make(map[mgl32.Vec3][]int, len(vertices)/3)
	for i := range vertices {
		posMap[vertices[i].Position] = append(posMap[vertices[i].Position], i)
	}

	for _, indices := range posMap {
		var sum mgl32.Vec3
		for _, idx := range indices {
			sum = sum.Add(vertices[idx].Normal)
		}
		avg := normalizeOrUp(sum)
		for _, idx := range indices {
			vertices[idx].Normal = avg
		}
	}
}

func normalizeOrUp(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() < 1e-6 {
		return mgl32.Vec3{0, 1, 0}
	}
	return v.Normalize()
}

func emptyBounds() Bounds {
	return Bounds{
		Min: mgl32.Vec3{1e10, 1e10, 1e10},
		Max: mgl32.Vec3{-1e10, -1e10, -1e10},
	}
}

func (b *Bounds) extend(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
