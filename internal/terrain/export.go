package terrain

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// WriteOBJ writes the mesh as Wavefront OBJ with per-vertex colors
// ("v x y z r g b") and normals. Faces are 1-based.
func WriteOBJ(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# terrain mesh: %d vertices, %d triangles\n", len(m.Vertices), m.TriangleCount())
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g %g %g %g\n",
			v.Position[0], v.Position[1], v.Position[2],
			v.Color[0], v.Color[1], v.Color[2])
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for t := 0; t < m.TriangleCount(); t++ {
		idx := m.Triangle(t)
		a, b, c := idx[0]+1, idx[1]+1, idx[2]+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}

	return bw.Flush()
}

// HeightSample is one grid point of a heightfield dump.
type HeightSample struct {
	X      int     `csv:"x"`
	Z      int     `csv:"z"`
	Height float64 `csv:"height"`
}

// WriteHeightsCSV writes one row per grid point, x-major.
func WriteHeightsCSV(w io.Writer, g *Generator) error {
	if !g.Generated() {
		return ErrNotGenerated
	}
	records := make([]HeightSample, 0, len(g.heights))
	for x := 0; x < g.sizeX; x++ {
		for z := 0; z < g.sizeZ; z++ {
			records = append(records, HeightSample{X: x, Z: z, Height: g.heights[x*g.sizeZ+z]})
		}
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing heights: %w", err)
	}
	return nil
}

// ReadHeightsCSV rebuilds a generated heightfield from a WriteHeightsCSV dump.
// The lattice size is taken from the largest coordinates. Every grid point
// must appear exactly once.
//
// The dump carries no range, so MinHeight and MaxHeight are the extreme
// values found in the data. A terrain whose peak never reached the
// configured maximum will color against its own peak after reloading.
func ReadHeightsCSV(r io.Reader) (*Generator, error) {
	var records []HeightSample
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("reading heights: %w", err)
	}
	n := len(records)
	if n == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrIncompleteHeights)
	}

	sizeX, sizeZ := 0, 0
	for _, rec := range records {
		if rec.X < 0 || rec.Z < 0 {
			return nil, fmt.Errorf("%w: negative coordinate (%d,%d)", ErrIncompleteHeights, rec.X, rec.Z)
		}
		// A complete lattice has fewer points per axis than rows in total.
		if rec.X >= n || rec.Z >= n {
			return nil, fmt.Errorf("%w: coordinate (%d,%d) outside a %d-point dump", ErrIncompleteHeights, rec.X, rec.Z, n)
		}
		sizeX = max(sizeX, rec.X+1)
		sizeZ = max(sizeZ, rec.Z+1)
	}

	g, err := NewGenerator(sizeX, sizeZ)
	if err != nil {
		return nil, err
	}
	if sizeX*sizeZ != n {
		return nil, fmt.Errorf("%w: %d rows for a %dx%d lattice", ErrIncompleteHeights, n, sizeX, sizeZ)
	}

	heights := make([]float64, n)
	seen := make([]bool, n)
	lo, hi := records[0].Height, records[0].Height
	for _, rec := range records {
		i := rec.X*sizeZ + rec.Z
		if seen[i] {
			return nil, fmt.Errorf("%w: duplicate point (%d,%d)", ErrIncompleteHeights, rec.X, rec.Z)
		}
		heights[i] = rec.Height
		seen[i] = true
		lo = min(lo, rec.Height)
		hi = max(hi, rec.Height)
	}

	g.heights = heights
	g.minHeight = lo
	g.maxHeight = hi
	return g, nil
}
