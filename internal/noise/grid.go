package noise

import (
	"fmt"
	stdmath "math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// ScalarGrid is a fixed-size, periodic 2D field of floats stored row-major.
type ScalarGrid struct {
	width  int
	height int
	values []float64

	// scratch holds one octave of samples for AccumulateParallel.
	scratch []float64
}

// NewScalarGrid creates a zero-filled width x height grid.
func NewScalarGrid(width, height int) (*ScalarGrid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: scalar grid %dx%d", ErrInvalidDimension, width, height)
	}
	return &ScalarGrid{
		width:  width,
		height: height,
		values: make([]float64, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *ScalarGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *ScalarGrid) Height() int { return g.height }

// Values returns a copy of the cells in row-major order.
func (g *ScalarGrid) Values() []float64 {
	out := make([]float64, len(g.values))
	copy(out, g.values)
	return out
}

func (g *ScalarGrid) index(x, y int) int {
	return math.Wrap(y, g.height)*g.width + math.Wrap(x, g.width)
}

// Fill sets every cell to v.
func (g *ScalarGrid) Fill(v float64) {
	for i := range g.values {
		g.values[i] = v
	}
}

// Get returns the cell at (x, y), wrapped.
func (g *ScalarGrid) Get(x, y int) float64 {
	return g.values[g.index(x, y)]
}

// Set stores v at (x, y), wrapped.
func (g *ScalarGrid) Set(x, y int, v float64) {
	g.values[g.index(x, y)] = v
}

// Accumulate adds src.Sample(x, y) * weight to every cell.
// The explicit float64 conversion keeps the product from being fused into
// the add, so both accumulate paths round identically.
func (g *ScalarGrid) Accumulate(src Sampler, weight float64) {
	for y := 0; y < g.height; y++ {
		row := g.values[y*g.width : (y+1)*g.width]
		for x := range row {
			row[x] += float64(src.Sample(float64(x), float64(y)) * weight)
		}
	}
}

// AccumulateParallel is Accumulate with sampling split by rows across
// workers. The summation itself runs on the calling goroutine so results are
// bit-identical to Accumulate. workers <= 0 uses GOMAXPROCS.
func (g *ScalarGrid) AccumulateParallel(src Sampler, weight float64, workers int) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > g.height {
		workers = g.height
	}
	if workers <= 1 {
		g.Accumulate(src, weight)
		return
	}

	if len(g.scratch) != len(g.values) {
		g.scratch = make([]float64, len(g.values))
	}

	rows := make(chan int, g.height)
	for y := 0; y < g.height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				row := g.scratch[y*g.width : (y+1)*g.width]
				for x := range row {
					row[x] = float64(src.Sample(float64(x), float64(y)) * weight)
				}
			}
		}()
	}
	wg.Wait()

	floats.Add(g.values, g.scratch)
}

// Normalize divides every cell by the largest absolute value so that
// max|v| == 1. A grid of zeros is left unchanged.
func (g *ScalarGrid) Normalize() {
	m := floats.Norm(g.values, stdmath.Inf(1))
	if !(m > 0) {
		return
	}
	for i := range g.values {
		g.values[i] /= m
	}
}
