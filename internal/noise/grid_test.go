package noise

import (
	"errors"
	"math"
	"testing"
)

// planeSampler returns a*x + b*y.
type planeSampler struct {
	a, b float64
}

func (p planeSampler) Sample(x, y float64) float64 {
	return p.a*x + p.b*y
}

func TestNewScalarGrid_Invalid(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-3, 4}} {
		if _, err := NewScalarGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewScalarGrid(%d, %d): expected ErrInvalidDimension, got %v", dims[0], dims[1], err)
		}
	}
}

func TestScalarGrid_Wraparound(t *testing.T) {
	g, err := NewScalarGrid(4, 3)
	if err != nil {
		t.Fatalf("NewScalarGrid failed: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			g.Set(x, y, float64(y*10+x))
		}
	}

	for y := -3; y < 6; y++ {
		for x := -4; x < 8; x++ {
			for k := -3; k <= 3; k++ {
				if g.Get(x+k*4, y) != g.Get(x, y) {
					t.Fatalf("Get(%d+%d*4, %d) != Get(%d, %d)", x, k, y, x, y)
				}
				if g.Get(x, y+k*3) != g.Get(x, y) {
					t.Fatalf("Get(%d, %d+%d*3) != Get(%d, %d)", x, y, k, x, y)
				}
			}
		}
	}

	g.Set(-1, -1, 99)
	if got := g.Get(3, 2); got != 99 {
		t.Errorf("Set(-1,-1) should write (3,2), got %v", got)
	}
}

func TestScalarGrid_Fill(t *testing.T) {
	g, _ := NewScalarGrid(3, 3)
	g.Fill(2.5)
	for _, v := range g.Values() {
		if v != 2.5 {
			t.Fatalf("expected 2.5 after Fill, got %v", v)
		}
	}
}

func TestScalarGrid_Accumulate(t *testing.T) {
	g, _ := NewScalarGrid(3, 2)
	g.Fill(1)
	g.Accumulate(planeSampler{a: 1, b: 10}, 0.5)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := 1 + (float64(x)+10*float64(y))*0.5
			if got := g.Get(x, y); got != want {
				t.Errorf("cell (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestScalarGrid_AccumulateParallelMatchesSequential(t *testing.T) {
	field, err := NewGradientField(24, 16, 12.5, newTestRand(17))
	if err != nil {
		t.Fatalf("NewGradientField failed: %v", err)
	}

	seq, _ := NewScalarGrid(37, 29)
	par, _ := NewScalarGrid(37, 29)
	for _, w := range []float64{1, 0.5, 0.25} {
		seq.Accumulate(field, w)
		par.AccumulateParallel(field, w, 4)
	}

	a := seq.Values()
	b := par.Values()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs: sequential %v, parallel %v", i, a[i], b[i])
		}
	}
}

func TestScalarGrid_AccumulateParallelFallback(t *testing.T) {
	g, _ := NewScalarGrid(2, 2)
	g.AccumulateParallel(planeSampler{a: 1, b: 1}, 1, 1)
	if got := g.Get(1, 1); got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
}

func TestScalarGrid_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []float64
	}{
		{"positive max", []float64{1, 2, 4, -1}, []float64{0.25, 0.5, 1, -0.25}},
		{"negative max", []float64{1, -8, 2, 0}, []float64{0.125, -1, 0.25, 0}},
		{"all zero", []float64{0, 0, 0, 0}, []float64{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := NewScalarGrid(2, 2)
			for i, v := range tt.values {
				g.Set(i%2, i/2, v)
			}
			g.Normalize()
			got := g.Values()
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("value %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScalarGrid_NormalizeNoise(t *testing.T) {
	g, _ := NewScalarGrid(40, 30)
	field, _ := NewGradientField(12, 8, 7, newTestRand(4))
	g.Accumulate(field, 1)
	g.Normalize()

	maxAbs := 0.0
	for _, v := range g.Values() {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	if math.Abs(maxAbs-1) > 1e-12 {
		t.Errorf("max |v| after Normalize = %v, want 1", maxAbs)
	}
}
