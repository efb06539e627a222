package noise

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestNewGradientField_Invalid(t *testing.T) {
	rng := newTestRand(1)
	tests := []struct {
		name          string
		width, height int
		scale         float64
		want          error
	}{
		{"zero width", 0, 4, 1, ErrInvalidDimension},
		{"negative height", 4, -1, 1, ErrInvalidDimension},
		{"zero scale", 4, 4, 0, ErrInvalidScale},
		{"negative scale", 4, 4, -2, ErrInvalidScale},
		{"nan scale", 4, 4, math.NaN(), ErrInvalidScale},
		{"inf scale", 4, 4, math.Inf(1), ErrInvalidScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGradientField(tt.width, tt.height, tt.scale, rng)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGradientField_UnitGradients(t *testing.T) {
	f, err := NewGradientField(12, 8, 10, newTestRand(7))
	if err != nil {
		t.Fatalf("NewGradientField failed: %v", err)
	}
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			g := f.Gradient(x, y)
			l := math.Hypot(g.X, g.Y)
			if math.Abs(l-1) > 1e-12 {
				t.Fatalf("gradient (%d,%d) has length %v", x, y, l)
			}
		}
	}
}

func TestGradientField_GradientWraps(t *testing.T) {
	f, err := NewGradientField(5, 3, 1, newTestRand(3))
	if err != nil {
		t.Fatalf("NewGradientField failed: %v", err)
	}
	if f.Gradient(-1, 0) != f.Gradient(4, 0) {
		t.Error("x = -1 should wrap to x = 4")
	}
	if f.Gradient(2, -4) != f.Gradient(2, 2) {
		t.Error("y = -4 should wrap to y = 2")
	}
	if f.Gradient(12, 7) != f.Gradient(2, 1) {
		t.Error("large coordinates should wrap")
	}
}

func TestGradientField_ZeroAtLatticeNodes(t *testing.T) {
	const scale = 4.0
	f, err := NewGradientField(6, 5, scale, newTestRand(11))
	if err != nil {
		t.Fatalf("NewGradientField failed: %v", err)
	}
	for cy := -5; cy <= 10; cy++ {
		for cx := -6; cx <= 12; cx++ {
			if v := f.Sample(float64(cx)*scale, float64(cy)*scale); v != 0 {
				t.Fatalf("Sample at node (%d,%d) = %v, want 0", cx, cy, v)
			}
		}
	}
}

func TestGradientField_FiniteAndBounded(t *testing.T) {
	f, err := NewGradientField(12, 8, 3.5, newTestRand(5))
	if err != nil {
		t.Fatalf("NewGradientField failed: %v", err)
	}
	r := newTestRand(99)
	for i := 0; i < 5000; i++ {
		x := (r.Float64() - 0.5) * 1e4
		y := (r.Float64() - 0.5) * 1e4
		v := f.Sample(x, y)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Sample(%v, %v) is not finite: %v", x, y, v)
		}
		// 2D gradient noise with unit gradients is bounded by sqrt(2)/2.
		if math.Abs(v) > math.Sqrt2/2+1e-9 {
			t.Fatalf("Sample(%v, %v) = %v out of bounds", x, y, v)
		}
	}
}

func TestGradientField_Periodic(t *testing.T) {
	const scale = 2.0
	f, err := NewGradientField(7, 4, scale, newTestRand(21))
	if err != nil {
		t.Fatalf("NewGradientField failed: %v", err)
	}
	periodX := 7 * scale
	periodY := 4 * scale
	for _, p := range [][2]float64{{0.3, 0.7}, {5.25, 1.5}, {9.125, 6.5}} {
		a := f.Sample(p[0], p[1])
		b := f.Sample(p[0]+periodX, p[1]-periodY)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("Sample not periodic at %v: %v vs %v", p, a, b)
		}
	}
}

func TestGradientField_Continuous(t *testing.T) {
	f, err := NewGradientField(8, 8, 1, newTestRand(8))
	if err != nil {
		t.Fatalf("NewGradientField failed: %v", err)
	}
	// Crossing a cell edge should not produce a jump.
	const eps = 1e-7
	for _, y := range []float64{0.2, 1.5, 3.9} {
		left := f.Sample(3-eps, y)
		right := f.Sample(3+eps, y)
		if math.Abs(left-right) > 1e-5 {
			t.Errorf("discontinuity at x=3, y=%v: %v vs %v", y, left, right)
		}
	}
}

func TestGradientField_Deterministic(t *testing.T) {
	a, _ := NewGradientField(12, 8, 10, newTestRand(42))
	b, _ := NewGradientField(12, 8, 10, newTestRand(42))
	for i := 0; i < 100; i++ {
		x := float64(i) * 1.37
		y := float64(i) * 0.61
		if a.Sample(x, y) != b.Sample(x, y) {
			t.Fatalf("same seed produced different samples at (%v,%v)", x, y)
		}
	}
}

func TestGradientField_Resize(t *testing.T) {
	f, err := NewGradientField(2, 2, 1, newTestRand(1))
	if err != nil {
		t.Fatalf("NewGradientField failed: %v", err)
	}
	if err := f.Resize(9, 3, newTestRand(2)); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if f.Width() != 9 || f.Height() != 3 {
		t.Errorf("expected 9x3 after resize, got %dx%d", f.Width(), f.Height())
	}
	if err := f.Resize(0, 3, newTestRand(2)); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}
	if f.Width() != 9 {
		t.Error("failed resize should leave the field unchanged")
	}
}
