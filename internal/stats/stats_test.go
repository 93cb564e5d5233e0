package stats

import (
	"math"
	"testing"
)

func TestWilsonInterval_ClosedForm(t *testing.T) {
	// 24/30 at 95%: bounds from the closed-form Wilson formula.
	lower, upper := WilsonInterval(24, 30, 0.95)

	wantLower := 0.6269
	wantUpper := 0.9049
	if math.Abs(lower-wantLower) > 1e-4 {
		t.Errorf("lower = %.6f, want %.4f", lower, wantLower)
	}
	if math.Abs(upper-wantUpper) > 1e-4 {
		t.Errorf("upper = %.6f, want %.4f", upper, wantUpper)
	}
}

func TestWilsonInterval_EmptySample(t *testing.T) {
	lower, upper := WilsonInterval(0, 0, 0.95)
	if lower != 0 || upper != 0 {
		t.Errorf("empty sample should give (0,0), got (%v,%v)", lower, upper)
	}
}

func TestWilsonInterval_Bounds(t *testing.T) {
	// All successes: upper bound clamps to 1, lower stays below 1.
	lower, upper := WilsonInterval(30, 30, 0.95)
	if upper > 1 {
		t.Errorf("upper = %v, must be <= 1", upper)
	}
	if lower >= 1 {
		t.Errorf("lower = %v, must be < 1", lower)
	}

	// No successes: lower bound clamps to 0.
	lower, upper = WilsonInterval(0, 30, 0.95)
	if lower < 0 {
		t.Errorf("lower = %v, must be >= 0", lower)
	}
	if upper <= 0 {
		t.Errorf("upper = %v, must be > 0", upper)
	}
}

func TestProportionTest(t *testing.T) {
	tests := []struct {
		name      string
		successes int
		total     int
		expected  float64
		wantP     float64
	}{
		// Observed exactly equals expected: z=0, p=1.
		{"observed equals expected", 24, 30, 0.80, 1.0},
		// 80% observed against 60% expected over 30 samples.
		{"above expected", 24, 30, 0.60, 0.0253},
		// 60% observed against 80% expected over 30 samples.
		{"below expected", 18, 30, 0.80, 0.0062},
		// 75% observed against 70% expected over 40 samples: not significant.
		{"small delta", 30, 40, 0.70, 0.4902},
	}
	for _, tt := range tests {
		got := ProportionTest(tt.successes, tt.total, tt.expected)
		if math.Abs(got-tt.wantP) > 1e-4 {
			t.Errorf("%s: ProportionTest(%d, %d, %v) = %.6f, want %.4f",
				tt.name, tt.successes, tt.total, tt.expected, got, tt.wantP)
		}
	}
}

func TestProportionTest_Degenerate(t *testing.T) {
	if p := ProportionTest(0, 0, 0.8); p != 1.0 {
		t.Errorf("total=0 should give p=1.0, got %v", p)
	}
	// expected=1.0 makes the standard error 0.
	if p := ProportionTest(30, 30, 1.0); p != 1.0 {
		t.Errorf("zero standard error should give p=1.0, got %v", p)
	}
}

func TestSignificant(t *testing.T) {
	if Significant(0.05) {
		t.Error("p=0.05 is not below the threshold")
	}
	if !Significant(0.049) {
		t.Error("p=0.049 should be significant")
	}
}
