// Package stats holds the pure numeric functions behind rule
// validation: Wilson score intervals and two-proportion significance
// tests. Nothing here errors on small samples; callers gate on
// MinSampleSize before trusting a result.
package stats

import (
	"math"
)

const (
	// MinSampleSize is the floor below which no statistical conclusion
	// is drawn. Callers must report insufficient data instead of
	// invoking the test.
	MinSampleSize = 30

	// SignificanceLevel is the fixed p-value threshold.
	SignificanceLevel = 0.05
)

// WilsonInterval returns the Wilson score confidence interval for a
// binomial proportion. More accurate than the normal approximation at
// small sample sizes. Returns (0, 0) when total is 0.
func WilsonInterval(successes, total int, confidence float64) (lower, upper float64) {
	if total == 0 {
		return 0, 0
	}

	p := float64(successes) / float64(total)
	n := float64(total)
	z := normalQuantile((1 + confidence) / 2)

	denominator := 1 + z*z/n
	center := (p + z*z/(2*n)) / denominator
	margin := z * math.Sqrt((p*(1-p)+z*z/(4*n))/n) / denominator

	lower = math.Max(0, center-margin)
	upper = math.Min(1, center+margin)
	return lower, upper
}

// ProportionTest runs a two-sided z-test of an observed proportion
// against a fixed expected proportion using the normal approximation.
// Returns the p-value, or 1.0 (no evidence) when total is 0 or the
// standard error degenerates.
func ProportionTest(successes, total int, expectedProportion float64) float64 {
	if total == 0 {
		return 1.0
	}

	observed := float64(successes) / float64(total)
	se := math.Sqrt(expectedProportion * (1 - expectedProportion) / float64(total))
	if se == 0 {
		return 1.0
	}

	z := (observed - expectedProportion) / se
	return 2 * (1 - normalCDF(math.Abs(z)))
}

// Significant reports whether p clears the fixed threshold.
func Significant(pValue float64) bool {
	return pValue < SignificanceLevel
}

// normalQuantile is the inverse standard normal CDF.
func normalQuantile(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

// normalCDF is the standard normal CDF.
func normalCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}
