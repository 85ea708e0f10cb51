package corr

import (
	"fmt"
	"math"
)

// CrossCorrelation returns the Pearson correlation coefficient of x and y.
//
// The coefficient is computed in two passes: the means first, then the sums of
// squared deviations and the sum of deviation products. If either sequence is
// constant the result is NaN and the error is nil.
func CrossCorrelation(x, y []float64) (float64, error) {
	if err := checkPair(x, y); err != nil {
		return 0, err
	}
	if isConstant(x) || isConstant(y) {
		return math.NaN(), nil
	}

	meanX, _ := Mean(x)
	meanY, _ := Mean(y)

	var sumSqX, sumSqY, sumCoproduct float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sumSqX += dx * dx
		sumSqY += dy * dy
		sumCoproduct += dx * dy
	}

	return coefficient(sumCoproduct, sumSqX, sumSqY), nil
}

// IsDegenerate reports whether r is the sentinel returned for zero-variance
// input.
func IsDegenerate(r float64) bool {
	return math.IsNaN(r)
}

func checkPair(x, y []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return ErrEmptyInput
	}
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	return nil
}

// isConstant reports whether every element equals x[0]. A constant sequence
// whose value is not exactly representable leaves a rounding residual in its
// deviations, so zero variance cannot be detected from the sums alone.
func isConstant(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}

// coefficient normalizes a deviation coproduct. The square roots are taken
// separately so the denominator neither overflows nor underflows for sums that
// are themselves finite. Finite results are clamped to [-1, 1]; NaN and
// infinities pass through.
func coefficient(sumCoproduct, sumSqX, sumSqY float64) float64 {
	if sumSqX == 0 || sumSqY == 0 {
		return math.NaN()
	}

	r := sumCoproduct / (math.Sqrt(sumSqX) * math.Sqrt(sumSqY))
	switch {
	case math.IsInf(r, 0):
		return r
	case r > 1:
		return 1
	case r < -1:
		return -1
	default:
		return r
	}
}
