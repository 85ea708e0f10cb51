package corr

import "math"

// Mean returns the arithmetic mean of x.
// Returns ErrEmptyInput if x is empty.
//
// If the running sum of finite values overflows, the mean is recomputed from
// x[i]/n terms, so any mean that fits in a float64 is returned.
func Mean(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}

	n := float64(len(x))

	sum := kahanSum(x, 1)
	if math.IsInf(sum, 0) {
		return kahanSum(x, 1/n), nil
	}

	return sum / n, nil
}

// kahanSum returns the compensated sum of scale*x[i]. Once the running sum
// overflows or meets a non-finite value the compensation term is meaningless,
// so the plain sum is returned instead.
func kahanSum(x []float64, scale float64) float64 {
	var sum, c, plain float64
	for _, v := range x {
		v *= scale
		plain += v
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	if math.IsInf(plain, 0) || math.IsNaN(plain) {
		return plain
	}

	return sum
}
