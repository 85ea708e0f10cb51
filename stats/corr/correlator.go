package corr

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Correlator computes Pearson coefficients with reusable scratch buffers.
// It gives the same results as [CrossCorrelation] but does not allocate once
// its buffers have grown to the input length.
//
// A Correlator is not safe for concurrent use.
type Correlator struct {
	dx   []float64
	dy   []float64
	prod []float64
}

// NewCorrelator returns a Correlator with buffers sized for n samples.
// Buffers grow on demand, so n is only a hint.
func NewCorrelator(n int) *Correlator {
	if n < 0 {
		n = 0
	}

	return &Correlator{
		dx:   make([]float64, n),
		dy:   make([]float64, n),
		prod: make([]float64, n),
	}
}

// Correlate returns the Pearson correlation coefficient of x and y.
// Errors and the degenerate NaN result follow [CrossCorrelation].
func (c *Correlator) Correlate(x, y []float64) (float64, error) {
	if err := checkPair(x, y); err != nil {
		return 0, err
	}
	if isConstant(x) || isConstant(y) {
		return math.NaN(), nil
	}

	n := len(x)
	c.grow(n)
	dx, dy, prod := c.dx[:n], c.dy[:n], c.prod[:n]

	meanX, _ := Mean(x)
	meanY, _ := Mean(y)

	for i := range n {
		dx[i] = x[i] - meanX
		dy[i] = y[i] - meanY
	}

	vecmath.MulBlock(prod, dx, dy)
	sumCoproduct := kahanSum(prod, 1)

	vecmath.MulBlockInPlace(dx, dx)
	vecmath.MulBlockInPlace(dy, dy)

	return coefficient(sumCoproduct, kahanSum(dx, 1), kahanSum(dy, 1)), nil
}

func (c *Correlator) grow(n int) {
	if cap(c.dx) >= n {
		return
	}

	c.dx = make([]float64, n)
	c.dy = make([]float64, n)
	c.prod = make([]float64, n)
}
