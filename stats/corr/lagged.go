package corr

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// minFFTSize keeps very short inputs away from trivial transform sizes.
const minFFTSize = 16

// Lags holds correlation coefficients for lags -MaxLag..MaxLag.
// Coefficients[i] belongs to lag i - MaxLag.
type Lags struct {
	MaxLag       int
	Coefficients []float64
}

// At returns the coefficient at lag, or NaN if lag is out of range.
func (l Lags) At(lag int) float64 {
	i := lag + l.MaxLag
	if i < 0 || i >= len(l.Coefficients) {
		return math.NaN()
	}

	return l.Coefficients[i]
}

// Peak returns the lag with the largest absolute coefficient and that
// coefficient. Ties resolve to the smallest lag. For degenerate input the
// result is (0, NaN).
func (l Lags) Peak() (lag int, r float64) {
	best := -1
	for i, v := range l.Coefficients {
		if math.IsNaN(v) {
			continue
		}
		if best < 0 || math.Abs(v) > math.Abs(l.Coefficients[best]) {
			best = i
		}
	}

	if best < 0 {
		return 0, math.NaN()
	}

	return best - l.MaxLag, l.Coefficients[best]
}

// CrossCorrelationLags returns the normalized cross-correlation of x and y for
// every lag in [-maxLag, maxLag], computed with an FFT.
//
// The coefficient at lag k is sum(dx[t]*dy[t+k]) / sqrt(sum(dx^2)*sum(dy^2)),
// where dx and dy are the mean-removed sequences and terms outside the
// sequences are dropped. Lag 0 equals [CrossCorrelation]. Constant input yields
// NaN at every lag.
func CrossCorrelationLags(x, y []float64, maxLag int) (Lags, error) {
	dx, dy, err := prepareLags(x, y, maxLag)
	if err != nil {
		return Lags{}, err
	}
	if isConstant(x) || isConstant(y) {
		return degenerateLags(maxLag), nil
	}

	n := len(dx)
	fftSize := max(nextPowerOf2(2*n-1), minFFTSize)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Lags{}, fmt.Errorf("corr: failed to create FFT plan: %w", err)
	}

	xPadded := make([]complex128, fftSize)
	yPadded := make([]complex128, fftSize)
	for i := range n {
		xPadded[i] = complex(dx[i], 0)
		yPadded[i] = complex(dy[i], 0)
	}

	xFreq := make([]complex128, fftSize)
	yFreq := make([]complex128, fftSize)

	if err := plan.Forward(xFreq, xPadded); err != nil {
		return Lags{}, fmt.Errorf("corr: forward FFT failed: %w", err)
	}
	if err := plan.Forward(yFreq, yPadded); err != nil {
		return Lags{}, fmt.Errorf("corr: forward FFT failed: %w", err)
	}

	// conj(X) * Y gives sum dx[t]*dy[t+k] at index k, negative lags wrap.
	for i := range xFreq {
		xConj := complex(real(xFreq[i]), -imag(xFreq[i]))
		xFreq[i] = xConj * yFreq[i]
	}

	if err := plan.Inverse(yFreq, xFreq); err != nil {
		return Lags{}, fmt.Errorf("corr: inverse FFT failed: %w", err)
	}

	raw := make([]float64, 2*maxLag+1)
	for k := -maxLag; k <= maxLag; k++ {
		idx := k
		if k < 0 {
			idx = fftSize + k
		}
		raw[k+maxLag] = real(yFreq[idx])
	}

	return normalizeLags(raw, dx, dy, maxLag), nil
}

// CrossCorrelationLagsDirect computes the same result as
// [CrossCorrelationLags] in the time domain. It is O(n*maxLag) and exact up to
// summation order, which makes it the better choice for short inputs.
func CrossCorrelationLagsDirect(x, y []float64, maxLag int) (Lags, error) {
	dx, dy, err := prepareLags(x, y, maxLag)
	if err != nil {
		return Lags{}, err
	}
	if isConstant(x) || isConstant(y) {
		return degenerateLags(maxLag), nil
	}

	n := len(dx)
	raw := make([]float64, 2*maxLag+1)
	for k := -maxLag; k <= maxLag; k++ {
		var sum float64
		for t := range n {
			j := t + k
			if j < 0 || j >= n {
				continue
			}
			sum += dx[t] * dy[j]
		}
		raw[k+maxLag] = sum
	}

	return normalizeLags(raw, dx, dy, maxLag), nil
}

// prepareLags validates the inputs and returns the mean-removed sequences.
func prepareLags(x, y []float64, maxLag int) (dx, dy []float64, err error) {
	if err := checkPair(x, y); err != nil {
		return nil, nil, err
	}
	if maxLag < 0 || maxLag >= len(x) {
		return nil, nil, fmt.Errorf("%w: %d for length %d", ErrInvalidLag, maxLag, len(x))
	}

	meanX, _ := Mean(x)
	meanY, _ := Mean(y)

	dx = make([]float64, len(x))
	dy = make([]float64, len(y))
	for i := range x {
		dx[i] = x[i] - meanX
		dy[i] = y[i] - meanY
	}

	return dx, dy, nil
}

func normalizeLags(raw, dx, dy []float64, maxLag int) Lags {
	var sumSqX, sumSqY float64
	for i := range dx {
		sumSqX += dx[i] * dx[i]
		sumSqY += dy[i] * dy[i]
	}

	for i, v := range raw {
		raw[i] = coefficient(v, sumSqX, sumSqY)
	}

	return Lags{MaxLag: maxLag, Coefficients: raw}
}

func degenerateLags(maxLag int) Lags {
	coeffs := make([]float64, 2*maxLag+1)
	for i := range coeffs {
		coeffs[i] = math.NaN()
	}

	return Lags{MaxLag: maxLag, Coefficients: coeffs}
}

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
