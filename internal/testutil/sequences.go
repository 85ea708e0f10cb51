package testutil

import (
	"math"
	"math/rand"
)

// Noise returns uniform values in [-amplitude, amplitude) from a fixed seed.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Sine returns length samples of amplitude*sin(2*pi*cycles*i/length + phase).
func Sine(cycles, phase, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}
	return out
}

// Const returns a sequence of length copies of value.
func Const(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Affine returns a*x[i] + b for every element of x.
func Affine(x []float64, a, b float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = a*v + b
	}
	return out
}

// Shift returns x delayed by k samples (k > 0) or advanced (k < 0), zero
// filled, keeping the original length.
func Shift(x []float64, k int) []float64 {
	out := make([]float64, len(x))
	for i := range out {
		j := i - k
		if j >= 0 && j < len(x) {
			out[i] = x[j]
		}
	}
	return out
}
