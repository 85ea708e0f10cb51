// Package corr provides the arithmetic mean and the Pearson cross-correlation
// coefficient of real-valued sequences.
//
// All package-level functions are pure: they never modify their inputs and
// share no state, so they may be called concurrently.
//
// # Usage
//
//	m, err := corr.Mean(x)
//	r, err := corr.CrossCorrelation(x, y)
//	if corr.IsDegenerate(r) {
//		// one of the sequences is constant
//	}
//
// For repeated correlation of equal-length sequences, reuse a [Correlator]:
//
//	c := corr.NewCorrelator(len(x))
//	r, err := c.Correlate(x, y)
//
// # Degenerate input
//
// The coefficient is undefined when either sequence has zero variance. In that
// case [CrossCorrelation] returns NaN and a nil error; [IsDegenerate] tests for
// it. Empty and mismatched-length inputs are errors.
//
// # Lagged correlation
//
// [CrossCorrelationLags] evaluates the coefficient over a range of lags using
// an FFT. Its lag-0 value equals [CrossCorrelation].
package corr
