package corr

import "errors"

// Errors returned by the mean and correlation functions.
var (
	ErrEmptyInput     = errors.New("corr: empty input")
	ErrLengthMismatch = errors.New("corr: sequence length mismatch")
	ErrInvalidLag     = errors.New("corr: invalid maximum lag")
)
