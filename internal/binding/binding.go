// Package binding adapts host requests to the corr package.
//
// Hosts hand over loosely typed JSON (numbers or numeric strings) and get back
// scalars. The HTTP router and the Lambda handler in this package are thin
// wrappers around [Evaluate].
package binding

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cast"

	"github.com/cwbudde/algo-corr/stats/corr"
)

// Op names an exported routine.
type Op string

const (
	OpMean      Op = "mean"
	OpCrossCorr Op = "crosscorr"
	OpLags      Op = "lags"
)

// Errors returned by request parsing and evaluation.
var (
	ErrInvalidSequence = errors.New("binding: invalid sequence")
	ErrUnknownOp       = errors.New("binding: unknown operation")
	ErrMalformed       = errors.New("binding: malformed request")
)

// Request is the host-side argument list.
type Request struct {
	X      []any `json:"x"`
	Y      []any `json:"y,omitempty"`
	MaxLag int   `json:"maxLag,omitempty"`
}

// Response carries a scalar result or a lag table. For a lag table Result is
// the peak coefficient. A degenerate correlation has a nil Result and
// Degenerate set, since NaN has no JSON encoding.
type Response struct {
	Op           Op        `json:"op"`
	Result       *float64  `json:"result"`
	Degenerate   bool      `json:"degenerate,omitempty"`
	Lags         []int     `json:"lags,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty"`
}

// ParseOp validates an operation name.
func ParseOp(s string) (Op, error) {
	switch op := Op(s); op {
	case OpMean, OpCrossCorr, OpLags:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
	}
}

// ParseSequence converts host values to float64. Numbers and numeric strings
// are accepted; NaN, infinities, null and booleans are not.
func ParseSequence(values []any) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		switch v.(type) {
		case nil, bool:
			return nil, fmt.Errorf("%w: element %d: %v is not a number", ErrInvalidSequence, i, v)
		}

		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrInvalidSequence, i, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: element %d is not finite", ErrInvalidSequence, i)
		}
		out[i] = f
	}

	return out, nil
}

// Evaluate runs op on req.
func Evaluate(op Op, req Request) (Response, error) {
	x, err := ParseSequence(req.X)
	if err != nil {
		return Response{}, fmt.Errorf("x: %w", err)
	}

	if op == OpMean {
		m, err := corr.Mean(x)
		if err != nil {
			return Response{}, err
		}
		return scalar(op, m), nil
	}

	y, err := ParseSequence(req.Y)
	if err != nil {
		return Response{}, fmt.Errorf("y: %w", err)
	}

	switch op {
	case OpCrossCorr:
		r, err := corr.CrossCorrelation(x, y)
		if err != nil {
			return Response{}, err
		}
		return scalar(op, r), nil
	case OpLags:
		lags, err := corr.CrossCorrelationLags(x, y, req.MaxLag)
		if err != nil {
			return Response{}, err
		}
		return lagTable(lags), nil
	default:
		return Response{}, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
}

// IsClientError reports whether err was caused by the request rather than
// by the server.
func IsClientError(err error) bool {
	for _, target := range []error{
		corr.ErrEmptyInput,
		corr.ErrLengthMismatch,
		corr.ErrInvalidLag,
		ErrInvalidSequence,
		ErrUnknownOp,
		ErrMalformed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func scalar(op Op, v float64) Response {
	if math.IsNaN(v) {
		return Response{Op: op, Degenerate: true}
	}

	return Response{Op: op, Result: &v}
}

func lagTable(l corr.Lags) Response {
	resp := Response{Op: OpLags, Lags: make([]int, len(l.Coefficients))}
	for i := range l.Coefficients {
		resp.Lags[i] = i - l.MaxLag
	}

	if len(l.Coefficients) > 0 && corr.IsDegenerate(l.Coefficients[0]) {
		resp.Degenerate = true
		return resp
	}

	resp.Coefficients = l.Coefficients
	_, peak := l.Peak()
	resp.Result = &peak

	return resp
}
