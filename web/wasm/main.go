//go:build js && wasm

package main

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/cwbudde/algo-corr/stats/corr"
)

var (
	funcs []js.Func

	errArgs = errors.New("wrong number of arguments")
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("mean", export(func(args []js.Value) any {
		if len(args) != 1 {
			return jsError(errArgs)
		}
		x, err := toSequence(args[0])
		if err != nil {
			return jsError(err)
		}
		m, err := corr.Mean(x)
		if err != nil {
			return jsError(err)
		}
		return m
	}))

	api.Set("crossCorrelation", export(func(args []js.Value) any {
		if len(args) != 2 {
			return jsError(errArgs)
		}
		x, y, err := toPair(args[0], args[1])
		if err != nil {
			return jsError(err)
		}
		r, err := corr.CrossCorrelation(x, y)
		if err != nil {
			return jsError(err)
		}
		return r
	}))

	api.Set("crossCorrelationLags", export(func(args []js.Value) any {
		if len(args) != 3 {
			return jsError(errArgs)
		}
		x, y, err := toPair(args[0], args[1])
		if err != nil {
			return jsError(err)
		}
		if args[2].Type() != js.TypeNumber {
			return jsError(corr.ErrInvalidLag)
		}
		lags, err := corr.CrossCorrelationLags(x, y, args[2].Int())
		if err != nil {
			return jsError(err)
		}

		coeffs := js.Global().Get("Float64Array").New(len(lags.Coefficients))
		for i, v := range lags.Coefficients {
			coeffs.SetIndex(i, v)
		}
		out := js.Global().Get("Object").New()
		out.Set("maxLag", lags.MaxLag)
		out.Set("coefficients", coeffs)
		return out
	}))

	js.Global().Set("AlgoCorr", api)
	select {}
}

// toSequence copies a JS array or typed array of numbers.
func toSequence(v js.Value) ([]float64, error) {
	if v.Type() != js.TypeObject || v.Get("length").Type() != js.TypeNumber {
		return nil, errors.New("expected an array of numbers")
	}

	n := v.Length()
	out := make([]float64, n)
	for i := range n {
		item := v.Index(i)
		if item.Type() != js.TypeNumber {
			return nil, fmt.Errorf("element %d is not a number", i)
		}
		out[i] = item.Float()
	}

	return out, nil
}

func toPair(a, b js.Value) (x, y []float64, err error) {
	x, err = toSequence(a)
	if err != nil {
		return nil, nil, fmt.Errorf("x: %w", err)
	}
	y, err = toSequence(b)
	if err != nil {
		return nil, nil, fmt.Errorf("y: %w", err)
	}
	return x, y, nil
}

func jsError(err error) any {
	out := js.Global().Get("Object").New()
	out.Set("error", err.Error())
	return out
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
