// Command corrinfo prints the mean of a sequence or the Pearson
// cross-correlation of two sequences.
//
// Usage:
//
//	corrinfo [flags]
//
// Sequences come either from inline lists (-x, -y) or from columns of a CSV
// or .xlsx file (-file with -colx, -coly).
//
// Examples:
//
//	corrinfo -x 1,2,3,4
//	corrinfo -x 1,2,3,4,5 -y 5,4,3,2,1
//	corrinfo -file data.csv -header -colx 0 -coly 1
//	corrinfo -file data.xlsx -sheet Sheet1 -colx 1 -coly 2 -maxlag 10
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-corr/internal/seqio"
	"github.com/cwbudde/algo-corr/stats/corr"
)

type options struct {
	x, y   string
	file   string
	sheet  string
	colX   int
	colY   int
	header bool
	maxLag int
	useFFT bool
}

func main() {
	var opts options
	flag.StringVar(&opts.x, "x", "", "first sequence as a comma separated list")
	flag.StringVar(&opts.y, "y", "", "second sequence as a comma separated list")
	flag.StringVar(&opts.file, "file", "", "read sequences from a CSV or .xlsx file")
	flag.StringVar(&opts.sheet, "sheet", "", "sheet name for .xlsx input (default first sheet)")
	flag.IntVar(&opts.colX, "colx", 0, "column index of the first sequence in -file")
	flag.IntVar(&opts.colY, "coly", -1, "column index of the second sequence in -file (-1: none)")
	flag.BoolVar(&opts.header, "header", false, "skip the first row of -file")
	flag.IntVar(&opts.maxLag, "maxlag", 0, "print correlation for lags -maxlag..maxlag")
	flag.BoolVar(&opts.useFFT, "fft", true, "use the FFT for lagged correlation")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: corrinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the mean of one sequence or the Pearson correlation of two.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  corrinfo -x 1,2,3,4\n")
		fmt.Fprintf(os.Stderr, "  corrinfo -x 1,2,3,4,5 -y 5,4,3,2,1\n")
		fmt.Fprintf(os.Stderr, "  corrinfo -file data.csv -header -colx 0 -coly 1 -maxlag 5\n")
	}
	flag.Parse()

	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, opts options) error {
	x, y, err := loadSequences(opts)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	meanX, err := corr.Mean(x)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "n\t%d\nmean(x)\t%.12g\n", len(x), meanX); err != nil {
		return err
	}

	if y != nil {
		meanY, err := corr.Mean(y)
		if err != nil {
			return fmt.Errorf("y: %w", err)
		}
		r, err := corr.CrossCorrelation(x, y)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(tw, "mean(y)\t%.12g\nr(x,y)\t%s\n", meanY, formatR(r)); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if y != nil && opts.maxLag > 0 {
		return printLags(w, x, y, opts)
	}

	return nil
}

func loadSequences(opts options) (x, y []float64, err error) {
	if opts.file != "" {
		if opts.x != "" || opts.y != "" {
			return nil, nil, errors.New("use either -file or -x/-y, not both")
		}

		rows, err := seqio.ReadTable(opts.file, opts.sheet)
		if err != nil {
			return nil, nil, err
		}
		if opts.colY >= 0 {
			return seqio.Columns(rows, opts.colX, opts.colY, opts.header)
		}
		x, err = seqio.Column(rows, opts.colX, opts.header)
		if err != nil {
			return nil, nil, err
		}
		return x, nil, nil
	}

	if opts.x == "" {
		return nil, nil, errors.New("no input: pass -x or -file (see -h)")
	}

	x, err = seqio.ParseList(opts.x)
	if err != nil {
		return nil, nil, fmt.Errorf("-x: %w", err)
	}
	if opts.y != "" {
		y, err = seqio.ParseList(opts.y)
		if err != nil {
			return nil, nil, fmt.Errorf("-y: %w", err)
		}
	}

	return x, y, nil
}

func printLags(w io.Writer, x, y []float64, opts options) error {
	lagFn := corr.CrossCorrelationLags
	if !opts.useFFT {
		lagFn = corr.CrossCorrelationLagsDirect
	}

	lags, err := lagFn(x, y, opts.maxLag)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "\nLag\tr\n---\t-\n"); err != nil {
		return err
	}
	for i, r := range lags.Coefficients {
		if _, err := fmt.Fprintf(tw, "%d\t%s\n", i-lags.MaxLag, formatR(r)); err != nil {
			return err
		}
	}

	if lag, r := lags.Peak(); !corr.IsDegenerate(r) {
		if _, err := fmt.Fprintf(tw, "\npeak\t%d (r=%s)\n", lag, formatR(r)); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func formatR(r float64) string {
	if corr.IsDegenerate(r) {
		return "undefined (zero variance)"
	}

	return fmt.Sprintf("%.6f", r)
}
