// Package seqio loads numeric sequences from command-line lists, CSV files and
// spreadsheets.
package seqio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// Errors returned while loading sequences.
var (
	ErrNoSheet     = errors.New("seqio: workbook has no sheets")
	ErrBadColumn   = errors.New("seqio: column out of range")
	ErrNotANumber  = errors.New("seqio: cell is not a number")
	ErrEmptyColumn = errors.New("seqio: column has no values")
)

// ReadTable reads all rows of a table. Files ending in .xlsx are read with
// excelize from the named sheet (the first sheet when sheet is empty); any
// other file is parsed as CSV.
func ReadTable(path, sheet string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readWorkbook(path, sheet)
	}

	return readCSV(path)
}

func readWorkbook(path, sheet string) (rows [][]string, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheet
		}
		sheet = sheets[0]
	}

	rows, err = f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("seqio: read sheet %q: %w", sheet, err)
	}

	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("seqio: parse %s: %w", path, err)
	}

	return rows, nil
}

// Column extracts the numeric values of column col (0-based). The first row is
// skipped when header is set. Blank and missing cells are skipped.
func Column(rows [][]string, col int, header bool) ([]float64, error) {
	if col < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadColumn, col)
	}

	start := 0
	if header {
		start = 1
	}

	var out []float64
	seen := false
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if col >= len(row) {
			continue
		}
		seen = true

		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}

		v, err := cast.ToFloat64E(cell)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column %d: %q", ErrNotANumber, i+1, col, cell)
		}
		out = append(out, v)
	}

	if !seen {
		return nil, fmt.Errorf("%w: %d", ErrBadColumn, col)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrEmptyColumn, col)
	}

	return out, nil
}

// Columns extracts two columns as paired sequences. A row contributes only when
// both cells hold a value, so the i-th elements of x and y always come from the
// same row. The first row is skipped when header is set.
func Columns(rows [][]string, colX, colY int, header bool) (x, y []float64, err error) {
	for _, col := range []int{colX, colY} {
		if col < 0 {
			return nil, nil, fmt.Errorf("%w: %d", ErrBadColumn, col)
		}
	}

	start := 0
	if header {
		start = 1
	}

	seenX, seenY := false, false
	for i := start; i < len(rows); i++ {
		row := rows[i]

		var cellX, cellY string
		if colX < len(row) {
			seenX = true
			cellX = strings.TrimSpace(row[colX])
		}
		if colY < len(row) {
			seenY = true
			cellY = strings.TrimSpace(row[colY])
		}
		if cellX == "" || cellY == "" {
			continue
		}

		vx, err := cast.ToFloat64E(cellX)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row %d column %d: %q", ErrNotANumber, i+1, colX, cellX)
		}
		vy, err := cast.ToFloat64E(cellY)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row %d column %d: %q", ErrNotANumber, i+1, colY, cellY)
		}
		x = append(x, vx)
		y = append(y, vy)
	}

	switch {
	case !seenX:
		return nil, nil, fmt.Errorf("%w: %d", ErrBadColumn, colX)
	case !seenY:
		return nil, nil, fmt.Errorf("%w: %d", ErrBadColumn, colY)
	case len(x) == 0:
		return nil, nil, fmt.Errorf("%w: no row has both columns %d and %d", ErrEmptyColumn, colX, colY)
	}

	return x, y, nil
}

// ParseList parses a list of numbers separated by commas, semicolons or
// whitespace.
func ParseList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})

	out := make([]float64, 0, len(fields))
	for i, field := range fields {
		v, err := cast.ToFloat64E(field)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %q", ErrNotANumber, i, field)
		}
		out = append(out, v)
	}

	return out, nil
}
