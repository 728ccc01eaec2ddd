// SPDX-License-Identifier: MIT
// Package: matrix
//
// impl_csv.go - dense CSV exchange format.
//
// Format:
//   - one matrix row per line, fields separated by ',', no header;
//   - values written with a fixed 6-decimal format (%f);
//   - readers accept any strconv-parsable float and surrounding blanks.

package matrix

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	methodReadCSV  = "ReadCSV"
	methodWriteCSV = "WriteCSV"

	csvPrecision = 6 // digits after the decimal point, same as %f
)

// ReadCSV decodes exactly rows×cols values from r.
// MAIN DESCRIPTION:
//   - Every record must carry cols fields and there must be exactly rows records.
//
// Errors:
//   - ErrInvalidDimensions for a bad requested shape.
//   - ErrMalformedCSV (wrapped with line context) for field-count, parse or
//     record-count violations; underlying I/O errors are wrapped as-is.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ReadCSV(r io.Reader, rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodReadCSV, err)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = cols
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		rec []string
		i   int
		v   float64
	)
	for i = 0; ; i++ {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%s: %v: %w", methodReadCSV, perr, ErrMalformedCSV)
			}
			return nil, fmt.Errorf("%s: %w", methodReadCSV, err)
		}
		if i >= rows {
			return nil, fmt.Errorf("%s: more than %d rows: %w", methodReadCSV, rows, ErrMalformedCSV)
		}
		for j, field := range rec {
			v, err = strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d col %d: %v: %w", methodReadCSV, i, j, err, ErrMalformedCSV)
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("%s: %w", methodReadCSV, err)
			}
		}
	}
	if i != rows {
		return nil, fmt.Errorf("%s: got %d rows, want %d: %w", methodReadCSV, i, rows, ErrMalformedCSV)
	}

	return m, nil
}

// WriteCSV encodes m as one line per row with %f formatted fields.
// Complexity: O(r*c).
func WriteCSV(w io.Writer, m *Dense) error {
	if m == nil {
		return fmt.Errorf("%s: %w", methodWriteCSV, ErrNilMatrix)
	}
	cw := csv.NewWriter(w)
	rec := make([]string, m.c)
	var err error
	m.Do(func(i, j int, v float64) bool {
		rec[j] = strconv.FormatFloat(v, 'f', csvPrecision, 64)
		if j+1 < m.c {
			return true
		}
		if err = cw.Write(rec); err != nil {
			err = fmt.Errorf("%s: row %d: %w", methodWriteCSV, i, err)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteCSV, err)
	}

	return nil
}

// LoadCSV opens path and reads a rows×cols matrix from it.
func LoadCSV(path string, rows, cols int) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodReadCSV, err)
	}
	defer f.Close()

	return ReadCSV(f, rows, cols)
}

// SaveCSV creates (or truncates) path and writes m into it.
// The file is always closed; a close failure is reported when the write succeeded.
func SaveCSV(path string, m *Dense) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w", methodWriteCSV, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: close %s: %w", methodWriteCSV, path, cerr)
		}
	}()

	return WriteCSV(f, m)
}
