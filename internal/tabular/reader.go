// Package tabular reads header-delimited CSV data into typed records and
// sums numeric columns per category.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"datareports/internal/core"
)

var (
	ErrInvalidEncoding = errors.New("invalid UTF-8")
	// ErrEmptyInput means the input has no header row at all.
	ErrEmptyInput = errors.New("empty input")
)

// Schema names the columns a Reader extracts.
type Schema struct {
	CategoryField string
	NumericFields []string
}

// Record is one data row reduced to the schema columns. Values is aligned
// with Schema.NumericFields; a column missing from a short row reads as "".
type Record struct {
	Line     int
	Category string
	Values   []string
	Raw      []string
}

// Reader yields Records from CSV input. The header is read and mapped to
// column indexes once, in NewReader.
type Reader struct {
	csv    *csv.Reader
	catIdx int
	numIdx []int
	header []string
}

// NewReader reads the header row from r and resolves the schema columns.
// A missing column is reported as core.ErrMissingColumn and input without
// any row as ErrEmptyInput.
func NewReader(r io.Reader, schema Schema) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if err := checkEncoding(header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		if _, dup := colIndex[col]; !dup {
			colIndex[col] = i
		}
	}

	var missing []string
	catIdx, ok := colIndex[schema.CategoryField]
	if !ok {
		missing = append(missing, schema.CategoryField)
	}
	numIdx := make([]int, len(schema.NumericFields))
	for i, name := range schema.NumericFields {
		idx, ok := colIndex[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		numIdx[i] = idx
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s; got headers=%v", core.ErrMissingColumn, strings.Join(missing, ","), header)
	}

	return &Reader{
		csv:    cr,
		catIdx: catIdx,
		numIdx: numIdx,
		header: header,
	}, nil
}

// Header returns the column names as read from the input.
func (r *Reader) Header() []string {
	return append([]string(nil), r.header...)
}

// Read returns the next record, or io.EOF after the last one. Any other
// error means the input could not be decoded.
func (r *Reader) Read() (Record, error) {
	fields, err := r.csv.Read()
	if err != nil {
		return Record{}, err
	}
	line, _ := r.csv.FieldPos(0)
	if err := checkEncoding(fields); err != nil {
		return Record{}, fmt.Errorf("line %d: %w", line, err)
	}

	rec := Record{
		Line:     line,
		Category: safeGet(fields, r.catIdx),
		Values:   make([]string, len(r.numIdx)),
		Raw:      fields,
	}
	for i, idx := range r.numIdx {
		rec.Values[i] = safeGet(fields, idx)
	}
	return rec, nil
}

func safeGet(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func checkEncoding(fields []string) error {
	for _, f := range fields {
		if !utf8.ValidString(f) {
			return ErrInvalidEncoding
		}
	}
	return nil
}
