package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Kind int

const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	if k == Categorical {
		return "categorical"
	}
	return "numeric"
}

// Column holds one column. Numeric columns fill Values, categorical ones Labels.
type Column struct {
	Name   string
	Kind   Kind
	Values []float64
	Labels []string
}

// Cell renders row i the way it would appear in the source file.
func (c *Column) Cell(i int) string {
	if c.Kind == Categorical {
		return c.Labels[i]
	}
	return strconv.FormatFloat(c.Values[i], 'f', -1, 64)
}

// Frame is an immutable column-oriented table.
type Frame struct {
	cols  []*Column
	index map[string]int
	rows  int
}

// New builds a frame from a header and string records, inferring column kinds.
// A column is numeric when every non-empty cell parses as a float.
func New(header []string, records [][]string) (*Frame, error) {
	if len(header) == 0 {
		return nil, &Error{Reason: "no header"}
	}
	names := make([]string, len(header))
	seen := map[string]bool{}
	for i, h := range header {
		h = normalizeHeader(h)
		if h == "" {
			return nil, &Error{Column: fmt.Sprintf("#%d", i+1), Reason: "empty column name"}
		}
		if seen[h] {
			return nil, &Error{Column: h, Reason: "duplicate column"}
		}
		seen[h] = true
		names[i] = h
	}
	for r, rec := range records {
		if len(rec) != len(names) {
			return nil, &Error{Row: r + 2, Reason: fmt.Sprintf("expected %d fields, got %d", len(names), len(rec))}
		}
	}

	f := &Frame{index: make(map[string]int, len(names)), rows: len(records)}
	for i, name := range names {
		col, err := buildColumn(name, i, records)
		if err != nil {
			return nil, err
		}
		f.index[name] = len(f.cols)
		f.cols = append(f.cols, col)
	}
	return f, nil
}

func buildColumn(name string, idx int, records [][]string) (*Column, error) {
	numeric, nonEmpty := true, 0
	vals := make([]float64, len(records))
	for r, rec := range records {
		s := strings.TrimSpace(rec[idx])
		if s == "" {
			continue
		}
		nonEmpty++
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			numeric = false
			break
		}
		vals[r] = v
	}
	if len(records) > 0 && nonEmpty == 0 {
		return nil, &Error{Column: name, Reason: "column has no values"}
	}
	if numeric {
		for r, rec := range records {
			if strings.TrimSpace(rec[idx]) == "" {
				return nil, &Error{Row: r + 2, Column: name, Reason: "missing numeric value"}
			}
			if math.IsNaN(vals[r]) || math.IsInf(vals[r], 0) {
				return nil, &Error{Row: r + 2, Column: name, Reason: "non-finite numeric value"}
			}
		}
		return &Column{Name: name, Kind: Numeric, Values: vals}, nil
	}
	labels := make([]string, len(records))
	for r, rec := range records {
		labels[r] = strings.TrimSpace(rec[idx])
	}
	return &Column{Name: name, Kind: Categorical, Labels: labels}, nil
}

func normalizeHeader(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	return strings.TrimSpace(s)
}

func (f *Frame) Rows() int { return f.rows }

// Shape returns (rows, columns) like the dashboard's model info panel.
func (f *Frame) Shape() (int, int) { return f.rows, len(f.cols) }

func (f *Frame) Names() []string {
	out := make([]string, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.Name
	}
	return out
}

func (f *Frame) Columns() []*Column { return f.cols }

func (f *Frame) Column(name string) (*Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

// Numeric returns the values of a numeric column.
func (f *Frame) Numeric(name string) ([]float64, error) {
	c, ok := f.Column(name)
	if !ok {
		return nil, &Error{Column: name, Reason: "no such column"}
	}
	if c.Kind != Numeric {
		return nil, &Error{Column: name, Reason: "column is not numeric"}
	}
	return c.Values, nil
}

// Drop returns a frame without the named columns. Unknown names are ignored.
func (f *Frame) Drop(names ...string) *Frame {
	skip := map[string]bool{}
	for _, n := range names {
		skip[n] = true
	}
	out := &Frame{index: map[string]int{}, rows: f.rows}
	for _, c := range f.cols {
		if skip[c.Name] {
			continue
		}
		out.index[c.Name] = len(out.cols)
		out.cols = append(out.cols, c)
	}
	return out
}

// Head returns up to n rows as display strings.
func (f *Frame) Head(n int) [][]string {
	if n > f.rows {
		n = f.rows
	}
	if n < 0 {
		n = 0
	}
	out := make([][]string, n)
	for r := 0; r < n; r++ {
		row := make([]string, len(f.cols))
		for i, c := range f.cols {
			row[i] = c.Cell(r)
		}
		out[r] = row
	}
	return out
}

// Matrix returns the named numeric columns as row-major float rows.
func (f *Frame) Matrix(names []string) ([][]float64, error) {
	cols := make([][]float64, len(names))
	for i, n := range names {
		v, err := f.Numeric(n)
		if err != nil {
			return nil, err
		}
		cols[i] = v
	}
	out := make([][]float64, f.rows)
	for r := range out {
		row := make([]float64, len(names))
		for i := range cols {
			row[i] = cols[i][r]
		}
		out[r] = row
	}
	return out, nil
}
