package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Load picks the reader by file extension (.xlsx or anything else as CSV).
func Load(path string) (*Frame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path)
	default:
		return LoadCSV(path)
	}
}

func LoadCSV(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Path: path, Reason: "open", Err: err}
	}
	defer f.Close()

	fr, err := ReadCSV(f)
	if err != nil {
		return nil, withPath(err, path)
	}
	return fr, nil
}

// ReadCSV reads a header line followed by records.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &Error{Reason: "empty file"}
		}
		return nil, &Error{Reason: "read header", Err: err}
	}
	var recs [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &Error{Row: len(recs) + 2, Reason: "read record", Err: err}
		}
		if blank(rec) {
			continue
		}
		recs = append(recs, rec)
	}
	return New(head, recs)
}

// LoadXLSX reads the first sheet of a workbook.
func LoadXLSX(path string) (*Frame, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &Error{Path: path, Reason: "open workbook", Err: err}
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, &Error{Path: path, Reason: "workbook has no sheets"}
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, &Error{Path: path, Reason: "read sheet " + sheets[0], Err: err}
	}
	if len(rows) == 0 {
		return nil, &Error{Path: path, Reason: "empty sheet"}
	}
	head := rows[0]
	var recs [][]string
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		// excelize trims trailing empty cells
		for len(row) < len(head) {
			row = append(row, "")
		}
		recs = append(recs, row)
	}
	fr, err := New(head, recs)
	if err != nil {
		return nil, withPath(err, path)
	}
	return fr, nil
}

func blank(rec []string) bool {
	for _, s := range rec {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

func withPath(err error, path string) error {
	var de *Error
	if errors.As(err, &de) && de.Path == "" {
		de.Path = path
	}
	return err
}
