// Package source fetches the per-round Cartola scouting datasets.
//
// Each round is one flat CSV. The package does not interpret columns beyond
// header lookup; renaming and typing happen in the pipeline.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// RawRound is one fetched round dataset as it came off the wire.
type RawRound struct {
	Number int
	Header []string
	Rows   [][]string

	index map[string]int
}

// DecodeCSV reads a round dataset. Rows shorter than the header are padded
// with empty cells; extra trailing cells are dropped.
func DecodeCSV(round int, r io.Reader) (*RawRound, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("round %d: empty dataset", round)
	}
	if err != nil {
		return nil, fmt.Errorf("round %d: read header: %w", round, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rr := &RawRound{Number: round, Header: header}
	rr.buildIndex()

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("round %d: line %d: %w", round, line, err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		row := make([]string, len(header))
		copy(row, rec)
		rr.Rows = append(rr.Rows, row)
	}
	return rr, nil
}

func (r *RawRound) buildIndex() {
	r.index = make(map[string]int, len(r.Header))
	for i, name := range r.Header {
		name = strings.TrimSpace(name)
		if _, dup := r.index[name]; !dup {
			r.index[name] = i
		}
	}
}

// Has reports whether the dataset carries a column.
func (r *RawRound) Has(col string) bool {
	if r.index == nil {
		r.buildIndex()
	}
	_, ok := r.index[col]
	return ok
}

// Cell returns the trimmed value of col in row i, or "" if the column is
// absent.
func (r *RawRound) Cell(i int, col string) string {
	if r.index == nil {
		r.buildIndex()
	}
	j, ok := r.index[col]
	if !ok || i < 0 || i >= len(r.Rows) {
		return ""
	}
	return strings.TrimSpace(r.Rows[i][j])
}

// Number parses a numeric cell. Null markers written by the upstream
// exporters (empty, NA, NaN, None) and unparseable text report ok=false.
func Number(cell string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "na", "nan", "none", "null":
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int parses an integer cell. Float spellings such as "12.0" are accepted.
func Int(cell string) (int, bool) {
	f, ok := Number(cell)
	if !ok {
		return 0, false
	}
	return int(math.Round(f)), true
}
