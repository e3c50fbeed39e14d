// Package store defines the relational contract between the ingestion
// pipeline and the query API.
//
// The pipeline materializes every result set as a Table and replaces them
// all at once; the API reads them back through declarative Queries. Table
// and column names are fixed identifiers owned by this repository and are
// never taken from request input.
package store

import (
	"context"
	"fmt"
	"regexp"
)

// Table names shared by the pipeline and the query service.
const (
	HistoryTable           = "round_history"
	SeasonTable            = "season_ranking"
	TopScorersTable        = "top_scorers"
	BestDefenseTable       = "best_defense"
	ValuePicksTable        = "value_picks"
	MostPlayedTable        = "most_played"
	LowestRatedTable       = "lowest_rated"
	MostUndisciplinedTable = "most_undisciplined"
	TopFinishersTable      = "top_finishers"
	BestGoalkeepersTable   = "best_goalkeepers"
	TopAssistsTable        = "top_assists"
	LatestFormTable        = "latest_form"
)

// ColumnType is the storage class of a column.
type ColumnType int

const (
	Integer ColumnType = iota
	Real
	Text
)

func (t ColumnType) String() string {
	switch t {
	case Integer:
		return "integer"
	case Real:
		return "real"
	case Text:
		return "text"
	default:
		return fmt.Sprintf("ColumnType(%d)", int(t))
	}
}

// Column describes one table column.
type Column struct {
	Name string
	Type ColumnType
}

// Table is a fully materialized result set. Row values are int, float64,
// string or nil, positionally matching Columns.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]any
	// Indexes lists column sets to index after the rows are loaded.
	Indexes [][]string
}

// ColumnNames returns the names of t's columns in order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Validate checks identifiers and row widths.
func (t Table) Validate() error {
	if err := CheckIdent(t.Name); err != nil {
		return err
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("table %s: no columns", t.Name)
	}
	seen := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		if err := CheckIdent(c.Name); err != nil {
			return fmt.Errorf("table %s: %w", t.Name, err)
		}
		if seen[c.Name] {
			return fmt.Errorf("table %s: duplicate column %s", t.Name, c.Name)
		}
		seen[c.Name] = true
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("table %s: row %d has %d values, want %d", t.Name, i, len(row), len(t.Columns))
		}
	}
	for _, idx := range t.Indexes {
		for _, col := range idx {
			if !seen[col] {
				return fmt.Errorf("table %s: index on unknown column %s", t.Name, col)
			}
		}
	}
	return nil
}

// Row is one result row keyed by column name.
type Row map[string]any

// Writer replaces materialized tables.
type Writer interface {
	// ReplaceTables drops and recreates every table in one transaction.
	// On error no table is changed.
	ReplaceTables(ctx context.Context, tables []Table) error
}

// Reader runs read-only queries.
type Reader interface {
	Select(ctx context.Context, q Query) ([]Row, error)
	Ping(ctx context.Context) error
}

// Store is a Writer and Reader over one database.
type Store interface {
	Writer
	Reader
	Close() error
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// CheckIdent rejects anything that is not a plain SQL identifier.
func CheckIdent(name string) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("invalid identifier %q", name)
	}
	return nil
}

// Quote returns name as a double-quoted identifier. Both SQLite and
// Postgres preserve case inside double quotes, which the scout columns
// (G, A, DS, ...) rely on.
func Quote(name string) string {
	return `"` + name + `"`
}
