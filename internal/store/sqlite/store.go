// Package sqlite provides the SQLite-backed store. It is the default
// backend: a single database file the pipeline rewrites and the API reads.
package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite"

	"github.com/albapepper/cartola-scouts/internal/store"
)

func init() {
	if err := msqlite.RegisterDeterministicScalarFunction(store.FoldCaseFunc, 1, foldCase); err != nil {
		panic(fmt.Sprintf("register %s: %v", store.FoldCaseFunc, err))
	}
}

// foldCase lowers text with Unicode case mapping so name filters match
// accented nicknames regardless of case. Other values pass through.
func foldCase(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// Store persists materialized tables in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ store.Store = (*Store)(nil)

// Open opens (creating if needed) the database file at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

// ReplaceTables drops and recreates every table inside one transaction.
func (s *Store) ReplaceTables(ctx context.Context, tables []store.Table) error {
	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, t := range tables {
		if err := replaceTable(ctx, tx, t); err != nil {
			return fmt.Errorf("replace %s: %w", t.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func replaceTable(ctx context.Context, tx *sql.Tx, t store.Table) error {
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+store.Quote(t.Name)); err != nil {
		return fmt.Errorf("drop: %w", err)
	}

	defs := make([]string, len(t.Columns))
	names := make([]string, len(t.Columns))
	marks := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		defs[i] = store.Quote(c.Name) + " " + columnType(c.Type)
		names[i] = store.Quote(c.Name)
		marks[i] = "?"
	}
	if _, err := tx.ExecContext(ctx, "CREATE TABLE "+store.Quote(t.Name)+" ("+strings.Join(defs, ", ")+")"); err != nil {
		return fmt.Errorf("create: %w", err)
	}

	if len(t.Rows) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO "+store.Quote(t.Name)+" ("+strings.Join(names, ", ")+") VALUES ("+strings.Join(marks, ", ")+")")
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer stmt.Close()
		for i, row := range t.Rows {
			if _, err := stmt.ExecContext(ctx, row...); err != nil {
				return fmt.Errorf("insert row %d: %w", i, err)
			}
		}
	}

	for i, idx := range t.Indexes {
		cols := make([]string, len(idx))
		for j, c := range idx {
			cols[j] = store.Quote(c)
		}
		name := store.Quote(fmt.Sprintf("idx_%s_%d", t.Name, i))
		if _, err := tx.ExecContext(ctx, "CREATE INDEX "+name+" ON "+store.Quote(t.Name)+" ("+strings.Join(cols, ", ")+")"); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

func columnType(t store.ColumnType) string {
	switch t {
	case store.Integer:
		return "INTEGER"
	case store.Real:
		return "REAL"
	default:
		return "TEXT"
	}
}

// Select runs a declarative query. A missing table reads as empty.
func (s *Store) Select(ctx context.Context, q store.Query) ([]store.Row, error) {
	query, args, err := q.Render(store.SQLiteDialect{})
	if err != nil {
		return nil, err
	}

	exists, err := s.tableExists(ctx, q.Table)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []store.Row{}, nil
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", q.Table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	result := []store.Row{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", q.Table, err)
		}
		row := make(store.Row, len(cols))
		for i, name := range cols {
			row[name] = store.Normalize(values[i])
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (s *Store) tableExists(ctx context.Context, name string) (bool, error) {
	var n int
	err := s.sqlDB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check table %s: %w", name, err)
	}
	return n > 0, nil
}
