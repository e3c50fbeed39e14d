// Package postgres provides the Postgres-backed store on top of pgxpool.
// Tables are bulk loaded with COPY inside a single transaction.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/cartola-scouts/internal/db"
	"github.com/albapepper/cartola-scouts/internal/store"
)

// Store persists materialized tables in Postgres.
type Store struct {
	pool *db.Pool
}

var _ store.Store = (*Store)(nil)

// New wraps an open pool. The store owns the pool and closes it on Close.
func New(pool *db.Pool) *Store {
	return &Store{pool: pool}
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.HealthCheck(ctx)
}

// ReplaceTables drops, recreates and COPY-loads every table in one
// transaction. Readers keep seeing the previous generation until commit.
// Listeners on db.ChannelTablesReplaced are notified on commit.
func (s *Store) ReplaceTables(ctx context.Context, tables []store.Table) error {
	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, t := range tables {
		if err := replaceTable(ctx, tx, t); err != nil {
			return fmt.Errorf("replace %s: %w", t.Name, err)
		}
	}

	payload, err := json.Marshal(db.ReplacedEvent{Tables: len(tables), Timestamp: time.Now().Unix()})
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	if _, err := tx.Exec(ctx, db.StmtNotify, db.ChannelTablesReplaced, string(payload)); err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func replaceTable(ctx context.Context, tx pgx.Tx, t store.Table) error {
	if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+store.Quote(t.Name)); err != nil {
		return fmt.Errorf("drop: %w", err)
	}

	defs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		defs[i] = store.Quote(c.Name) + " " + columnType(c.Type)
	}
	if _, err := tx.Exec(ctx, "CREATE TABLE "+store.Quote(t.Name)+" ("+strings.Join(defs, ", ")+")"); err != nil {
		return fmt.Errorf("create: %w", err)
	}

	if len(t.Rows) > 0 {
		n, err := tx.CopyFrom(ctx, pgx.Identifier{t.Name}, t.ColumnNames(), pgx.CopyFromRows(t.Rows))
		if err != nil {
			return fmt.Errorf("copy: %w", err)
		}
		if int(n) != len(t.Rows) {
			return fmt.Errorf("copy: wrote %d of %d rows", n, len(t.Rows))
		}
	}

	for i, idx := range t.Indexes {
		cols := make([]string, len(idx))
		for j, c := range idx {
			cols[j] = store.Quote(c)
		}
		name := store.Quote(fmt.Sprintf("idx_%s_%d", t.Name, i))
		if _, err := tx.Exec(ctx, "CREATE INDEX "+name+" ON "+store.Quote(t.Name)+" ("+strings.Join(cols, ", ")+")"); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

func columnType(t store.ColumnType) string {
	switch t {
	case store.Integer:
		return "BIGINT"
	case store.Real:
		return "DOUBLE PRECISION"
	default:
		return "TEXT"
	}
}

// Select runs a declarative query. A missing table reads as empty.
func (s *Store) Select(ctx context.Context, q store.Query) ([]store.Row, error) {
	query, args, err := q.Render(store.PostgresDialect{})
	if err != nil {
		return nil, err
	}

	var exists bool
	if err := s.pool.QueryRow(ctx, db.StmtTableExists, q.Table).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check table %s: %w", q.Table, err)
	}
	if !exists {
		return []store.Row{}, nil
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", q.Table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	result := []store.Row{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", q.Table, err)
		}
		row := make(store.Row, len(fields))
		for i, f := range fields {
			row[f.Name] = store.Normalize(values[i])
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
