package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/cartola-scouts/internal/store"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cartola.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func playersTable(rows ...[]any) store.Table {
	return store.Table{
		Name: store.SeasonTable,
		Columns: []store.Column{
			{Name: "id", Type: store.Integer},
			{Name: "name", Type: store.Text},
			{Name: "avg_fantasy", Type: store.Real},
			{Name: "G", Type: store.Real},
		},
		Rows:    rows,
		Indexes: [][]string{{"id"}},
	}
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestReplaceAndSelect(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceTables(ctx, []store.Table{
		playersTable([]any{1, "Pedro", 7.5, 3.0}, []any{2, "Hulk", 9.25, 1.0}),
	}))

	rows, err := s.Select(ctx, store.Query{
		Table:   store.SeasonTable,
		OrderBy: []store.Order{{Expr: store.Col("avg_fantasy"), Desc: true}},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Hulk", rows[0]["name"])
	assert.Equal(t, int64(2), rows[0]["id"])
	assert.Equal(t, 9.25, rows[0]["avg_fantasy"])
	assert.Equal(t, 3.0, rows[1]["G"], "scout columns keep their case")

	// A second run fully replaces the previous contents.
	require.NoError(t, s.ReplaceTables(ctx, []store.Table{playersTable([]any{3, "Gabigol", 4.0, 0.0})}))
	rows, err = s.Select(ctx, store.Query{Table: store.SeasonTable})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Gabigol", rows[0]["name"])
}

func TestReplaceIsAllOrNothing(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	require.NoError(t, s.ReplaceTables(ctx, []store.Table{playersTable([]any{1, "Pedro", 7.5, 3.0})}))

	// SQLite refuses to drop its catalog table, so the second table fails
	// after the first one was already rewritten inside the transaction.
	bad := store.Table{
		Name:    "sqlite_master",
		Columns: []store.Column{{Name: "id", Type: store.Integer}},
	}
	err := s.ReplaceTables(ctx, []store.Table{
		playersTable([]any{9, "Other", 1.0, 0.0}),
		bad,
	})
	require.Error(t, err)

	rows, err := s.Select(ctx, store.Query{Table: store.SeasonTable})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Pedro", rows[0]["name"])
}

func TestSelectMissingTableIsEmpty(t *testing.T) {
	s := openTemp(t)
	rows, err := s.Select(context.Background(), store.Query{Table: store.HistoryTable})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestSelectAggregate(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	require.NoError(t, s.ReplaceTables(ctx, []store.Table{playersTable([]any{1, "Pedro", 7.5, 3.0}, []any{5, "Hulk", 2.0, 1.0})}))

	rows, err := s.Select(ctx, store.Query{
		Table: store.SeasonTable,
		Extra: []store.Expr{{Columns: []string{"id"}, Agg: store.AggMax, As: "latest"}},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(5), rows[0]["latest"])
}

func TestSelectContainsFoldsAccentedCase(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	require.NoError(t, s.ReplaceTables(ctx, []store.Table{
		playersTable([]any{1, "Ávila", 5.0, 0.0}, []any{2, "ÉDER", 4.0, 0.0}, []any{3, "Pedro", 3.0, 0.0}),
	}))

	for _, tc := range []struct {
		term string
		want []int64
	}{
		{"ávila", []int64{1}},
		{"ÁVI", []int64{1}},
		{"éder", []int64{2}},
		{"PED", []int64{3}},
		{"a", []int64{1}},
	} {
		rows, err := s.Select(ctx, store.Query{
			Table:   store.SeasonTable,
			Where:   []store.Cond{{Expr: store.Col("name"), Op: store.OpContains, Value: tc.term}},
			OrderBy: []store.Order{{Expr: store.Col("id")}},
		})
		require.NoError(t, err, tc.term)
		got := make([]int64, len(rows))
		for i, r := range rows {
			got[i] = r["id"].(int64)
		}
		assert.Equal(t, tc.want, got, tc.term)
	}
}
