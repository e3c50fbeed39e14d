package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_SQLite(t *testing.T) {
	q := Query{
		Table: SeasonTable,
		Where: []Cond{
			{Expr: Col("club"), Op: OpEq, Value: "Flamengo"},
			{Expr: Col("name"), Op: OpContains, Value: "50%_x"},
		},
		OrderBy: []Order{{Expr: Col("avg_fantasy"), Desc: true}, {Expr: Col("id")}},
		Limit:   10,
	}
	sql, args, err := q.Render(SQLiteDialect{})
	require.NoError(t, err)

	assert.Equal(t,
		`SELECT * FROM "season_ranking" WHERE "club" = ? AND fold_case("name") LIKE fold_case(?) ESCAPE '\' ORDER BY "avg_fantasy" DESC, "id" ASC LIMIT ?`,
		sql)
	assert.Equal(t, []any{"Flamengo", `%50\%\_x%`, 10}, args)
}

func TestRender_PostgresContains(t *testing.T) {
	sql, args, err := Query{
		Table: SeasonTable,
		Where: []Cond{{Expr: Col("name"), Op: OpContains, Value: "ávila"}},
	}.Render(PostgresDialect{})
	require.NoError(t, err)

	assert.Equal(t, `SELECT * FROM "season_ranking" WHERE "name" ILIKE $1 ESCAPE '\'`, sql)
	assert.Equal(t, []any{"%ávila%"}, args)
}

func TestRender_PostgresExtraAndIn(t *testing.T) {
	metric := Sum("FD", "FT")
	q := Query{
		Table: HistoryTable,
		Extra: []Expr{{Columns: metric.Columns, As: "total"}},
		Where: []Cond{
			{Expr: metric, Op: OpGt, Value: 0},
			{Expr: Col("id"), Op: OpIn, Values: []any{1, 2}},
		},
		OrderBy: []Order{{Expr: metric, Desc: true}},
		Limit:   5,
	}
	sql, args, err := q.Render(PostgresDialect{})
	require.NoError(t, err)

	assert.Equal(t,
		`SELECT "round_history".*, ("FD" + "FT") AS "total" FROM "round_history" WHERE ("FD" + "FT") > $1 AND "id" IN ($2, $3) ORDER BY ("FD" + "FT") DESC LIMIT $4`,
		sql)
	assert.Equal(t, []any{0, 1, 2, 5}, args)
}

func TestRender_Aggregate(t *testing.T) {
	q := Query{Table: HistoryTable, Extra: []Expr{{Columns: []string{"round"}, Agg: AggMax, As: "latest"}}, Columns: nil}
	sql, _, err := q.Render(SQLiteDialect{})
	require.NoError(t, err)
	assert.Equal(t, `SELECT MAX("round") AS "latest" FROM "round_history"`, sql)

	q = Query{Table: SeasonTable, Columns: []string{"club"}, Distinct: true, OrderBy: []Order{{Expr: Col("club")}}}
	sql, _, err = q.Render(SQLiteDialect{})
	require.NoError(t, err)
	assert.Equal(t, `SELECT DISTINCT "club" FROM "season_ranking" ORDER BY "club" ASC`, sql)
}

func TestRender_RejectsBadIdentifiers(t *testing.T) {
	_, _, err := Query{Table: "season_ranking; DROP TABLE x"}.Render(SQLiteDialect{})
	assert.Error(t, err)

	_, _, err = Query{Table: SeasonTable, Where: []Cond{{Expr: Col("1=1 OR id"), Op: OpEq, Value: 1}}}.Render(SQLiteDialect{})
	assert.Error(t, err)
}

func TestTableValidate(t *testing.T) {
	tbl := Table{
		Name:    "t",
		Columns: []Column{{Name: "id", Type: Integer}, {Name: "name", Type: Text}},
		Rows:    [][]any{{1, "a"}},
		Indexes: [][]string{{"id"}},
	}
	require.NoError(t, tbl.Validate())

	tbl.Rows = append(tbl.Rows, []any{2})
	assert.Error(t, tbl.Validate())

	tbl.Rows = nil
	tbl.Indexes = [][]string{{"missing"}}
	assert.Error(t, tbl.Validate())
}
