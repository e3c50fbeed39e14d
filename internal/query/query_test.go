package query_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/cartola-scouts/internal/pipeline"
	"github.com/albapepper/cartola-scouts/internal/pipeline/pipelinetest"
	"github.com/albapepper/cartola-scouts/internal/query"
	"github.com/albapepper/cartola-scouts/internal/scout"
	"github.com/albapepper/cartola-scouts/internal/store"
	"github.com/albapepper/cartola-scouts/internal/store/sqlite"
)

func openStore(t *testing.T, seed bool) *sqlite.Store {
	t.Helper()
	st, err := sqlite.Open(filepath.Join(t.TempDir(), "cartola.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	if seed {
		ds, err := pipeline.Build(pipelinetest.Season(), pipeline.DefaultLeaderboards())
		require.NoError(t, err)
		require.NoError(t, st.ReplaceTables(context.Background(), ds.Tables))
	}
	return st
}

func ids(t *testing.T, rows []store.Row) []int64 {
	t.Helper()
	out := make([]int64, len(rows))
	for i, r := range rows {
		id, ok := r["id"].(int64)
		require.True(t, ok, "id is %T", r["id"])
		out[i] = id
	}
	return out
}

func TestListPlayers(t *testing.T) {
	svc := query.New(openStore(t, true))
	ctx := context.Background()

	cases := []struct {
		name   string
		filter query.PlayerFilter
		want   []int64
	}{
		{"all", query.PlayerFilter{}, []int64{20, 10, 40, 30}},
		{"club", query.PlayerFilter{Club: "Flamengo"}, []int64{20, 10}},
		{"position", query.PlayerFilter{Position: scout.Goalkeeper}, []int64{10}},
		{"name substring ignores case", query.PlayerFilter{Name: "strik"}, []int64{20}},
		{"wildcards are literal", query.PlayerFilter{Name: "%"}, []int64{}},
		{"limit", query.PlayerFilter{Limit: 2}, []int64{20, 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := svc.ListPlayers(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(t, rows))
		})
	}
}

func TestGetPlayer(t *testing.T) {
	svc := query.New(openStore(t, true))

	row, err := svc.GetPlayer(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, "Striker", row["name"])
	assert.Equal(t, 2.0, row["goals_total"])
	assert.Equal(t, int64(3), row["games"])
	assert.Equal(t, 13.8, row["avg_fantasy"])
}

func TestGetPlayer_NotFound(t *testing.T) {
	svc := query.New(openStore(t, true))

	_, err := svc.GetPlayer(context.Background(), 99999)
	require.ErrorIs(t, err, query.ErrNotFound)
}

func TestPlayerRounds(t *testing.T) {
	svc := query.New(openStore(t, true))

	rows, err := svc.PlayerRounds(context.Background(), 20, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(3), rows[0]["round"])
	assert.Equal(t, int64(2), rows[1]["round"])

	rows, err = svc.PlayerRounds(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestRoundRanking(t *testing.T) {
	svc := query.New(openStore(t, true))
	ctx := context.Background()

	rows, err := svc.RoundRanking(ctx, 1, "", 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{20, 10, 40, 30}, ids(t, rows))

	rows, err = svc.RoundRanking(ctx, 1, scout.Fullback, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{30}, ids(t, rows))

	rows, err = svc.RoundRanking(ctx, 9, "", 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}

func TestCompare(t *testing.T) {
	svc := query.New(openStore(t, true))
	ctx := context.Background()

	rows, err := svc.Compare(ctx, 20, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20}, ids(t, rows))

	rows, err = svc.Compare(ctx, 10, 99999)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, ids(t, rows))
}

func TestClubStatsAndClubs(t *testing.T) {
	svc := query.New(openStore(t, true))
	ctx := context.Background()

	rows, err := svc.ClubStats(ctx, "Palmeiras")
	require.NoError(t, err)
	assert.Equal(t, []int64{40, 30}, ids(t, rows))

	clubs, err := svc.Clubs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Flamengo", "Palmeiras"}, clubs)
}

func TestLatestRound(t *testing.T) {
	latest, err := query.New(openStore(t, true)).LatestRound(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, latest)

	_, err = query.New(openStore(t, false)).LatestRound(context.Background())
	require.ErrorIs(t, err, query.ErrNotFound)
}

func TestTopScout(t *testing.T) {
	svc := query.New(openStore(t, true))
	ctx := context.Background()

	cases := []struct {
		name      string
		cat       query.Category
		filter    query.ScoutFilter
		want      []int64
		wantTotal []float64
	}{
		{"season goals", query.Goals, query.ScoutFilter{}, []int64{20}, []float64{2}},
		{"round goals", query.Goals, query.ScoutFilter{Round: 2}, []int64{20}, []float64{1}},
		{"no rows in round", query.Goals, query.ScoutFilter{Round: 5}, []int64{}, []float64{}},
		{"assists by club", query.Assists, query.ScoutFilter{Club: "Palmeiras"}, []int64{30, 40}, []float64{1, 1}},
		{"round tackles by position", query.Tackles, query.ScoutFilter{Round: 1, Position: scout.Fullback}, []int64{30}, []float64{4}},
		{"season dangerous shots", query.DangerousShots, query.ScoutFilter{}, []int64{20}, []float64{3}},
		{"round dangerous shots", query.DangerousShots, query.ScoutFilter{Round: 1}, []int64{20}, []float64{2}},
		{"difficult saves default to goalkeepers", query.DifficultSaves, query.ScoutFilter{}, []int64{10}, []float64{3}},
		{"difficult saves other position", query.DifficultSaves, query.ScoutFilter{Position: scout.Forward}, []int64{}, []float64{}},
		{"penalty saves in round", query.PenaltySaves, query.ScoutFilter{Round: 2}, []int64{10}, []float64{1}},
		{"clean sheets", query.CleanSheets, query.ScoutFilter{}, []int64{10}, []float64{1}},
		{"fouls committed", query.FoulsCommitted, query.ScoutFilter{}, []int64{30}, []float64{2}},
		{"fouls suffered", query.FoulsSuffered, query.ScoutFilter{}, []int64{}, []float64{}},
		{"limit", query.Assists, query.ScoutFilter{Limit: 1}, []int64{20}, []float64{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := svc.TopScout(ctx, tc.cat, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(t, rows))
			totals := make([]float64, len(rows))
			for i, r := range rows {
				totals[i] = r[query.TotalColumn].(float64)
			}
			assert.Equal(t, tc.wantTotal, totals)
		})
	}
}

func TestTopScout_UnknownCategory(t *testing.T) {
	_, err := query.New(openStore(t, true)).TopScout(context.Background(), "saves", query.ScoutFilter{})
	require.Error(t, err)
}

func TestDescriptors_CoverEveryCategory(t *testing.T) {
	for _, cat := range []query.Category{
		query.Assists, query.Tackles, query.Goals, query.DangerousShots, query.FoulsSuffered,
		query.FoulsCommitted, query.DifficultSaves, query.PenaltySaves, query.CleanSheets,
	} {
		d, ok := query.Descriptors[cat]
		require.True(t, ok, cat)
		assert.NotEmpty(t, d.SeasonMetric, cat)
		assert.NotEmpty(t, d.RoundMetric, cat)
	}
	assert.Len(t, query.Descriptors, 9)
}

func TestDescriptorPlan_Postgres(t *testing.T) {
	sql, args, err := query.Descriptors[query.Goals].Plan(query.ScoutFilter{Club: "Flamengo"}).Render(store.PostgresDialect{})
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT "season_ranking".*, "goals_total" AS "total" FROM "season_ranking" WHERE "goals_total" > $1 AND "club" = $2 ORDER BY "goals_total" DESC, "id" ASC LIMIT $3`,
		sql)
	assert.Equal(t, []any{0.0, "Flamengo", 10}, args)

	sql, args, err = query.Descriptors[query.DangerousShots].Plan(query.ScoutFilter{Round: 4, Position: scout.Forward}).Render(store.PostgresDialect{})
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT "round_history".*, ("FD" + "FT") AS "total" FROM "round_history" WHERE ("FD" + "FT") > $1 AND "round" = $2 AND "position_name" = $3 ORDER BY ("FD" + "FT") DESC, "id" ASC LIMIT $4`,
		sql)
	assert.Equal(t, []any{0.0, 4, scout.Forward, 10}, args)
}
