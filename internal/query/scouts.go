package query

import (
	"context"
	"fmt"

	"github.com/albapepper/cartola-scouts/internal/pipeline"
	"github.com/albapepper/cartola-scouts/internal/scout"
	"github.com/albapepper/cartola-scouts/internal/store"
)

// Category names a top-scout leaderboard.
type Category string

const (
	Assists        Category = "assists"
	Tackles        Category = "tackles"
	Goals          Category = "goals"
	DangerousShots Category = "dangerous-shots"
	FoulsSuffered  Category = "fouls-suffered"
	FoulsCommitted Category = "fouls-committed"
	DifficultSaves Category = "difficult-saves"
	PenaltySaves   Category = "penalty-saves"
	CleanSheets    Category = "clean-sheets"
)

// TotalColumn carries the metric in every top-scout row.
const TotalColumn = "total"

// FilterColumns names the club and position columns of one table.
type FilterColumns struct {
	Club     string
	Position string
}

var (
	seasonFilters  = FilterColumns{Club: pipeline.ColClub, Position: pipeline.ColPosition}
	historyFilters = FilterColumns{Club: pipeline.ColClubName, Position: pipeline.ColPositionName}
)

// Descriptor selects the table and metric behind a Category. Season* is
// used for whole-season queries and Round* when a round is given.
type Descriptor struct {
	Category        Category
	SeasonTable     string
	SeasonMetric    []string
	SeasonCols      FilterColumns
	RoundMetric     []string
	RoundCols       FilterColumns
	DefaultPosition string
}

func season(cat Category, metric string, round ...scout.Code) Descriptor {
	rm := make([]string, len(round))
	for i, c := range round {
		rm[i] = string(c)
	}
	return Descriptor{
		Category:     cat,
		SeasonTable:  store.SeasonTable,
		SeasonMetric: []string{metric},
		SeasonCols:   seasonFilters,
		RoundMetric:  rm,
		RoundCols:    historyFilters,
	}
}

// Descriptors is the lookup table for TopScout.
var Descriptors = func() map[Category]Descriptor {
	ds := []Descriptor{
		season(Assists, pipeline.ColAssistsTotal, scout.Assist),
		season(Tackles, pipeline.ColTacklesTotal, scout.Tackle),
		season(Goals, pipeline.ColGoalsTotal, scout.Goal),
		{
			Category:     DangerousShots,
			SeasonTable:  store.TopFinishersTable,
			SeasonMetric: []string{pipeline.ColDangerousShots},
			SeasonCols:   seasonFilters,
			RoundMetric:  []string{string(scout.ShotSaved), string(scout.ShotOnPost)},
			RoundCols:    historyFilters,
		},
		season(FoulsSuffered, string(scout.FoulSuffered), scout.FoulSuffered),
		season(FoulsCommitted, string(scout.FoulCommitted), scout.FoulCommitted),
		season(DifficultSaves, string(scout.DifficultSave), scout.DifficultSave),
		season(PenaltySaves, string(scout.PenaltySaved), scout.PenaltySaved),
		season(CleanSheets, string(scout.CleanSheet), scout.CleanSheet),
	}
	m := make(map[Category]Descriptor, len(ds))
	for _, d := range ds {
		m[d.Category] = d
	}
	gk := m[DifficultSaves]
	gk.DefaultPosition = scout.Goalkeeper
	m[DifficultSaves] = gk
	return m
}()

// ScoutFilter narrows a top-scout query. Round 0 means the whole season.
type ScoutFilter struct {
	Round    int
	Club     string
	Position string
	Limit    int
}

// DefaultScoutLimit is used when ScoutFilter.Limit is zero.
const DefaultScoutLimit = 10

// Plan builds the query for f without running it.
func (d Descriptor) Plan(f ScoutFilter) store.Query {
	table, metric, cols := d.SeasonTable, d.SeasonMetric, d.SeasonCols
	if f.Round > 0 {
		table, metric, cols = store.HistoryTable, d.RoundMetric, d.RoundCols
	}
	position := f.Position
	if position == "" {
		position = d.DefaultPosition
	}
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultScoutLimit
	}

	expr := store.Sum(metric...)
	q := store.Query{
		Table: table,
		Extra: []store.Expr{{Columns: metric, As: TotalColumn}},
		// 0.0 keeps the comparison typed as a float against REAL and
		// DOUBLE PRECISION columns.
		Where:   []store.Cond{{Expr: expr, Op: store.OpGt, Value: 0.0}},
		OrderBy: []store.Order{{Expr: expr, Desc: true}, {Expr: store.Col(pipeline.ColID)}},
		Limit:   limit,
	}
	if f.Round > 0 {
		q.Where = append(q.Where, store.Cond{Expr: store.Col(pipeline.ColRound), Op: store.OpEq, Value: f.Round})
	}
	if f.Club != "" {
		q.Where = append(q.Where, store.Cond{Expr: store.Col(cols.Club), Op: store.OpEq, Value: f.Club})
	}
	if position != "" {
		q.Where = append(q.Where, store.Cond{Expr: store.Col(cols.Position), Op: store.OpEq, Value: position})
	}
	return q
}

// TopScout returns the leaders of one scout category. Each row carries the
// metric in an extra "total" column.
func (s *Service) TopScout(ctx context.Context, cat Category, f ScoutFilter) ([]store.Row, error) {
	d, ok := Descriptors[cat]
	if !ok {
		return nil, fmt.Errorf("unknown scout category %q", cat)
	}
	return s.selectRows(ctx, "top "+string(cat), d.Plan(f))
}
