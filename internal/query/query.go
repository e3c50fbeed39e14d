// Package query answers read-only questions over the materialized tables.
//
// Every query is a store.Query built from fixed table and column names;
// request input only ever reaches the database as bind parameters.
package query

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/albapepper/cartola-scouts/internal/pipeline"
	"github.com/albapepper/cartola-scouts/internal/store"
)

// ErrNotFound is returned when a single-entity lookup matches nothing.
var ErrNotFound = errors.New("not found")

// Limits shared with the HTTP layer.
const (
	DefaultPlayersLimit      = 1000
	DefaultPlayerRoundsLimit = 5
	DefaultRankingLimit      = 10
	MaxLimit                 = 1000
)

// Service runs queries against a store.Reader.
type Service struct {
	reader store.Reader
}

// New creates a Service.
func New(r store.Reader) *Service {
	return &Service{reader: r}
}

// PlayerFilter narrows ListPlayers. Empty fields are ignored.
type PlayerFilter struct {
	Club     string
	Position string
	// Name matches a case-insensitive substring of the player's name.
	Name  string
	Limit int
}

// ListPlayers returns season ranking rows, best average first.
func (s *Service) ListPlayers(ctx context.Context, f PlayerFilter) ([]store.Row, error) {
	q := store.Query{
		Table:   store.SeasonTable,
		OrderBy: byAverage,
		Limit:   orDefault(f.Limit, DefaultPlayersLimit),
	}
	if f.Club != "" {
		q.Where = append(q.Where, eq(pipeline.ColClub, f.Club))
	}
	if f.Position != "" {
		q.Where = append(q.Where, eq(pipeline.ColPosition, f.Position))
	}
	if f.Name != "" {
		q.Where = append(q.Where, store.Cond{Expr: store.Col(pipeline.ColName), Op: store.OpContains, Value: f.Name})
	}
	return s.selectRows(ctx, "list players", q)
}

// GetPlayer returns one player's season row.
func (s *Service) GetPlayer(ctx context.Context, id int) (store.Row, error) {
	rows, err := s.selectRows(ctx, "get player", store.Query{
		Table: store.SeasonTable,
		Where: []store.Cond{eq(pipeline.ColID, id)},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("player %d: %w", id, ErrNotFound)
	}
	return rows[0], nil
}

// PlayerRounds returns a player's most recent rounds, newest first.
func (s *Service) PlayerRounds(ctx context.Context, id, limit int) ([]store.Row, error) {
	return s.selectRows(ctx, "player rounds", store.Query{
		Table:   store.HistoryTable,
		Where:   []store.Cond{eq(pipeline.ColID, id)},
		OrderBy: []store.Order{{Expr: store.Col(pipeline.ColRound), Desc: true}},
		Limit:   orDefault(limit, DefaultPlayerRoundsLimit),
	})
}

// RoundRanking returns the best fantasy scores of one round, optionally
// for a single position.
func (s *Service) RoundRanking(ctx context.Context, round int, position string, limit int) ([]store.Row, error) {
	q := store.Query{
		Table: store.HistoryTable,
		Where: []store.Cond{eq(pipeline.ColRound, round)},
		OrderBy: []store.Order{
			{Expr: store.Col(pipeline.ColFantasyScore), Desc: true},
			{Expr: store.Col(pipeline.ColID)},
		},
		Limit: orDefault(limit, DefaultRankingLimit),
	}
	if position != "" {
		q.Where = append(q.Where, eq(pipeline.ColPositionName, position))
	}
	return s.selectRows(ctx, "round ranking", q)
}

// Compare returns the season rows of two players. Missing ids are simply
// absent from the result.
func (s *Service) Compare(ctx context.Context, id1, id2 int) ([]store.Row, error) {
	return s.selectRows(ctx, "compare", store.Query{
		Table:   store.SeasonTable,
		Where:   []store.Cond{{Expr: store.Col(pipeline.ColID), Op: store.OpIn, Values: []any{id1, id2}}},
		OrderBy: []store.Order{{Expr: store.Col(pipeline.ColID)}},
	})
}

// ClubStats returns every season row of one club, best average first.
func (s *Service) ClubStats(ctx context.Context, club string) ([]store.Row, error) {
	return s.selectRows(ctx, "club stats", store.Query{
		Table:   store.SeasonTable,
		Where:   []store.Cond{eq(pipeline.ColClub, club)},
		OrderBy: byAverage,
	})
}

// LatestRound returns the highest round in the history.
func (s *Service) LatestRound(ctx context.Context) (int, error) {
	rows, err := s.selectRows(ctx, "latest round", store.Query{
		Table: store.HistoryTable,
		Extra: []store.Expr{{Columns: []string{pipeline.ColRound}, Agg: store.AggMax, As: "latest"}},
	})
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("latest round: %w", ErrNotFound)
	}
	switch v := rows[0]["latest"].(type) {
	case int64:
		return int(v), nil
	case int:
		return v, nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("latest round: %w", ErrNotFound)
	}
}

// Clubs returns the distinct club names of the season ranking, sorted.
func (s *Service) Clubs(ctx context.Context) ([]string, error) {
	rows, err := s.selectRows(ctx, "clubs", store.Query{
		Table:    store.SeasonTable,
		Columns:  []string{pipeline.ColClub},
		Distinct: true,
	})
	if err != nil {
		return nil, err
	}
	clubs := make([]string, 0, len(rows))
	for _, r := range rows {
		if c, ok := r[pipeline.ColClub].(string); ok && c != "" {
			clubs = append(clubs, c)
		}
	}
	sort.Strings(clubs)
	return clubs, nil
}

// Ping checks the underlying store.
func (s *Service) Ping(ctx context.Context) error {
	return s.reader.Ping(ctx)
}

var byAverage = []store.Order{
	{Expr: store.Col(pipeline.ColAvgFantasy), Desc: true},
	{Expr: store.Col(pipeline.ColID)},
}

func eq(col string, v any) store.Cond {
	return store.Cond{Expr: store.Col(col), Op: store.OpEq, Value: v}
}

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

func (s *Service) selectRows(ctx context.Context, op string, q store.Query) ([]store.Row, error) {
	rows, err := s.reader.Select(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if rows == nil {
		rows = []store.Row{}
	}
	return rows, nil
}
