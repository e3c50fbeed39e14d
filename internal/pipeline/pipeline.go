// Package pipeline turns the per-round Cartola scouting files into the
// scored history, the season ranking and the leaderboard tables.
//
// Every step between fetching and writing is a pure function of its input,
// so Build can be re-run on the same rounds and yields identical tables.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/albapepper/cartola-scouts/internal/source"
	"github.com/albapepper/cartola-scouts/internal/store"
)

// ErrNoRounds is returned when no round could be fetched or the fetched
// rounds hold no attributable rows. The store is left untouched.
var ErrNoRounds = errors.New("no round data available")

// Fetcher retrieves one round's raw dataset.
type Fetcher interface {
	FetchRound(ctx context.Context, round int) (*source.RawRound, error)
}

// Options configures a run.
type Options struct {
	FirstRound int
	LastRound  int
	// DryRun builds every table but skips the write.
	DryRun       bool
	Leaderboards Leaderboards
}

// DefaultOptions covers a full 38-round season.
func DefaultOptions() Options {
	return Options{
		FirstRound:   1,
		LastRound:    38,
		Leaderboards: DefaultLeaderboards(),
	}
}

// Dataset is everything Build derives from a set of rounds.
type Dataset struct {
	History     []Record
	Season      []SeasonRow
	Views       Views
	Tables      []store.Table
	SkippedRows int
}

// Build unifies, scores and aggregates rounds without any I/O.
func Build(rounds []*source.RawRound, lb Leaderboards) (*Dataset, error) {
	records, skipped, err := Unify(rounds)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRounds
	}

	history := Score(records)
	season := AggregateSeason(history)
	views := BuildViews(history, season, lb)

	return &Dataset{
		History:     history,
		Season:      season,
		Views:       views,
		Tables:      Tables(history, season, views),
		SkippedRows: skipped,
	}, nil
}

// FetchRounds fetches FirstRound..LastRound in order, one attempt each.
// A failed round is logged and recorded in result; schema violations abort.
func FetchRounds(ctx context.Context, f Fetcher, opts Options, result *Result, logger *slog.Logger) ([]*source.RawRound, error) {
	var rounds []*source.RawRound
	for n := opts.FirstRound; n <= opts.LastRound; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := f.FetchRound(ctx, n)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("Round unavailable, skipping", "round", n, "error", err)
			result.AddMissing(n, err)
			continue
		}
		if err := ValidateSchema(raw); err != nil {
			return nil, err
		}
		logger.Info("Round fetched", "round", n, "rows", len(raw.Rows))
		rounds = append(rounds, raw)
	}
	result.RoundsFetched = len(rounds)
	return rounds, nil
}

// Run fetches the configured rounds, builds every table and replaces them
// in one write.
func Run(ctx context.Context, f Fetcher, w store.Writer, opts Options, logger *slog.Logger) (*Result, error) {
	if opts.FirstRound < 1 || opts.LastRound < opts.FirstRound {
		return nil, fmt.Errorf("invalid round range %d..%d", opts.FirstRound, opts.LastRound)
	}
	result := &Result{DryRun: opts.DryRun}

	rounds, err := FetchRounds(ctx, f, opts, result, logger)
	if err != nil {
		return result, fmt.Errorf("fetch rounds: %w", err)
	}
	if len(rounds) == 0 {
		return result, ErrNoRounds
	}

	ds, err := Build(rounds, opts.Leaderboards)
	if err != nil {
		return result, fmt.Errorf("build tables: %w", err)
	}
	result.HistoryRows = len(ds.History)
	result.SkippedRows = ds.SkippedRows
	result.Players = len(ds.Season)

	if ds.SkippedRows > 0 {
		logger.Warn("Rows without player id skipped", "count", ds.SkippedRows)
	}

	if opts.DryRun {
		for _, t := range ds.Tables {
			logger.Info("Dry run table", "table", t.Name, "rows", len(t.Rows))
		}
		return result, nil
	}

	if err := w.ReplaceTables(ctx, ds.Tables); err != nil {
		return result, fmt.Errorf("replace tables: %w", err)
	}
	result.TablesWritten = len(ds.Tables)
	logger.Info("Tables written", "tables", len(ds.Tables), "players", result.Players)
	return result, nil
}
