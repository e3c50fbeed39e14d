package pipeline

import (
	"fmt"
	"sort"
)

// Result tracks counts and per-round failures from a pipeline run.
type Result struct {
	RoundsFetched int
	MissingRounds []int
	HistoryRows   int
	SkippedRows   int
	Players       int
	TablesWritten int
	DryRun        bool
	Errors        []string
}

// AddMissing records a round that could not be fetched.
func (r *Result) AddMissing(round int, err error) {
	r.MissingRounds = append(r.MissingRounds, round)
	r.Errors = append(r.Errors, fmt.Sprintf("round %d: %v", round, err))
	sort.Ints(r.MissingRounds)
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"rounds=%d missing=%d history_rows=%d skipped_rows=%d players=%d tables=%d dry_run=%t",
		r.RoundsFetched, len(r.MissingRounds),
		r.HistoryRows, r.SkippedRows,
		r.Players, r.TablesWritten, r.DryRun,
	)
}
