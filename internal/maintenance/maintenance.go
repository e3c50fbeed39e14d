// Package maintenance runs periodic background tasks as Go tickers.
// The ingest CLI uses it to keep the ranking tables fresh while the season
// is in progress instead of relying on an external cron.
package maintenance

import (
	"context"
	"log/slog"
	"time"
)

// Task is a named unit of periodic work. A zero Interval disables it.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Start launches one ticker per enabled task. With runNow set, every task
// also runs once before its first tick. Blocks until ctx is cancelled.
// Intended to be called with `go` or as the body of a long-running command.
func Start(ctx context.Context, tasks []Task, runNow bool, logger *slog.Logger) {
	tickers := make([]*time.Ticker, 0, len(tasks))
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	for _, task := range tasks {
		if task.Interval <= 0 {
			logger.Info("Maintenance task disabled", "task", task.Name)
			continue
		}
		t := time.NewTicker(task.Interval)
		tickers = append(tickers, t)
		logger.Info("Maintenance task scheduled", "task", task.Name, "every", task.Interval)
		go runLoop(ctx, t.C, task, runNow, logger)
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, task Task, runNow bool, logger *slog.Logger) {
	if runNow {
		runOnce(ctx, task, logger)
	}
	for {
		select {
		case <-ch:
			runOnce(ctx, task, logger)
		case <-ctx.Done():
			return
		}
	}
}

// runOnce executes a task and logs the outcome. Failures never stop the loop.
func runOnce(ctx context.Context, task Task, logger *slog.Logger) {
	if ctx.Err() != nil {
		return
	}
	start := time.Now()
	err := task.Run(ctx)
	dur := time.Since(start).Round(time.Millisecond)
	if err != nil {
		logger.Warn("Maintenance task failed", "task", task.Name, "duration", dur, "error", err)
		return
	}
	logger.Info("Maintenance task finished", "task", task.Name, "duration", dur)
}
