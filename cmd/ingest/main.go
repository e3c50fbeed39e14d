// Command ingest is the Cartola scouting ingestion CLI.
//
// Usage:
//
//	cartola-ingest run
//	cartola-ingest run --first 1 --last 12 --dry-run
//	cartola-ingest round --round 7 --top 15
//	cartola-ingest schedule --every 6h
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/cartola-scouts/internal/config"
	"github.com/albapepper/cartola-scouts/internal/maintenance"
	"github.com/albapepper/cartola-scouts/internal/pipeline"
	"github.com/albapepper/cartola-scouts/internal/source"
	"github.com/albapepper/cartola-scouts/internal/store"
	"github.com/albapepper/cartola-scouts/internal/store/backend"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "cartola-ingest",
		Short: "Cartola scouting ingestion CLI",
	}

	root.AddCommand(runCmd())
	root.AddCommand(roundCmd())
	root.AddCommand(scheduleCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// run command
// --------------------------------------------------------------------------

func runCmd() *cobra.Command {
	var first, last, season int
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch every round, rebuild the ranking tables and replace them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfig(func(ctx context.Context, cfg *config.Config) error {
				opts := roundRange(cfg)
				if cmd.Flags().Changed("first") {
					opts.FirstRound = first
				}
				if cmd.Flags().Changed("last") {
					opts.LastRound = last
				}
				if cmd.Flags().Changed("season") {
					cfg.Season = season
				}
				opts.DryRun = dryRun

				var st store.Store
				if !dryRun {
					var err error
					st, err = backend.Open(ctx, cfg, logger)
					if err != nil {
						return fmt.Errorf("open store: %w", err)
					}
					defer st.Close()
				}
				return runPipeline(ctx, cfg, newClient(cfg), st, opts)
			})
		},
	}
	cmd.Flags().IntVar(&first, "first", 1, "First round to fetch")
	cmd.Flags().IntVar(&last, "last", 38, "Last round to fetch")
	cmd.Flags().IntVar(&season, "season", 2025, "Season year (informational)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Build tables without writing them")
	return cmd
}

// --------------------------------------------------------------------------
// schedule command
// --------------------------------------------------------------------------

func scheduleCmd() *cobra.Command {
	var every time.Duration
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the pipeline now and then on a fixed interval until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfig(func(ctx context.Context, cfg *config.Config) error {
				if cmd.Flags().Changed("every") {
					cfg.RefreshInterval = every
				}
				if cfg.RefreshInterval <= 0 {
					return fmt.Errorf("refresh interval must be positive")
				}

				st, err := backend.Open(ctx, cfg, logger)
				if err != nil {
					return fmt.Errorf("open store: %w", err)
				}
				defer st.Close()

				client := newClient(cfg)
				opts := roundRange(cfg)
				maintenance.Start(ctx, []maintenance.Task{{
					Name:     "refresh",
					Interval: cfg.RefreshInterval,
					Run: func(ctx context.Context) error {
						return runPipeline(ctx, cfg, client, st, opts)
					},
				}}, true, logger)
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&every, "every", 6*time.Hour, "Interval between pipeline runs")
	return cmd
}

// --------------------------------------------------------------------------
// round command
// --------------------------------------------------------------------------

func roundCmd() *cobra.Command {
	var round, top int
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Fetch and score a single round and print its best players",
		RunE: func(cmd *cobra.Command, args []string) error {
			if round < 1 {
				return fmt.Errorf("--round is required")
			}
			return withConfig(func(ctx context.Context, cfg *config.Config) error {
				raw, err := newClient(cfg).FetchRound(ctx, round)
				if err != nil {
					return err
				}
				records, skipped, err := pipeline.Unify([]*source.RawRound{raw})
				if err != nil {
					return err
				}
				scored := pipeline.Score(records)
				sort.SliceStable(scored, func(i, j int) bool {
					if scored[i].Scores.Total != scored[j].Scores.Total {
						return scored[i].Scores.Total > scored[j].Scores.Total
					}
					return scored[i].ID < scored[j].ID
				})
				logger.Info("Round scored", "round", round, "rows", len(scored), "skipped", skipped)

				top = max(0, min(top, len(scored)))
				for i, r := range scored[:top] {
					fmt.Printf("%2d. %-24s %-14s %-22s %7.2f (off %.2f def %.2f disc %.2f)\n",
						i+1, r.Name, r.PositionName, r.ClubName,
						r.Scores.Total, r.Scores.Offense, r.Scores.Defense, r.Scores.Discipline)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&round, "round", 0, "Round number")
	cmd.Flags().IntVar(&top, "top", 10, "Number of players to print")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runPipeline runs one ingestion pass and logs its outcome.
func runPipeline(ctx context.Context, cfg *config.Config, client *source.Client, w store.Writer, opts pipeline.Options) error {
	logger.Info("Pipeline starting",
		"season", cfg.Season,
		"first_round", opts.FirstRound,
		"last_round", opts.LastRound,
		"source", cfg.SourceBaseURL,
		"dry_run", opts.DryRun)
	start := time.Now()
	result, err := pipeline.Run(ctx, client, w, opts, logger)
	if result != nil {
		for _, e := range result.Errors {
			logger.Warn("round error", "error", e)
		}
	}
	if err != nil {
		if errors.Is(err, pipeline.ErrNoRounds) {
			logger.Error("No round data available; existing tables left unchanged")
		}
		return err
	}
	logger.Info("Pipeline finished",
		"duration", time.Since(start).Round(time.Second),
		"summary", result.Summary())
	return nil
}

func roundRange(cfg *config.Config) pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.FirstRound = cfg.SourceFirstRound
	opts.LastRound = cfg.SourceLastRound
	return opts
}

func newClient(cfg *config.Config) *source.Client {
	return source.NewClient(cfg.SourceBaseURL, cfg.SourceRequestsPerMinute, cfg.SourceTimeout, logger)
}

// withConfig handles config loading and context cancellation.
func withConfig(fn func(ctx context.Context, cfg *config.Config) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return fn(ctx, cfg)
}
