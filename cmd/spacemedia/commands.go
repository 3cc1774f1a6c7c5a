package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toolforge/tool-spacemedia-sub000/internal/engine"
	"github.com/toolforge/tool-spacemedia-sub000/internal/scheduler"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run all configured sources on the harvest interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			harvesters := make(map[string]scheduler.Harvester, len(a.cfg.Sources))
			var cleanups []func()
			defer func() {
				for _, c := range cleanups {
					c()
				}
			}()
			for _, src := range a.cfg.Sources {
				eng, cleanup, err := a.newEngine(src.Key, true)
				if err != nil {
					return fmt.Errorf("wire source %s: %w", src.Key, err)
				}
				cleanups = append(cleanups, cleanup)
				harvesters[src.Key] = eng
			}

			sched := scheduler.NewScheduler(
				harvesters,
				a.cfg.Harvest.Interval,
				a.cfg.Harvest.RunTimeout,
				a.logger,
			)
			err = sched.Start(cmd.Context())
			if err == cmd.Context().Err() {
				return nil
			}
			return err
		},
	}
}

func newRunCmd() *cobra.Command {
	var subSources []string
	var manual bool
	cmd := &cobra.Command{
		Use:   "run <source>",
		Short: "Run one harvest for a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			eng, cleanup, err := a.newEngine(args[0], true)
			if err != nil {
				return err
			}
			defer cleanup()

			summary, err := eng.Run(cmd.Context(), engine.RunOptions{
				SubSources: subSources,
				Manual:     manual,
			})
			if err != nil {
				return err
			}
			fmt.Printf("run %s: processed=%d new=%d published=%d skipped=%d problems=%d in %s\n",
				summary.RunID, summary.Processed, summary.New, summary.Published,
				summary.Skipped, summary.Problems, summary.Duration.Round(1e6))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&subSources, "sub", nil, "Restrict the run to these sub-sources")
	cmd.Flags().BoolVar(&manual, "manual", false, "Treat the run as operator-triggered")
	return cmd
}

func newRefreshCmd() *cobra.Command {
	var byID, byHash string
	cmd := &cobra.Command{
		Use:   "refresh <source>",
		Short: "Re-fetch one item by id or by content hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (byID == "") == (byHash == "") {
				return fmt.Errorf("exactly one of --id and --hash is required")
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			eng, cleanup, err := a.newEngine(args[0], false)
			if err != nil {
				return err
			}
			defer cleanup()

			if byID != "" {
				media, err := eng.RefreshByID(cmd.Context(), byID)
				if err != nil {
					return err
				}
				if media == nil {
					fmt.Println("item no longer exists at the source")
					return nil
				}
				fmt.Printf("refreshed %s/%s (%d files)\n", media.SourceID, media.ExternalID, len(media.Files))
				return nil
			}

			refreshed, err := eng.RefreshByHash(cmd.Context(), byHash)
			if err != nil {
				return err
			}
			fmt.Printf("refreshed %d media for hash %s\n", len(refreshed), byHash)
			return nil
		},
	}
	cmd.Flags().StringVar(&byID, "id", "", "Source-local identifier to refresh")
	cmd.Flags().StringVar(&byHash, "hash", "", "Exact content hash to refresh")
	return cmd
}

func newResetCmd() *cobra.Command {
	var resetProblems, resetWatermark bool
	cmd := &cobra.Command{
		Use:   "reset <source>",
		Short: "Reset the problem ledger and/or the watermark for a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !resetProblems && !resetWatermark {
				return fmt.Errorf("nothing to reset: pass --problems and/or --watermark")
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			sourceKey := args[0]
			if _, err := a.cfg.Source(sourceKey); err != nil {
				return err
			}

			ctx := cmd.Context()
			if resetProblems {
				if err := a.problems.Reset(ctx, sourceKey); err != nil {
					return fmt.Errorf("reset problems: %w", err)
				}
				fmt.Println("problem ledger cleared")
			}
			if resetWatermark {
				cursor, err := a.cursors.Get(ctx, sourceKey)
				if err != nil {
					return fmt.Errorf("load cursor: %w", err)
				}
				cursor.Watermark = nil
				if err := a.cursors.Update(ctx, cursor); err != nil {
					return fmt.Errorf("update cursor: %w", err)
				}
				fmt.Println("watermark cleared, next run is a complete sweep")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&resetProblems, "problems", false, "Clear the problem ledger")
	cmd.Flags().BoolVar(&resetWatermark, "watermark", false, "Clear the incremental-fetch watermark")
	return cmd
}

func newStatsCmd() *cobra.Command {
	var listProblems bool
	cmd := &cobra.Command{
		Use:   "stats <source>",
		Short: "Show run statistics for a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			sourceKey := args[0]
			if _, err := a.cfg.Source(sourceKey); err != nil {
				return err
			}

			ctx := cmd.Context()
			cursor, err := a.cursors.Get(ctx, sourceKey)
			if err != nil {
				return fmt.Errorf("load cursor: %w", err)
			}
			count, err := a.problems.CountBySource(ctx, sourceKey)
			if err != nil {
				return fmt.Errorf("count problems: %w", err)
			}

			if cursor.LastRunEnd.IsZero() {
				fmt.Println("never ran")
			} else {
				fmt.Printf("last run: %s -> %s (%s)\n",
					cursor.LastRunStart.Format("2006-01-02 15:04:05"),
					cursor.LastRunEnd.Format("2006-01-02 15:04:05"),
					cursor.LastRunDuration.Round(1e6))
			}
			if cursor.Watermark != nil {
				fmt.Printf("watermark: %s\n", cursor.Watermark.Format("2006-01-02 15:04:05"))
			} else {
				fmt.Println("watermark: none (next run is a complete sweep)")
			}
			fmt.Printf("open problems: %d\n", count)

			if listProblems && count > 0 {
				problems, err := a.problems.ListBySource(ctx, sourceKey)
				if err != nil {
					return fmt.Errorf("list problems: %w", err)
				}
				for _, p := range problems {
					fmt.Printf("  %s  %s  %s\n", p.OccurredAt.Format("2006-01-02 15:04"), p.URL, p.Message)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&listProblems, "problems", false, "List open problem ledger entries")
	return cmd
}
