package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/team13/tutorfind-cli/internal/history"
	"github.com/team13/tutorfind-cli/internal/render"
)

func historyCmd() *cobra.Command {
	var operation string
	var limit int
	var showStats bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent CLI operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if histStore == nil {
				return fmt.Errorf("history database unavailable")
			}
			ctx := context.Background()

			if showStats {
				stats, err := histStore.GetStats(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("Operations: %d (%d ok, %d failed)\n", stats.Total, stats.Success, stats.Errors)
				avg := time.Duration(stats.AvgDurationMs) * time.Millisecond
				fmt.Printf("Average:    %s\n", render.FormatDuration(avg))
				return nil
			}

			events, err := histStore.Recent(ctx, operation, limit)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Println("No history yet")
				return nil
			}

			for _, e := range events {
				mark := color.GreenString("✓")
				if e.Status == history.StatusError {
					mark = color.RedString("✗")
				}
				line := fmt.Sprintf("%s %s  %-18s %-24s %s", mark,
					e.StartedAt.Local().Format("2006-01-02 15:04"), e.Operation, e.Detail,
					render.FormatDuration(time.Duration(e.DurationMs)*time.Millisecond))
				fmt.Println(line)
				if e.Error != "" {
					fmt.Printf("    %s\n", e.Error)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&operation, "op", "", "Filter by operation name")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Show aggregate stats instead of entries")
	return cmd
}
