package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"meeze/backend/internal/repository"
)

var timersCmd = &cobra.Command{
	Use:   "timers",
	Short: "Show countdown timers and their remaining time",
	Args:  cobra.NoArgs,
	RunE:  runTimers,
}

func runTimers(cmd *cobra.Command, args []string) error {
	store, closeFn, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closeFn()

	set, err := repository.NewTimerRepository(store).Load(context.Background())
	if err != nil {
		return fmt.Errorf("load timers: %w", err)
	}
	if len(set.Timers) == 0 {
		fmt.Println("No timers.")
		return nil
	}

	now := time.Now()
	for _, t := range set.Timers {
		remaining := t.RemainingSeconds
		state := "paused"
		switch {
		case t.IsRunning && t.StartedAt != nil:
			// Read-only view of the reconciled remaining time; the
			// persisted state is untouched.
			elapsed := int(now.Sub(*t.StartedAt).Seconds())
			if elapsed > 0 {
				remaining -= elapsed
			}
			if remaining < 0 {
				remaining = 0
			}
			state = "running"
		case t.RemainingSeconds == 0:
			state = "done"
		case t.RemainingSeconds == t.DurationSeconds:
			state = "idle"
		}
		fmt.Printf("%-20s %s  %s\n", t.Name, formatSeconds(remaining), state)
	}
	return nil
}

func formatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
