package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"meeze/backend/internal/repository"
	"meeze/backend/internal/service"
)

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "Show habit streaks and 30-day completion",
	Args:  cobra.NoArgs,
	RunE:  runHabits,
}

func runHabits(cmd *cobra.Command, args []string) error {
	store, closeFn, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closeFn()

	svc := service.NewHabitService(repository.NewHabitRepository(store))
	ctx := context.Background()

	habits, apiErr := svc.List(ctx, planContext)
	if apiErr != nil {
		return fmt.Errorf("load habits: %s", apiErr.Message)
	}
	if len(habits) == 0 {
		fmt.Println("No habits.")
		return nil
	}

	for _, habit := range habits {
		stats, apiErr := svc.Stats(ctx, planContext, habit.ID)
		if apiErr != nil {
			return fmt.Errorf("load stats for %s: %s", habit.Name, apiErr.Message)
		}
		fmt.Printf("%-24s streak %3d   last 30 days %5.1f%%\n", habit.Name, stats.CurrentStreak, stats.CompletionPercent)
	}
	return nil
}
