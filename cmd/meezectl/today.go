package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"meeze/backend/internal/repository"
	"meeze/backend/internal/service"
	"meeze/backend/internal/timefmt"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's plan with linked calendar edits applied",
	Args:  cobra.NoArgs,
	RunE:  runToday,
}

func runToday(cmd *cobra.Command, args []string) error {
	store, closeFn, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closeFn()

	plans := repository.NewPlanRepository(store)
	calendar := repository.NewCalendarRepository(store)
	svc := service.NewPlanService(plans, calendar, store)

	date := time.Now().Format(timefmt.DateLayout)
	plan, apiErr := svc.Get(context.Background(), planContext, date)
	if apiErr != nil {
		return fmt.Errorf("load plan: %s", apiErr.Message)
	}

	fmt.Printf("%s (%s)\n", plan.Date, planContext)
	if plan.FrontBurner != "" {
		fmt.Printf("Front burner: %s\n", plan.FrontBurner)
	}
	if len(plan.Tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}
	for _, task := range plan.Tasks {
		mark := " "
		if task.Completed || task.Status == "completed" {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] %s", mark, task.Text)
		if task.StartTime != "" {
			line += fmt.Sprintf(" (%s", task.StartTime)
			if task.EndTime != "" {
				line += fmt.Sprintf(" - %s", task.EndTime)
			}
			line += ")"
		}
		fmt.Println(line)
		for _, mini := range task.MiniTasks {
			miniMark := " "
			if mini.Completed {
				miniMark = "x"
			}
			fmt.Printf("    [%s] %s\n", miniMark, mini.Text)
		}
	}
	return nil
}
