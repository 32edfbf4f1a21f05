package kv

import "fmt"

// Fixed document keys.
const (
	TimersKey     = "timers"
	HonestyLogKey = "honesty-log"
	TaskLogsKey   = "task-logs"
)

// DailyPlanKey addresses one day's meeze document, e.g.
// "daily-meeze-work-2024-06-01".
func DailyPlanKey(context, date string) string {
	return fmt.Sprintf("daily-meeze-%s-%s", context, date)
}

// WeeklyCalendarKey addresses one week's event container, e.g.
// "weekly-calendar-home-week0". The offset is relative to the current week
// and may be negative.
func WeeklyCalendarKey(context string, weekOffset int) string {
	return fmt.Sprintf("weekly-calendar-%s-week%d", context, weekOffset)
}

// HabitsKey addresses the habit list for a context.
func HabitsKey(context string) string {
	return fmt.Sprintf("habits-%s", context)
}

// HabitLogsKey addresses the habit completion log for a context.
func HabitLogsKey(context string) string {
	return fmt.Sprintf("habit-logs-%s", context)
}

// RoutinesKey addresses the routine list for a context.
func RoutinesKey(context string) string {
	return fmt.Sprintf("routines-%s", context)
}
