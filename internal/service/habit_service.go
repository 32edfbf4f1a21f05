package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "meeze/backend/internal/errors"
	"meeze/backend/internal/model"
	"meeze/backend/internal/repository"
	"meeze/backend/internal/timefmt"
)

// HabitService owns habits and their per-day completion logs.
type HabitService struct {
	habits *repository.HabitRepository

	Now func() time.Time
}

// HabitStats is the aggregation returned for one habit.
type HabitStats struct {
	HabitID           string  `json:"habitId"`
	CurrentStreak     int     `json:"currentStreak"`
	CompletionPercent float64 `json:"completionPercent"`
}

// statsWindowDays is the lookback window for the completion percentage.
const statsWindowDays = 30

func NewHabitService(habits *repository.HabitRepository) *HabitService {
	return &HabitService{habits: habits, Now: time.Now}
}

func (s *HabitService) List(ctx context.Context, habitContext string) ([]model.Habit, *apperrors.APIError) {
	if !model.IsValidContext(habitContext) {
		return nil, apperrors.BadRequest("invalid_context", "context must be work or home")
	}
	set, err := s.habits.LoadHabits(ctx, habitContext)
	if err != nil {
		return nil, apperrors.Internal("failed to load habits")
	}
	return set.Habits, nil
}

func (s *HabitService) Create(ctx context.Context, habitContext, name string) (*model.Habit, *apperrors.APIError) {
	if !model.IsValidContext(habitContext) {
		return nil, apperrors.BadRequest("invalid_context", "context must be work or home")
	}
	if name == "" {
		return nil, apperrors.BadRequest("invalid_name", "habit name is required")
	}

	set, err := s.habits.LoadHabits(ctx, habitContext)
	if err != nil {
		return nil, apperrors.Internal("failed to load habits")
	}

	habit := model.Habit{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: s.Now().UTC(),
	}
	set.Habits = append(set.Habits, habit)

	if err := s.habits.SaveHabits(ctx, habitContext, set); err != nil {
		return nil, apperrors.Internal("failed to save habits")
	}
	return &habit, nil
}

// Toggle flips one habit's completion mark for a day: logged becomes
// unlogged and vice versa.
func (s *HabitService) Toggle(ctx context.Context, habitContext, habitID, date string) (bool, *apperrors.APIError) {
	if _, err := timefmt.ParseDate(date); err != nil {
		return false, apperrors.BadRequest("invalid_date", "date must be YYYY-MM-DD")
	}

	set, err := s.habits.LoadHabits(ctx, habitContext)
	if err != nil {
		return false, apperrors.Internal("failed to load habits")
	}
	known := false
	for _, h := range set.Habits {
		if h.ID == habitID {
			known = true
			break
		}
	}
	if !known {
		return false, apperrors.NotFound("habit_not_found", "habit not found")
	}

	book, err := s.habits.LoadLogs(ctx, habitContext)
	if err != nil {
		return false, apperrors.Internal("failed to load habit logs")
	}

	logged := false
	logs := book.Logs[:0]
	for _, entry := range book.Logs {
		if entry.HabitID == habitID && entry.Date == date {
			logged = true
			continue
		}
		logs = append(logs, entry)
	}
	book.Logs = logs
	if !logged {
		book.Logs = append(book.Logs, model.HabitLog{HabitID: habitID, Date: date})
	}

	if err := s.habits.SaveLogs(ctx, habitContext, book); err != nil {
		return false, apperrors.Internal("failed to save habit logs")
	}
	return !logged, nil
}

// Stats computes the current consecutive-day streak ending today and the
// completion percentage over the last 30 days.
func (s *HabitService) Stats(ctx context.Context, habitContext, habitID string) (*HabitStats, *apperrors.APIError) {
	if !model.IsValidContext(habitContext) {
		return nil, apperrors.BadRequest("invalid_context", "context must be work or home")
	}

	set, err := s.habits.LoadHabits(ctx, habitContext)
	if err != nil {
		return nil, apperrors.Internal("failed to load habits")
	}
	known := false
	for _, h := range set.Habits {
		if h.ID == habitID {
			known = true
			break
		}
	}
	if !known {
		return nil, apperrors.NotFound("habit_not_found", "habit not found")
	}

	book, err := s.habits.LoadLogs(ctx, habitContext)
	if err != nil {
		return nil, apperrors.Internal("failed to load habit logs")
	}

	logged := make(map[string]bool)
	for _, entry := range book.Logs {
		if entry.HabitID == habitID {
			logged[entry.Date] = true
		}
	}

	now := s.Now()
	stats := HabitStats{HabitID: habitID}

	for day := now; logged[day.Format(timefmt.DateLayout)]; day = day.AddDate(0, 0, -1) {
		stats.CurrentStreak++
	}

	done := 0
	for i := 0; i < statsWindowDays; i++ {
		if logged[now.AddDate(0, 0, -i).Format(timefmt.DateLayout)] {
			done++
		}
	}
	stats.CompletionPercent = float64(done) / float64(statsWindowDays) * 100

	return &stats, nil
}
