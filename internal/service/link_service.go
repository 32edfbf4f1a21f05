package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "meeze/backend/internal/errors"
	"meeze/backend/internal/kv"
	"meeze/backend/internal/model"
	"meeze/backend/internal/repository"
	"meeze/backend/internal/timefmt"
)

// LinkService keeps day-plan tasks and weekly calendar events consistent
// through their linkedEventId / linkedTaskId back-references, and runs the
// delete-and-recreate choreography when a task moves to another day.
type LinkService struct {
	plans    *repository.PlanRepository
	calendar *repository.CalendarRepository
	store    *kv.Store

	// Now is injectable so week-offset arithmetic is testable.
	Now func() time.Time
}

func NewLinkService(plans *repository.PlanRepository, calendar *repository.CalendarRepository, store *kv.Store) *LinkService {
	return &LinkService{
		plans:    plans,
		calendar: calendar,
		store:    store,
		Now:      time.Now,
	}
}

// SyncEventsIntoTasks overwrites each linked task from its event: the event
// is authoritative on read. Event times are converted to the 12-hour
// display form. Tasks with no matching event are untouched.
func SyncEventsIntoTasks(tasks []model.Task, events []model.CalendarEvent, forDate string) []model.Task {
	for _, event := range events {
		if event.LinkedTaskID == "" || event.LinkedTaskDate != forDate {
			continue
		}
		for i := range tasks {
			if tasks[i].ID != event.LinkedTaskID {
				continue
			}
			tasks[i].Text = event.Title
			tasks[i].Status = event.Status
			tasks[i].Type = event.Type
			tasks[i].LinkedEventID = event.ID
			if start, ok := timefmt.To12Hour(event.Time); ok {
				tasks[i].StartTime = start
			}
			if end24, ok := timefmt.AddMinutes(event.Time, event.Duration()); ok {
				if end, ok := timefmt.To12Hour(end24); ok {
					tasks[i].EndTime = end
				}
			}
			break
		}
	}
	return tasks
}

// SyncTasksIntoEvents overwrites each linked event from its task: the task
// is authoritative whenever its day container is saved.
func SyncTasksIntoEvents(tasks []model.Task, events []model.CalendarEvent, forDate string) []model.CalendarEvent {
	for i := range events {
		if events[i].LinkedTaskID == "" || events[i].LinkedTaskDate != forDate {
			continue
		}
		for _, task := range tasks {
			if task.ID != events[i].LinkedTaskID {
				continue
			}
			events[i].Title = task.Text
			events[i].Status = task.Status
			events[i].Type = task.Type
			break
		}
	}
	return events
}

// MoveTaskInput describes relocating one task to a new date and time.
// Start and end are 24-hour "HH:mm" strings; both may be empty for an
// unscheduled move, in which case no replacement event is created.
type MoveTaskInput struct {
	Context    string
	TaskID     string
	FromDate   string
	ToDate     string
	NewStart24 string
	NewEnd24   string
}

// MoveTask removes the task from its source day, appends a clone with a new
// identity to the target day, deletes the stale linked event and creates a
// replacement in the target date's week. All touched containers are written
// in one batched store transaction so a failure cannot strand the task
// between days.
func (s *LinkService) MoveTask(ctx context.Context, in MoveTaskInput) (*model.Task, *apperrors.APIError) {
	if !model.IsValidContext(in.Context) {
		return nil, apperrors.BadRequest("invalid_context", "context must be work or home")
	}

	toDay, err := timefmt.DayOfWeek(in.ToDate)
	if err != nil {
		return nil, apperrors.BadRequest("invalid_date", "target date must be YYYY-MM-DD")
	}
	if _, err := timefmt.ParseDate(in.FromDate); err != nil {
		return nil, apperrors.BadRequest("invalid_date", "source date must be YYYY-MM-DD")
	}

	source, err := s.plans.Get(ctx, in.Context, in.FromDate)
	if err != nil {
		return nil, apperrors.Internal("failed to load source plan")
	}
	idx := source.FindTask(in.TaskID)
	if idx < 0 {
		return nil, apperrors.NotFound("task_not_found", "task not found in source day")
	}
	original := source.Tasks[idx]
	source.Tasks = append(source.Tasks[:idx], source.Tasks[idx+1:]...)

	clone := original
	clone.ID = uuid.NewString()
	clone.LinkedEventID = ""
	clone.MiniTasks = append([]model.MiniTask(nil), original.MiniTasks...)
	if in.NewStart24 != "" {
		if start, ok := timefmt.To12Hour(in.NewStart24); ok {
			clone.StartTime = start
		} else {
			return nil, apperrors.BadRequest("invalid_time", "start time must be HH:mm")
		}
	}
	if in.NewEnd24 != "" {
		if end, ok := timefmt.To12Hour(in.NewEnd24); ok {
			clone.EndTime = end
		} else {
			return nil, apperrors.BadRequest("invalid_time", "end time must be HH:mm")
		}
	}

	target, err := s.plans.Get(ctx, in.Context, in.ToDate)
	if err != nil {
		return nil, apperrors.Internal("failed to load target plan")
	}
	target.Tasks = append(target.Tasks, clone)

	now := s.Now()
	fromWeek, err := timefmt.WeekOffset(now, in.FromDate)
	if err != nil {
		return nil, apperrors.BadRequest("invalid_date", "source date must be YYYY-MM-DD")
	}
	toWeek, err := timefmt.WeekOffset(now, in.ToDate)
	if err != nil {
		return nil, apperrors.BadRequest("invalid_date", "target date must be YYYY-MM-DD")
	}

	fromEvents, err := s.calendar.Get(ctx, in.Context, fromWeek)
	if err != nil {
		return nil, apperrors.Internal("failed to load source week events")
	}
	toEvents := fromEvents
	if toWeek != fromWeek {
		toEvents, err = s.calendar.Get(ctx, in.Context, toWeek)
		if err != nil {
			return nil, apperrors.Internal("failed to load target week events")
		}
	}

	if original.LinkedEventID != "" {
		fromEvents.Events = removeEvent(fromEvents.Events, original.LinkedEventID)
	}

	if in.NewStart24 != "" {
		duration := model.DefaultEventDurationMinutes
		if in.NewEnd24 != "" {
			start, _ := timefmt.MinutesOfDay(in.NewStart24)
			end, _ := timefmt.MinutesOfDay(in.NewEnd24)
			if end > start {
				duration = end - start
			}
		}
		event := model.CalendarEvent{
			ID:              uuid.NewString(),
			DayOfWeek:       toDay,
			Time:            in.NewStart24,
			DurationMinutes: duration,
			Title:           clone.Text,
			Type:            clone.Type,
			Status:          clone.Status,
			Context:         in.Context,
			LinkedTaskID:    clone.ID,
			LinkedTaskDate:  in.ToDate,
		}
		clone.LinkedEventID = event.ID
		target.Tasks[len(target.Tasks)-1].LinkedEventID = event.ID
		toEvents.Events = append(toEvents.Events, event)
	}

	docs := map[string]interface{}{
		kv.DailyPlanKey(in.Context, in.FromDate):   source,
		kv.DailyPlanKey(in.Context, in.ToDate):     target,
		kv.WeeklyCalendarKey(in.Context, fromWeek): fromEvents,
	}
	if toWeek != fromWeek {
		docs[kv.WeeklyCalendarKey(in.Context, toWeek)] = toEvents
	}
	if err := s.store.SetMulti(ctx, docs); err != nil {
		return nil, apperrors.Internal("failed to persist move")
	}

	moved := target.Tasks[len(target.Tasks)-1]
	return &moved, nil
}

// RemoveLinkedEvent deletes one event by id from a week container. Removing
// an absent event is a no-op.
func (s *LinkService) RemoveLinkedEvent(ctx context.Context, eventContext string, weekOffset int, eventID string) *apperrors.APIError {
	week, err := s.calendar.Get(ctx, eventContext, weekOffset)
	if err != nil {
		return apperrors.Internal("failed to load week events")
	}
	filtered := removeEvent(week.Events, eventID)
	if len(filtered) == len(week.Events) {
		return nil
	}
	week.Events = filtered
	if err := s.calendar.Save(ctx, eventContext, weekOffset, week); err != nil {
		return apperrors.Internal("failed to save week events")
	}
	return nil
}

func removeEvent(events []model.CalendarEvent, eventID string) []model.CalendarEvent {
	filtered := events[:0]
	for _, e := range events {
		if e.ID != eventID {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
