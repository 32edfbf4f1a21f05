package service

import (
	"context"

	"github.com/google/uuid"

	apperrors "meeze/backend/internal/errors"
	"meeze/backend/internal/model"
	"meeze/backend/internal/repository"
	"meeze/backend/internal/timefmt"
)

// CalendarService owns the weekly event grid. Placing an event treats
// [start, start+duration) as the occupied interval and rejects any overlap
// with an existing event on the same day.
type CalendarService struct {
	calendar *repository.CalendarRepository
}

func NewCalendarService(calendar *repository.CalendarRepository) *CalendarService {
	return &CalendarService{calendar: calendar}
}

func (s *CalendarService) Week(ctx context.Context, eventContext string, weekOffset int) ([]model.CalendarEvent, *apperrors.APIError) {
	if !model.IsValidContext(eventContext) {
		return nil, apperrors.BadRequest("invalid_context", "context must be work or home")
	}
	week, err := s.calendar.Get(ctx, eventContext, weekOffset)
	if err != nil {
		return nil, apperrors.Internal("failed to load week events")
	}
	return week.Events, nil
}

// PlaceEventInput describes a new event slot; Time is 24-hour "HH:mm".
type PlaceEventInput struct {
	Context         string
	WeekOffset      int
	DayOfWeek       int
	Time            string
	DurationMinutes int
	Title           string
	Description     string
	Type            string
	LinkedTaskID    string
	LinkedTaskDate  string
}

func (s *CalendarService) PlaceEvent(ctx context.Context, in PlaceEventInput) (*model.CalendarEvent, *apperrors.APIError) {
	if !model.IsValidContext(in.Context) {
		return nil, apperrors.BadRequest("invalid_context", "context must be work or home")
	}
	if in.Title == "" {
		return nil, apperrors.BadRequest("invalid_title", "event title is required")
	}
	if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
		return nil, apperrors.BadRequest("invalid_day", "dayOfWeek must be 0-6")
	}
	start, ok := timefmt.MinutesOfDay(in.Time)
	if !ok {
		return nil, apperrors.BadRequest("invalid_time", "time must be HH:mm")
	}
	if in.Type != "" && !model.IsValidTaskType(in.Type) {
		return nil, apperrors.BadRequest("invalid_type", "type must be process or immersive")
	}

	event := model.CalendarEvent{
		ID:              uuid.NewString(),
		DayOfWeek:       in.DayOfWeek,
		Time:            in.Time,
		DurationMinutes: in.DurationMinutes,
		Title:           in.Title,
		Description:     in.Description,
		Type:            in.Type,
		Status:          model.TaskStatusNotStarted,
		Context:         in.Context,
		LinkedTaskID:    in.LinkedTaskID,
		LinkedTaskDate:  in.LinkedTaskDate,
	}

	week, err := s.calendar.Get(ctx, in.Context, in.WeekOffset)
	if err != nil {
		return nil, apperrors.Internal("failed to load week events")
	}

	for _, existing := range week.Events {
		if existing.DayOfWeek != event.DayOfWeek {
			continue
		}
		exStart, ok := timefmt.MinutesOfDay(existing.Time)
		if !ok {
			continue
		}
		if start < exStart+existing.Duration() && exStart < start+event.Duration() {
			return nil, apperrors.Conflict("slot_occupied", "an event already occupies that interval", existing)
		}
	}

	week.Events = append(week.Events, event)
	if err := s.calendar.Save(ctx, in.Context, in.WeekOffset, week); err != nil {
		return nil, apperrors.Internal("failed to save week events")
	}
	return &event, nil
}

func (s *CalendarService) DeleteEvent(ctx context.Context, eventContext string, weekOffset int, eventID string) *apperrors.APIError {
	week, err := s.calendar.Get(ctx, eventContext, weekOffset)
	if err != nil {
		return apperrors.Internal("failed to load week events")
	}
	filtered := removeEvent(week.Events, eventID)
	if len(filtered) == len(week.Events) {
		return apperrors.NotFound("event_not_found", "event not found")
	}
	week.Events = filtered
	if err := s.calendar.Save(ctx, eventContext, weekOffset, week); err != nil {
		return apperrors.Internal("failed to save week events")
	}
	return nil
}
