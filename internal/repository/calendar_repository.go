package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"meeze/backend/internal/kv"
	"meeze/backend/internal/model"
)

// CalendarRepository reads and writes one week's event container per
// (context, weekOffset).
type CalendarRepository struct {
	store *kv.Store
}

func NewCalendarRepository(store *kv.Store) *CalendarRepository {
	return &CalendarRepository{store: store}
}

func (r *CalendarRepository) Get(ctx context.Context, eventContext string, weekOffset int) (*model.WeekEvents, error) {
	raw, err := r.store.Get(ctx, kv.WeeklyCalendarKey(eventContext, weekOffset))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &model.WeekEvents{Events: []model.CalendarEvent{}}, nil
	}

	var week model.WeekEvents
	if err := json.Unmarshal(raw, &week); err != nil {
		return nil, fmt.Errorf("decode calendar %s week %d: %w", eventContext, weekOffset, err)
	}
	if week.Events == nil {
		week.Events = []model.CalendarEvent{}
	}
	return &week, nil
}

func (r *CalendarRepository) Save(ctx context.Context, eventContext string, weekOffset int, week *model.WeekEvents) error {
	return r.store.Set(ctx, kv.WeeklyCalendarKey(eventContext, weekOffset), week)
}
