package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"meeze/backend/internal/kv"
	"meeze/backend/internal/model"
)

// HabitRepository persists the habit list and habit log per context.
type HabitRepository struct {
	store *kv.Store
}

func NewHabitRepository(store *kv.Store) *HabitRepository {
	return &HabitRepository{store: store}
}

func (r *HabitRepository) LoadHabits(ctx context.Context, habitContext string) (*model.HabitSet, error) {
	raw, err := r.store.Get(ctx, kv.HabitsKey(habitContext))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &model.HabitSet{Habits: []model.Habit{}}, nil
	}

	var set model.HabitSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("decode habits %s: %w", habitContext, err)
	}
	if set.Habits == nil {
		set.Habits = []model.Habit{}
	}
	return &set, nil
}

func (r *HabitRepository) SaveHabits(ctx context.Context, habitContext string, set *model.HabitSet) error {
	return r.store.Set(ctx, kv.HabitsKey(habitContext), set)
}

func (r *HabitRepository) LoadLogs(ctx context.Context, habitContext string) (*model.HabitLogBook, error) {
	raw, err := r.store.Get(ctx, kv.HabitLogsKey(habitContext))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &model.HabitLogBook{Logs: []model.HabitLog{}}, nil
	}

	var book model.HabitLogBook
	if err := json.Unmarshal(raw, &book); err != nil {
		return nil, fmt.Errorf("decode habit logs %s: %w", habitContext, err)
	}
	if book.Logs == nil {
		book.Logs = []model.HabitLog{}
	}
	return &book, nil
}

func (r *HabitRepository) SaveLogs(ctx context.Context, habitContext string, book *model.HabitLogBook) error {
	return r.store.Set(ctx, kv.HabitLogsKey(habitContext), book)
}
