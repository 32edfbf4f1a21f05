package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"meeze/backend/internal/kv"
	"meeze/backend/internal/model"
)

// TimerRepository persists the whole timer collection as one document,
// rewritten on every state change.
type TimerRepository struct {
	store *kv.Store
}

func NewTimerRepository(store *kv.Store) *TimerRepository {
	return &TimerRepository{store: store}
}

func (r *TimerRepository) Load(ctx context.Context) (*model.TimerSet, error) {
	raw, err := r.store.Get(ctx, kv.TimersKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &model.TimerSet{Timers: []model.Timer{}}, nil
	}

	var set model.TimerSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("decode timers: %w", err)
	}
	if set.Timers == nil {
		set.Timers = []model.Timer{}
	}
	return &set, nil
}

func (r *TimerRepository) Save(ctx context.Context, set *model.TimerSet) error {
	return r.store.Set(ctx, kv.TimersKey, set)
}
