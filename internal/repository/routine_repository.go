package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"meeze/backend/internal/kv"
	"meeze/backend/internal/model"
)

// RoutineRepository persists the routine checklists per context.
type RoutineRepository struct {
	store *kv.Store
}

func NewRoutineRepository(store *kv.Store) *RoutineRepository {
	return &RoutineRepository{store: store}
}

func (r *RoutineRepository) Load(ctx context.Context, routineContext string) (*model.RoutineSet, error) {
	raw, err := r.store.Get(ctx, kv.RoutinesKey(routineContext))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &model.RoutineSet{Routines: []model.Routine{}}, nil
	}

	var set model.RoutineSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("decode routines %s: %w", routineContext, err)
	}
	if set.Routines == nil {
		set.Routines = []model.Routine{}
	}
	for i := range set.Routines {
		if set.Routines[i].Items == nil {
			set.Routines[i].Items = []model.RoutineItem{}
		}
	}
	return &set, nil
}

func (r *RoutineRepository) Save(ctx context.Context, routineContext string, set *model.RoutineSet) error {
	return r.store.Set(ctx, kv.RoutinesKey(routineContext), set)
}
