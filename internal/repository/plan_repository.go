package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"meeze/backend/internal/kv"
	"meeze/backend/internal/model"
)

// PlanRepository reads and writes per-day meeze documents. Reads are
// defensive: a missing document yields an empty plan and missing fields in
// old documents decode to empty collections.
type PlanRepository struct {
	store *kv.Store
}

func NewPlanRepository(store *kv.Store) *PlanRepository {
	return &PlanRepository{store: store}
}

func (r *PlanRepository) Get(ctx context.Context, planContext, date string) (*model.DayPlan, error) {
	raw, err := r.store.Get(ctx, kv.DailyPlanKey(planContext, date))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return model.NewDayPlan(date), nil
	}

	var plan model.DayPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("decode plan %s/%s: %w", planContext, date, err)
	}
	normalizePlan(&plan, date)
	return &plan, nil
}

func (r *PlanRepository) Save(ctx context.Context, planContext string, plan *model.DayPlan) error {
	return r.store.Set(ctx, kv.DailyPlanKey(planContext, plan.Date), plan)
}

func normalizePlan(plan *model.DayPlan, date string) {
	if plan.Date == "" {
		plan.Date = date
	}
	if plan.Goals == nil {
		plan.Goals = []string{}
	}
	if plan.Tasks == nil {
		plan.Tasks = []model.Task{}
	}
	if plan.Wins == nil {
		plan.Wins = []string{}
	}
	for i := range plan.Tasks {
		if plan.Tasks[i].MiniTasks == nil {
			plan.Tasks[i].MiniTasks = []model.MiniTask{}
		}
		if plan.Tasks[i].Status == "" {
			plan.Tasks[i].Status = model.TaskStatusNotStarted
		}
	}
}
