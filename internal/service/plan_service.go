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

// PlanService owns the per-day meeze documents. Loading a plan pulls linked
// event edits into its tasks; saving pushes task edits back out to the
// week's events. Each direction is a full overwrite of the other side's
// shared fields, so the side being saved always wins.
type PlanService struct {
	plans    *repository.PlanRepository
	calendar *repository.CalendarRepository
	store    *kv.Store

	Now func() time.Time
}

func NewPlanService(plans *repository.PlanRepository, calendar *repository.CalendarRepository, store *kv.Store) *PlanService {
	return &PlanService{
		plans:    plans,
		calendar: calendar,
		store:    store,
		Now:      time.Now,
	}
}

func (s *PlanService) Get(ctx context.Context, planContext, date string) (*model.DayPlan, *apperrors.APIError) {
	if !model.IsValidContext(planContext) {
		return nil, apperrors.BadRequest("invalid_context", "context must be work or home")
	}
	week, err := timefmt.WeekOffset(s.Now(), date)
	if err != nil {
		return nil, apperrors.BadRequest("invalid_date", "date must be YYYY-MM-DD")
	}

	plan, err := s.plans.Get(ctx, planContext, date)
	if err != nil {
		return nil, apperrors.Internal("failed to load plan")
	}
	events, err := s.calendar.Get(ctx, planContext, week)
	if err != nil {
		return nil, apperrors.Internal("failed to load week events")
	}

	plan.Tasks = SyncEventsIntoTasks(plan.Tasks, events.Events, date)
	return plan, nil
}

// Save persists the plan and the task-side sync into the week's events as
// one batched write.
func (s *PlanService) Save(ctx context.Context, planContext string, plan *model.DayPlan) (*model.DayPlan, *apperrors.APIError) {
	if !model.IsValidContext(planContext) {
		return nil, apperrors.BadRequest("invalid_context", "context must be work or home")
	}
	week, err := timefmt.WeekOffset(s.Now(), plan.Date)
	if err != nil {
		return nil, apperrors.BadRequest("invalid_date", "date must be YYYY-MM-DD")
	}
	for _, task := range plan.Tasks {
		if task.Text == "" {
			return nil, apperrors.BadRequest("invalid_task", "task text is required")
		}
	}

	events, err := s.calendar.Get(ctx, planContext, week)
	if err != nil {
		return nil, apperrors.Internal("failed to load week events")
	}
	events.Events = SyncTasksIntoEvents(plan.Tasks, events.Events, plan.Date)

	if err := s.store.SetMulti(ctx, map[string]interface{}{
		kv.DailyPlanKey(planContext, plan.Date): plan,
		kv.WeeklyCalendarKey(planContext, week): events,
	}); err != nil {
		return nil, apperrors.Internal("failed to save plan")
	}
	return plan, nil
}

func (s *PlanService) AddTask(ctx context.Context, planContext, date, text, taskType string) (*model.Task, *apperrors.APIError) {
	if text == "" {
		return nil, apperrors.BadRequest("invalid_task", "task text is required")
	}
	if taskType == "" {
		taskType = model.TaskTypeProcess
	}
	if !model.IsValidTaskType(taskType) {
		return nil, apperrors.BadRequest("invalid_task_type", "type must be process or immersive")
	}

	plan, apiErr := s.Get(ctx, planContext, date)
	if apiErr != nil {
		return nil, apiErr
	}

	task := model.Task{
		ID:        uuid.NewString(),
		Text:      text,
		Type:      taskType,
		Status:    model.TaskStatusNotStarted,
		MiniTasks: []model.MiniTask{},
	}
	plan.Tasks = append(plan.Tasks, task)

	if err := s.plans.Save(ctx, planContext, plan); err != nil {
		return nil, apperrors.Internal("failed to save plan")
	}
	return &task, nil
}

func (s *PlanService) DeleteTask(ctx context.Context, planContext, date, taskID string) *apperrors.APIError {
	plan, err := s.plans.Get(ctx, planContext, date)
	if err != nil {
		return apperrors.Internal("failed to load plan")
	}
	idx := plan.FindTask(taskID)
	if idx < 0 {
		return apperrors.NotFound("task_not_found", "task not found")
	}
	plan.Tasks = append(plan.Tasks[:idx], plan.Tasks[idx+1:]...)

	if err := s.plans.Save(ctx, planContext, plan); err != nil {
		return apperrors.Internal("failed to save plan")
	}
	return nil
}
