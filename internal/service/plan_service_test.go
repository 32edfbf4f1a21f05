package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeze/backend/internal/kv"
	"meeze/backend/internal/model"
	"meeze/backend/internal/repository"
	"meeze/backend/internal/service"
)

func newPlanService(t *testing.T) (*service.PlanService, *kv.Store) {
	t.Helper()
	store := newTestStore(t)
	plans := repository.NewPlanRepository(store)
	calendar := repository.NewCalendarRepository(store)
	svc := service.NewPlanService(plans, calendar, store)
	svc.Now = func() time.Time { return fixedNow }
	return svc, store
}

func TestGetEmptyPlan(t *testing.T) {
	svc, _ := newPlanService(t)

	plan, apiErr := svc.Get(context.Background(), model.ContextWork, "2024-06-03")
	require.Nil(t, apiErr)
	assert.Equal(t, "2024-06-03", plan.Date)
	assert.Empty(t, plan.Tasks)
	assert.NotNil(t, plan.Goals)
	assert.NotNil(t, plan.Wins)
}

func TestSavePushesTaskEditsIntoEvents(t *testing.T) {
	svc, store := newPlanService(t)
	ctx := context.Background()

	calendar := repository.NewCalendarRepository(store)
	require.NoError(t, calendar.Save(ctx, model.ContextWork, 0, &model.WeekEvents{Events: []model.CalendarEvent{
		{ID: "e1", Title: "Old title", Status: model.TaskStatusNotStarted, Type: model.TaskTypeProcess, Time: "09:00", LinkedTaskID: "t1", LinkedTaskDate: "2024-06-03"},
	}}))

	plan := model.NewDayPlan("2024-06-03")
	plan.Tasks = append(plan.Tasks, model.Task{
		ID:     "t1",
		Text:   "New title",
		Status: model.TaskStatusInProgress,
		Type:   model.TaskTypeImmersive,
	})

	_, apiErr := svc.Save(ctx, model.ContextWork, plan)
	require.Nil(t, apiErr)

	week, err := calendar.Get(ctx, model.ContextWork, 0)
	require.NoError(t, err)
	require.Len(t, week.Events, 1)
	assert.Equal(t, "New title", week.Events[0].Title)
	assert.Equal(t, model.TaskStatusInProgress, week.Events[0].Status)
	assert.Equal(t, model.TaskTypeImmersive, week.Events[0].Type)

	// Loading the plan afterwards pulls the (now identical) event back in.
	loaded, apiErr := svc.Get(ctx, model.ContextWork, "2024-06-03")
	require.Nil(t, apiErr)
	require.Len(t, loaded.Tasks, 1)
	assert.Equal(t, "New title", loaded.Tasks[0].Text)
	assert.Equal(t, "e1", loaded.Tasks[0].LinkedEventID)
}

func TestSaveRejectsEmptyTaskText(t *testing.T) {
	svc, _ := newPlanService(t)

	plan := model.NewDayPlan("2024-06-03")
	plan.Tasks = append(plan.Tasks, model.Task{ID: "t1"})

	_, apiErr := svc.Save(context.Background(), model.ContextWork, plan)
	require.NotNil(t, apiErr)
	assert.Equal(t, "invalid_task", apiErr.Code)
}

func TestAddAndDeleteTask(t *testing.T) {
	svc, _ := newPlanService(t)
	ctx := context.Background()

	task, apiErr := svc.AddTask(ctx, model.ContextWork, "2024-06-03", "Write report", "")
	require.Nil(t, apiErr)
	assert.Equal(t, model.TaskTypeProcess, task.Type)
	assert.Equal(t, model.TaskStatusNotStarted, task.Status)

	_, apiErr = svc.AddTask(ctx, model.ContextWork, "2024-06-03", "", "")
	require.NotNil(t, apiErr)
	assert.Equal(t, "invalid_task", apiErr.Code)

	require.Nil(t, svc.DeleteTask(ctx, model.ContextWork, "2024-06-03", task.ID))

	apiErr = svc.DeleteTask(ctx, model.ContextWork, "2024-06-03", task.ID)
	require.NotNil(t, apiErr)
	assert.Equal(t, "task_not_found", apiErr.Code)
}

// Documents written by older app versions may miss whole fields; reads must
// fill defaults instead of failing.
func TestDefensiveDecodeOfLegacyDocument(t *testing.T) {
	svc, store := newPlanService(t)
	ctx := context.Background()

	legacy := json.RawMessage(`{"tasks":[{"id":"t1","text":"carried over"}]}`)
	require.NoError(t, store.Set(ctx, kv.DailyPlanKey("work", "2024-06-03"), legacy))

	plan, apiErr := svc.Get(ctx, model.ContextWork, "2024-06-03")
	require.Nil(t, apiErr)
	assert.Equal(t, "2024-06-03", plan.Date)
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, model.TaskStatusNotStarted, plan.Tasks[0].Status)
	assert.NotNil(t, plan.Tasks[0].MiniTasks)
	assert.NotNil(t, plan.Goals)
}
