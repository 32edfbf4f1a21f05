package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeze/backend/internal/db"
	"meeze/backend/internal/kv"
	"meeze/backend/internal/model"
	"meeze/backend/internal/repository"
	"meeze/backend/internal/service"
	"meeze/backend/internal/timefmt"
)

// fixedNow is a Wednesday; the surrounding Sunday-first week runs
// 2024-06-02 through 2024-06-08.
var fixedNow = time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *kv.Store {
	t.Helper()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, db.EnsureSchema(database))
	return kv.NewStore(database)
}

func newLinkService(t *testing.T) (*service.LinkService, *repository.PlanRepository, *repository.CalendarRepository) {
	t.Helper()
	store := newTestStore(t)
	plans := repository.NewPlanRepository(store)
	calendar := repository.NewCalendarRepository(store)
	svc := service.NewLinkService(plans, calendar, store)
	svc.Now = func() time.Time { return fixedNow }
	return svc, plans, calendar
}

func TestSyncEventsIntoTasksOverwritesLinkedTask(t *testing.T) {
	tasks := []model.Task{
		{ID: "t1", Text: "old text", Status: model.TaskStatusNotStarted, Type: model.TaskTypeProcess},
		{ID: "t2", Text: "untouched"},
	}
	events := []model.CalendarEvent{
		{
			ID:              "e1",
			Title:           "Standup",
			Status:          model.TaskStatusInProgress,
			Type:            model.TaskTypeImmersive,
			Time:            "13:00",
			DurationMinutes: 60,
			LinkedTaskID:    "t1",
			LinkedTaskDate:  "2024-06-03",
		},
	}

	tasks = service.SyncEventsIntoTasks(tasks, events, "2024-06-03")

	assert.Equal(t, "Standup", tasks[0].Text)
	assert.Equal(t, model.TaskStatusInProgress, tasks[0].Status)
	assert.Equal(t, model.TaskTypeImmersive, tasks[0].Type)
	assert.Equal(t, "e1", tasks[0].LinkedEventID)
	assert.Equal(t, "1:00 PM", tasks[0].StartTime)
	assert.Equal(t, "2:00 PM", tasks[0].EndTime)
	assert.Equal(t, "untouched", tasks[1].Text)
}

func TestSyncEventsIntoTasksIgnoresOtherDates(t *testing.T) {
	tasks := []model.Task{{ID: "t1", Text: "keep me"}}
	events := []model.CalendarEvent{
		{ID: "e1", Title: "wrong day", LinkedTaskID: "t1", LinkedTaskDate: "2024-06-04", Time: "09:00"},
	}

	tasks = service.SyncEventsIntoTasks(tasks, events, "2024-06-03")
	assert.Equal(t, "keep me", tasks[0].Text)
	assert.Empty(t, tasks[0].LinkedEventID)
}

// After pushing task edits into events, pulling events back into tasks must
// not change the task again: no oscillation under single-direction edits.
func TestSyncRoundTripDoesNotOscillate(t *testing.T) {
	tasks := []model.Task{
		{
			ID:        "t1",
			Text:      "Edited on the task side",
			Status:    model.TaskStatusCompleted,
			Type:      model.TaskTypeProcess,
			StartTime: "1:00 PM",
			EndTime:   "1:30 PM",
		},
	}
	events := []model.CalendarEvent{
		{
			ID:             "e1",
			Title:          "Stale title",
			Status:         model.TaskStatusNotStarted,
			Type:           model.TaskTypeImmersive,
			Time:           "13:00",
			LinkedTaskID:   "t1",
			LinkedTaskDate: "2024-06-03",
		},
	}

	events = service.SyncTasksIntoEvents(tasks, events, "2024-06-03")
	assert.Equal(t, "Edited on the task side", events[0].Title)
	assert.Equal(t, model.TaskStatusCompleted, events[0].Status)
	assert.Equal(t, model.TaskTypeProcess, events[0].Type)

	before := tasks[0]
	tasks = service.SyncEventsIntoTasks(tasks, events, "2024-06-03")
	after := tasks[0]
	after.LinkedEventID = before.LinkedEventID
	assert.Equal(t, before, after)
}

func TestMoveTaskPreservesPayloadNotIdentity(t *testing.T) {
	svc, plans, _ := newLinkService(t)
	ctx := context.Background()

	original := model.Task{
		ID:   "orig",
		Text: "Write report",
		Type: model.TaskTypeProcess,
		MiniTasks: []model.MiniTask{
			{ID: "m1", Text: "outline", Completed: true},
			{ID: "m2", Text: "draft"},
		},
	}
	source := model.NewDayPlan("2024-06-03")
	source.Tasks = append(source.Tasks, original)
	require.NoError(t, plans.Save(ctx, model.ContextWork, source))

	moved, apiErr := svc.MoveTask(ctx, service.MoveTaskInput{
		Context:    model.ContextWork,
		TaskID:     "orig",
		FromDate:   "2024-06-03",
		ToDate:     "2024-06-04",
		NewStart24: "13:00",
	})
	require.Nil(t, apiErr)

	assert.NotEqual(t, "orig", moved.ID)
	assert.Equal(t, "Write report", moved.Text)
	assert.Equal(t, model.TaskTypeProcess, moved.Type)
	assert.Equal(t, original.MiniTasks, moved.MiniTasks)
	assert.Equal(t, "1:00 PM", moved.StartTime)

	sourceAfter, err := plans.Get(ctx, model.ContextWork, "2024-06-03")
	require.NoError(t, err)
	assert.Empty(t, sourceAfter.Tasks)

	targetAfter, err := plans.Get(ctx, model.ContextWork, "2024-06-04")
	require.NoError(t, err)
	require.Len(t, targetAfter.Tasks, 1)
	assert.Equal(t, moved.ID, targetAfter.Tasks[0].ID)
}

func TestMoveTaskRelocatesLinkedEvent(t *testing.T) {
	svc, plans, calendar := newLinkService(t)
	ctx := context.Background()

	source := model.NewDayPlan("2024-06-03")
	source.Tasks = append(source.Tasks, model.Task{
		ID:            "t1",
		Text:          "Review PRs",
		Type:          model.TaskTypeProcess,
		LinkedEventID: "e1",
	})
	require.NoError(t, plans.Save(ctx, model.ContextWork, source))

	week := &model.WeekEvents{Events: []model.CalendarEvent{
		{ID: "e1", Title: "Review PRs", DayOfWeek: 1, Time: "09:00", LinkedTaskID: "t1", LinkedTaskDate: "2024-06-03", Context: model.ContextWork},
	}}
	require.NoError(t, calendar.Save(ctx, model.ContextWork, 0, week))

	// 2024-06-10 is the Monday of the following week.
	moved, apiErr := svc.MoveTask(ctx, service.MoveTaskInput{
		Context:    model.ContextWork,
		TaskID:     "t1",
		FromDate:   "2024-06-03",
		ToDate:     "2024-06-10",
		NewStart24: "14:00",
		NewEnd24:   "15:00",
	})
	require.Nil(t, apiErr)

	weekBefore, err := calendar.Get(ctx, model.ContextWork, 0)
	require.NoError(t, err)
	assert.Empty(t, weekBefore.Events, "stale event must be deleted from the source week")

	weekAfter, err := calendar.Get(ctx, model.ContextWork, 1)
	require.NoError(t, err)
	require.Len(t, weekAfter.Events, 1)
	event := weekAfter.Events[0]
	assert.Equal(t, moved.LinkedEventID, event.ID)
	assert.Equal(t, moved.ID, event.LinkedTaskID)
	assert.Equal(t, "2024-06-10", event.LinkedTaskDate)
	assert.Equal(t, 1, event.DayOfWeek)
	assert.Equal(t, "14:00", event.Time)
	assert.Equal(t, 60, event.DurationMinutes)
}

func TestMoveTaskWithoutTimeLeavesUnscheduled(t *testing.T) {
	svc, plans, calendar := newLinkService(t)
	ctx := context.Background()

	source := model.NewDayPlan("2024-06-03")
	source.Tasks = append(source.Tasks, model.Task{ID: "t1", Text: "Loose end", LinkedEventID: "e1"})
	require.NoError(t, plans.Save(ctx, model.ContextWork, source))
	require.NoError(t, calendar.Save(ctx, model.ContextWork, 0, &model.WeekEvents{Events: []model.CalendarEvent{
		{ID: "e1", LinkedTaskID: "t1", LinkedTaskDate: "2024-06-03", Time: "09:00"},
	}}))

	moved, apiErr := svc.MoveTask(ctx, service.MoveTaskInput{
		Context:  model.ContextWork,
		TaskID:   "t1",
		FromDate: "2024-06-03",
		ToDate:   "2024-06-04",
	})
	require.Nil(t, apiErr)
	assert.Empty(t, moved.LinkedEventID)

	week, err := calendar.Get(ctx, model.ContextWork, 0)
	require.NoError(t, err)
	assert.Empty(t, week.Events)
}

func TestMoveTaskMissingTask(t *testing.T) {
	svc, _, _ := newLinkService(t)

	_, apiErr := svc.MoveTask(context.Background(), service.MoveTaskInput{
		Context:  model.ContextWork,
		TaskID:   "nope",
		FromDate: "2024-06-03",
		ToDate:   "2024-06-04",
	})
	require.NotNil(t, apiErr)
	assert.Equal(t, "task_not_found", apiErr.Code)
}

func TestRemoveLinkedEventIsNoOpWhenAbsent(t *testing.T) {
	svc, _, calendar := newLinkService(t)
	ctx := context.Background()

	require.NoError(t, calendar.Save(ctx, model.ContextHome, 0, &model.WeekEvents{Events: []model.CalendarEvent{
		{ID: "e1", Title: "Dinner", Time: "18:00"},
	}}))

	require.Nil(t, svc.RemoveLinkedEvent(ctx, model.ContextHome, 0, "missing"))
	require.Nil(t, svc.RemoveLinkedEvent(ctx, model.ContextHome, 0, "e1"))
	require.Nil(t, svc.RemoveLinkedEvent(ctx, model.ContextHome, 0, "e1"))

	week, err := calendar.Get(ctx, model.ContextHome, 0)
	require.NoError(t, err)
	assert.Empty(t, week.Events)
}

// Scenario: free-text input "1 PM" scheduled onto a new task renders as
// "1:00 PM".
func TestScheduleFromFreeTextInput(t *testing.T) {
	clock, ok := timefmt.ParseFreeText("1 PM")
	require.True(t, ok)
	assert.Equal(t, timefmt.Clock{Hours: 13, Minutes: 0}, clock)

	display, ok := timefmt.To12Hour(clock.String())
	require.True(t, ok)
	assert.Equal(t, "1:00 PM", display)
}
