package kv_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeze/backend/internal/db"
	"meeze/backend/internal/kv"
)

func newTestStore(t *testing.T) *kv.Store {
	t.Helper()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, db.EnsureSchema(database))
	return kv.NewStore(database)
}

func TestGetMissingKeyReturnsNil(t *testing.T) {
	store := newTestStore(t)
	raw, err := store.Get(context.Background(), "daily-meeze-work-2024-06-01")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestSetThenGetRoundTrips(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := map[string]interface{}{"date": "2024-06-01", "tasks": []string{}}
	require.NoError(t, store.Set(ctx, kv.DailyPlanKey("work", "2024-06-01"), doc))

	raw, err := store.Get(ctx, kv.DailyPlanKey("work", "2024-06-01"))
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "2024-06-01", got["date"])
}

func TestLastWriteWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "timers", map[string]int{"n": 1}))
	require.NoError(t, store.Set(ctx, "timers", map[string]int{"n": 2}))

	raw, err := store.Get(ctx, "timers")
	require.NoError(t, err)
	var got map[string]int
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 2, got["n"])
}

func TestSetMultiWritesAllKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.SetMulti(ctx, map[string]interface{}{
		kv.DailyPlanKey("work", "2024-06-01"): map[string]string{"date": "2024-06-01"},
		kv.DailyPlanKey("work", "2024-06-02"): map[string]string{"date": "2024-06-02"},
		kv.WeeklyCalendarKey("work", 0):       map[string][]string{"events": {}},
	})
	require.NoError(t, err)

	for _, key := range []string{
		kv.DailyPlanKey("work", "2024-06-01"),
		kv.DailyPlanKey("work", "2024-06-02"),
		kv.WeeklyCalendarKey("work", 0),
	} {
		raw, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.NotNil(t, raw, "key %s", key)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "honesty-log", map[string]string{}))
	require.NoError(t, store.Delete(ctx, "honesty-log"))
	require.NoError(t, store.Delete(ctx, "honesty-log"))

	raw, err := store.Get(ctx, "honesty-log")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestKeyConventions(t *testing.T) {
	assert.Equal(t, "daily-meeze-work-2024-06-01", kv.DailyPlanKey("work", "2024-06-01"))
	assert.Equal(t, "weekly-calendar-home-week0", kv.WeeklyCalendarKey("home", 0))
	assert.Equal(t, "weekly-calendar-work-week-1", kv.WeeklyCalendarKey("work", -1))
	assert.Equal(t, "habits-work", kv.HabitsKey("work"))
	assert.Equal(t, "habit-logs-home", kv.HabitLogsKey("home"))
	assert.Equal(t, "routines-work", kv.RoutinesKey("work"))
}
