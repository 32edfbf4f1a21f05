package model

import "time"

// HonestyEntry is one reflective journal entry. The log is append-only.
type HonestyEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// HonestyLog is the persisted journal document.
type HonestyLog struct {
	Entries []HonestyEntry `json:"entries"`
}

// TaskLog records a completed task for later review.
type TaskLog struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Text        string    `json:"text"`
	Type        string    `json:"type,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}

// TaskLogBook is the persisted task-log document.
type TaskLogBook struct {
	Logs []TaskLog `json:"logs"`
}

// Habit is a recurring practice tracked per context.
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// HabitSet is the persisted habit list for one context.
type HabitSet struct {
	Habits []Habit `json:"habits"`
}

// HabitLog marks one habit as done on one YYYY-MM-DD day.
type HabitLog struct {
	HabitID string `json:"habitId"`
	Date    string `json:"date"`
}

// HabitLogBook is the persisted habit-log document for one context.
type HabitLogBook struct {
	Logs []HabitLog `json:"logs"`
}

// RoutineItem is one checklist step inside a routine.
type RoutineItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Routine is an ordered checklist with per-item completion toggles.
type Routine struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Items []RoutineItem `json:"items"`
}

// RoutineSet is the persisted routine list for one context.
type RoutineSet struct {
	Routines []Routine `json:"routines"`
}
