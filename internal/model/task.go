package model

const (
	TaskTypeProcess   = "process"
	TaskTypeImmersive = "immersive"

	TaskStatusNotStarted = "not_started"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

const (
	ContextWork = "work"
	ContextHome = "home"
)

// MiniTask is a sub-item owned by a Task.
type MiniTask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Task is a unit of work belonging to one day's plan. Completed and Status
// are independent fields; the app never reconciles one against the other.
type Task struct {
	ID            string     `json:"id"`
	Text          string     `json:"text"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	Completed     bool       `json:"completed"`
	StartTime     string     `json:"startTime,omitempty"`
	EndTime       string     `json:"endTime,omitempty"`
	LinkedEventID string     `json:"linkedEventId,omitempty"`
	MiniTasks     []MiniTask `json:"miniTasks"`
}

func IsValidTaskType(t string) bool {
	return t == TaskTypeProcess || t == TaskTypeImmersive
}

func IsValidTaskStatus(s string) bool {
	return s == TaskStatusNotStarted || s == TaskStatusInProgress || s == TaskStatusCompleted
}

func IsValidContext(c string) bool {
	return c == ContextWork || c == ContextHome
}
