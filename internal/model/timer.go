package model

import "time"

// Timer is an independent countdown. StartedAt is set exactly while the
// timer is running; RemainingSeconds stays within [0, DurationSeconds].
type Timer struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	DurationSeconds  int        `json:"durationSeconds"`
	RemainingSeconds int        `json:"remainingSeconds"`
	IsRunning        bool       `json:"isRunning"`
	StartedAt        *time.Time `json:"startedAt,omitempty"`
	NotificationID   string     `json:"notificationId,omitempty"`
}

// Completed reports whether the countdown has run out.
func (t Timer) Completed() bool {
	return t.RemainingSeconds == 0
}

// TimerSet is the persisted document holding the whole timer collection.
// The set is rewritten on every state change.
type TimerSet struct {
	Timers []Timer `json:"timers"`
}
