package model

// DefaultEventDurationMinutes is the implicit slot size for events saved
// without an explicit duration.
const DefaultEventDurationMinutes = 30

// CalendarEvent is a scheduled occurrence inside one week's grid. Events are
// owned by a (context, weekOffset) container; DayOfWeek is Sunday-first 0-6
// and Time is the persisted 24-hour "HH:mm" form.
type CalendarEvent struct {
	ID              string `json:"id"`
	DayOfWeek       int    `json:"dayOfWeek"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Type            string `json:"type"`
	Status          string `json:"status"`
	Context         string `json:"context"`
	LinkedTaskID    string `json:"linkedTaskId,omitempty"`
	LinkedTaskDate  string `json:"linkedTaskDate,omitempty"`
}

// Duration returns the occupied interval length, falling back to the
// implicit 30-minute slot.
func (e CalendarEvent) Duration() int {
	if e.DurationMinutes <= 0 {
		return DefaultEventDurationMinutes
	}
	return e.DurationMinutes
}

// WeekEvents is the persisted document for one (context, weekOffset)
// calendar container.
type WeekEvents struct {
	Events []CalendarEvent `json:"events"`
}
