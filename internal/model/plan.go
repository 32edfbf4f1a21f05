package model

// DayPlan is the per-day "meeze" planning document: goals, burners, the
// day's task list, and wins logged at day end.
type DayPlan struct {
	Date        string   `json:"date"`
	Goals       []string `json:"goals"`
	FrontBurner string   `json:"frontBurner,omitempty"`
	BackBurner  string   `json:"backBurner,omitempty"`
	Tasks       []Task   `json:"tasks"`
	Wins        []string `json:"wins"`
}

// NewDayPlan returns an empty plan for the given YYYY-MM-DD date.
func NewDayPlan(date string) *DayPlan {
	return &DayPlan{
		Date:  date,
		Goals: []string{},
		Tasks: []Task{},
		Wins:  []string{},
	}
}

// FindTask returns the index of the task with the given id, or -1.
func (p *DayPlan) FindTask(id string) int {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}
