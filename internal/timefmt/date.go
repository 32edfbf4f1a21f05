package timefmt

import "time"

// DateLayout is the YYYY-MM-DD form used for plan dates and link keys.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// DayOfWeek returns the Sunday-first weekday index (0-6) for a YYYY-MM-DD
// date string.
func DayOfWeek(date string) (int, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}

// startOfWeek returns the Sunday 00:00 UTC that begins t's calendar week.
// The day is rebuilt from t's date components so week arithmetic never
// depends on the caller's zone or on DST transitions.
func startOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeekOffset returns how many whole Sunday-first weeks the given date lies
// after the week containing now. Dates inside the current week yield 0;
// past weeks are negative.
func WeekOffset(now time.Time, date string) (int, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	from := startOfWeek(now)
	to := startOfWeek(t)
	days := int(to.Sub(from).Hours() / 24)
	return days / 7, nil
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
