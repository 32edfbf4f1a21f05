package timefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a parsed wall-clock time of day.
type Clock struct {
	Hours   int
	Minutes int
}

// String returns the machine-sortable 24-hour "HH:mm" form.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hours, c.Minutes)
}

// To12Hour converts a 24-hour "HH:mm" string to the display form
// "h:mm AM/PM": hour unpadded, minutes zero-padded, uppercase meridiem with
// a single leading space. Invalid input returns ok=false.
func To12Hour(time24 string) (string, bool) {
	c, ok := split24(time24)
	if !ok {
		return "", false
	}

	meridiem := "AM"
	hour := c.Hours
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minutes, meridiem), true
}

// To24Hour converts a "h:mm AM/PM" display string back to "HH:mm". It is
// the inverse of To12Hour: To24Hour(To12Hour(x)) == x for every valid x.
func To24Hour(time12 string) (string, bool) {
	c, ok := ParseFreeText(time12)
	if !ok {
		return "", false
	}
	return c.String(), true
}

// ParseFreeText parses loosely formatted time input such as "1 PM",
// "3:30 pm", "930" or "09:00". Malformed input returns ok=false; callers
// leave the time unset rather than substituting a default.
func ParseFreeText(s string) (Clock, bool) {
	work := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if work == "" {
		return Clock{}, false
	}

	isPM := strings.Contains(work, "pm")
	isAM := strings.Contains(work, "am")
	work = strings.ReplaceAll(work, "pm", "")
	work = strings.ReplaceAll(work, "am", "")
	work = strings.TrimSpace(work)

	var hours, minutes int
	if strings.Contains(work, ":") {
		parts := strings.SplitN(work, ":", 2)
		h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return Clock{}, false
		}
		m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return Clock{}, false
		}
		hours, minutes = h, m
	} else {
		n, err := strconv.Atoi(work)
		if err != nil || n < 0 {
			return Clock{}, false
		}
		if n < 100 {
			hours, minutes = n, 0
		} else {
			hours, minutes = n/100, n%100
		}
	}

	if minutes < 0 || minutes > 59 {
		return Clock{}, false
	}

	if isPM && hours != 12 {
		hours += 12
	}
	if isAM && hours == 12 {
		hours = 0
	}

	if hours < 0 || hours > 23 {
		return Clock{}, false
	}
	return Clock{Hours: hours, Minutes: minutes}, true
}

// AddMinutes shifts a 24-hour "HH:mm" string forward, wrapping at midnight.
func AddMinutes(time24 string, minutes int) (string, bool) {
	total, ok := MinutesOfDay(time24)
	if !ok {
		return "", false
	}
	total = ((total+minutes)%(24*60) + 24*60) % (24 * 60)
	return Clock{Hours: total / 60, Minutes: total % 60}.String(), true
}

// MinutesOfDay converts a 24-hour "HH:mm" string to minutes since midnight.
func MinutesOfDay(time24 string) (int, bool) {
	c, ok := split24(time24)
	if !ok {
		return 0, false
	}
	return c.Hours*60 + c.Minutes, true
}

func split24(time24 string) (Clock, bool) {
	parts := strings.SplitN(time24, ":", 2)
	if len(parts) != 2 {
		return Clock{}, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, false
	}
	return Clock{Hours: h, Minutes: m}, true
}
