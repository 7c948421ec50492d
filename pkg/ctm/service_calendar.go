package ctm

import "time"

type ServiceCalendar struct {
	PrimaryIdentifier string

	// Weekdays is indexed by time.Weekday (Sunday = 0).
	Weekdays [7]bool

	StartDate time.Time
	EndDate   time.Time
}

func (c *ServiceCalendar) ActiveOn(date time.Time) bool {
	if !c.Weekdays[date.Weekday()] {
		return false
	}
	if !c.StartDate.IsZero() && date.Before(c.StartDate) {
		return false
	}
	if !c.EndDate.IsZero() && date.After(c.EndDate) {
		return false
	}

	return true
}

// ActiveOnAll reports whether the calendar runs on every one of the given
// weekdays, e.g. the full Monday to Friday commute pattern.
func (c *ServiceCalendar) ActiveOnAll(weekdays []time.Weekday) bool {
	for _, day := range weekdays {
		if !c.Weekdays[day] {
			return false
		}
	}
	return true
}
