package timesheet

import "time"

// DayKey formats a point in time as its calendar-day key ("YYYY-MM-DD").
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Week is a Monday-based calendar week of seven consecutive days.
type Week struct {
	days [7]time.Time
}

// WeekOf derives the week containing t. Sundays belong to the week that
// started the previous Monday.
func WeekOf(t time.Time) Week {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := day.AddDate(0, 0, 1-weekday)

	var w Week
	for i := range w.days {
		w.days[i] = monday.AddDate(0, 0, i)
	}
	return w
}

// Days returns the seven days of the week, Monday first.
func (w Week) Days() [7]time.Time {
	return w.days
}

// DayKeys returns the calendar-day keys of the week, Monday first.
func (w Week) DayKeys() [7]string {
	var keys [7]string
	for i, d := range w.days {
		keys[i] = DayKey(d)
	}
	return keys
}

func (w Week) Monday() time.Time {
	return w.days[0]
}

func (w Week) Sunday() time.Time {
	return w.days[6]
}

// Prev returns the week before w.
func (w Week) Prev() Week {
	return WeekOf(w.days[0].AddDate(0, 0, -7))
}

// Next returns the week after w.
func (w Week) Next() Week {
	return WeekOf(w.days[0].AddDate(0, 0, 7))
}

// Contains reports whether the calendar day of t falls inside the week.
func (w Week) Contains(t time.Time) bool {
	key := DayKey(t)
	for _, k := range w.DayKeys() {
		if k == key {
			return true
		}
	}
	return false
}
