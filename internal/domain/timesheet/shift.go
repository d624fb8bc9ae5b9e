package timesheet

import (
	"strconv"
	"strings"
)

// Shift is the recorded working time of a single entry. It is either unset
// (no usable clock times) or a recorded start/end span with a break.
type Shift struct {
	recorded     bool
	startMinutes int
	endMinutes   int
	breakMinutes int
}

func parseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

// ParseShift builds a Shift from optional "HH:MM" clock strings. A missing
// or unparsable side yields an unset shift. A nil break counts as zero.
func ParseShift(start, end *string, breakMinutes *int) Shift {
	if start == nil || end == nil {
		return Shift{}
	}
	startMin, ok := parseClock(*start)
	if !ok {
		return Shift{}
	}
	endMin, ok := parseClock(*end)
	if !ok {
		return Shift{}
	}
	b := 0
	if breakMinutes != nil {
		b = *breakMinutes
	}
	return Shift{
		recorded:     true,
		startMinutes: startMin,
		endMinutes:   endMin,
		breakMinutes: b,
	}
}

// Recorded reports whether the shift carries usable clock times.
func (s Shift) Recorded() bool {
	return s.recorded
}

// Hours returns the net working hours of the shift. An unset shift is zero
// hours, and a span that ends before it starts (or is eaten by the break)
// clamps to zero rather than going negative.
func (s Shift) Hours() float64 {
	if !s.recorded {
		return 0
	}
	minutes := s.endMinutes - s.startMinutes - s.breakMinutes
	if minutes < 0 {
		minutes = 0
	}
	return float64(minutes) / 60
}
