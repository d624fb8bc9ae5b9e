package timesheet

// WeekStat is one worker's aggregate over a week.
type WeekStat struct {
	TotalHours float64
	DaysWorked int
	Entries    []Entry
}

// AvgPerDay returns the average hours per worked day, zero when no day
// was worked.
func (s WeekStat) AvgPerDay() float64 {
	if s.DaysWorked == 0 {
		return 0
	}
	return s.TotalHours / float64(s.DaysWorked)
}

// WeekSummary is the full weekly aggregation over a set of workers.
type WeekSummary struct {
	Week        Week
	Stats       map[string]WeekStat // keyed by worker ID
	WeeklyTotal float64
}

// EntriesFor returns the entries of one worker on one day. An empty
// workerID matches every worker.
func EntriesFor(entries []Entry, day string, workerID string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Day != day {
			continue
		}
		if workerID != "" && e.WorkerID != workerID {
			continue
		}
		out = append(out, e)
	}
	return out
}

// HoursFor sums the net hours of one worker on one day. An empty workerID
// sums across all workers.
func HoursFor(entries []Entry, day string, workerID string) float64 {
	var sum float64
	for _, e := range EntriesFor(entries, day, workerID) {
		sum += e.Hours()
	}
	return sum
}

// Aggregate computes per-worker weekly stats over the given week. Every
// worker gets a stat entry even with no work recorded. Days worked counts
// distinct calendar days with at least one entry; entries outside the week
// are ignored. Unparsable shifts contribute zero hours but still count as
// presence.
func Aggregate(entries []Entry, week Week, workers []Worker) WeekSummary {
	stats := make(map[string]WeekStat, len(workers))
	for _, w := range workers {
		stats[w.ID] = WeekStat{}
	}

	for _, day := range week.DayKeys() {
		for _, w := range workers {
			dayEntries := EntriesFor(entries, day, w.ID)
			if len(dayEntries) == 0 {
				continue
			}
			st := stats[w.ID]
			for _, e := range dayEntries {
				st.TotalHours += e.Hours()
			}
			st.DaysWorked++
			st.Entries = append(st.Entries, dayEntries...)
			stats[w.ID] = st
		}
	}

	var total float64
	for _, st := range stats {
		total += st.TotalHours
	}

	return WeekSummary{Week: week, Stats: stats, WeeklyTotal: total}
}
