package timesheet

import "context"

type TimesheetService interface {
	// Week aggregates the calendar week containing date ("YYYY-MM-DD",
	// empty for the current week), optionally narrowed to one worker.
	Week(ctx context.Context, date string, workerID string) (WeekResponse, error)
}
