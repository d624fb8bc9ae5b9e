package timesheet

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
)

// Entry is a single timesheet line derived from a site report.
type Entry struct {
	ID           string
	Day          string // calendar-day key "YYYY-MM-DD"
	WorkerID     string
	WorkerName   string
	ProjectID    string
	ProjectName  string
	StartTime    *string
	EndTime      *string
	BreakMinutes *int
	Notes        string
}

// Shift parses the entry's clock times.
func (e Entry) Shift() Shift {
	return ParseShift(e.StartTime, e.EndTime, e.BreakMinutes)
}

// Hours returns the entry's net working hours.
func (e Entry) Hours() float64 {
	return e.Shift().Hours()
}

// FromReports converts site reports into timesheet entries. The entry day
// is the report's submission day. Project names fall back to the raw
// project id when the join did not resolve one.
func FromReports(reports []report.Report) []Entry {
	entries := make([]Entry, 0, len(reports))
	for _, r := range reports {
		projectName := r.ProjectName
		if projectName == "" {
			projectName = r.ProjectID
		}
		entries = append(entries, Entry{
			ID:           "report-" + r.ID,
			Day:          DayKey(r.CreatedAt),
			WorkerID:     r.UserID,
			WorkerName:   r.AuthorName(),
			ProjectID:    r.ProjectID,
			ProjectName:  projectName,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			BreakMinutes: r.BreakMinutes,
			Notes:        r.Text,
		})
	}
	return entries
}

// Worker identifies a timesheet participant derived from entry authorship.
type Worker struct {
	ID        string
	Name      string
	Username  string
	AvatarURL string
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// WorkersFrom derives the distinct workers appearing in entries, in first
// observed order. A missing worker name falls back to "Unbekannt"; the
// derived username is the lowercased name with whitespace runs replaced
// by dots.
func WorkersFrom(entries []Entry) []Worker {
	seen := make(map[string]struct{})
	var workers []Worker
	for _, e := range entries {
		if _, ok := seen[e.WorkerID]; ok {
			continue
		}
		seen[e.WorkerID] = struct{}{}

		name := e.WorkerName
		if strings.TrimSpace(name) == "" {
			name = "Unbekannt"
		}
		username := whitespaceRegex.ReplaceAllString(strings.ToLower(name), ".")

		workers = append(workers, Worker{
			ID:        e.WorkerID,
			Name:      name,
			Username:  username,
			AvatarURL: fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", url.QueryEscape(name)),
		})
	}
	return workers
}
