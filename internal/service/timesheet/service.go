package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/timesheet"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/user"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/validator"
)

type TimesheetServiceImpl struct {
	report.ReportRepository
}

func NewTimesheetService(reportRepository report.ReportRepository) timesheet.TimesheetService {
	return &TimesheetServiceImpl{ReportRepository: reportRepository}
}

// Week implements timesheet.TimesheetService. Admins may aggregate every
// worker or narrow to one; workers always get their own timesheet.
func (s *TimesheetServiceImpl) Week(ctx context.Context, date string, workerID string) (timesheet.WeekResponse, error) {
	userID, role, err := claimsFromContext(ctx)
	if err != nil {
		return timesheet.WeekResponse{}, err
	}

	if role != user.RoleAdmin {
		workerID = userID
	}

	anchor := time.Now().UTC()
	if date != "" {
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			return timesheet.WeekResponse{}, validator.ValidationErrors{{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			}}
		}
		anchor = parsed
	}
	week := timesheet.WeekOf(anchor)

	var reports []report.Report
	if role == user.RoleAdmin {
		reports, err = s.ReportRepository.List(ctx)
	} else {
		reports, err = s.ReportRepository.ListForWorker(ctx, userID)
	}
	if err != nil {
		return timesheet.WeekResponse{}, err
	}

	entries := timesheet.FromReports(reports)

	workers := timesheet.WorkersFrom(entries)
	if workerID != "" {
		var filtered []timesheet.Worker
		for _, w := range workers {
			if w.ID == workerID {
				filtered = append(filtered, w)
			}
		}
		workers = filtered
	}

	summary := timesheet.Aggregate(entries, week, workers)

	dayKeys := week.DayKeys()
	days := make([]string, len(dayKeys))
	copy(days, dayKeys[:])

	dayTotals := make(map[string]float64, len(days))
	for _, day := range days {
		var total float64
		for _, w := range workers {
			total += timesheet.HoursFor(entries, day, w.ID)
		}
		dayTotals[day] = total
	}

	workerResponses := make([]timesheet.WorkerWeekResponse, 0, len(workers))
	for _, w := range workers {
		stat := summary.Stats[w.ID]
		entryResponses := make([]timesheet.EntryResponse, 0, len(stat.Entries))
		for _, e := range stat.Entries {
			entryResponses = append(entryResponses, timesheet.EntryResponse{
				ID:           e.ID,
				Date:         e.Day,
				ProjectID:    e.ProjectID,
				ProjectName:  e.ProjectName,
				StartTime:    e.StartTime,
				EndTime:      e.EndTime,
				BreakMinutes: e.BreakMinutes,
				Hours:        e.Hours(),
				Notes:        e.Notes,
			})
		}
		workerResponses = append(workerResponses, timesheet.WorkerWeekResponse{
			ID:             w.ID,
			Name:           w.Name,
			Username:       w.Username,
			AvatarURL:      w.AvatarURL,
			TotalHours:     stat.TotalHours,
			DaysWorked:     stat.DaysWorked,
			AvgHoursPerDay: stat.AvgPerDay(),
			Entries:        entryResponses,
		})
	}

	return timesheet.WeekResponse{
		WeekStart:  timesheet.DayKey(week.Monday()),
		WeekEnd:    timesheet.DayKey(week.Sunday()),
		Days:       days,
		Workers:    workerResponses,
		DayTotals:  dayTotals,
		TotalHours: summary.WeeklyTotal,
	}, nil
}

func claimsFromContext(ctx context.Context) (string, user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, _ := claims["role"].(string)
	return userID, user.Role(roleStr), nil
}
