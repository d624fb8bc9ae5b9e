package timesheet

type WeekResponse struct {
	WeekStart  string               `json:"weekStart"`
	WeekEnd    string               `json:"weekEnd"`
	Days       []string             `json:"days"`
	Workers    []WorkerWeekResponse `json:"workers"`
	DayTotals  map[string]float64   `json:"dayTotals"`
	TotalHours float64              `json:"totalHours"`
}

type WorkerWeekResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Username       string          `json:"username"`
	AvatarURL      string          `json:"avatarUrl"`
	TotalHours     float64         `json:"totalHours"`
	DaysWorked     int             `json:"daysWorked"`
	AvgHoursPerDay float64         `json:"avgHoursPerDay"`
	Entries        []EntryResponse `json:"entries"`
}

type EntryResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	ProjectID    string  `json:"projectId"`
	ProjectName  string  `json:"projectName"`
	StartTime    *string `json:"startTime"`
	EndTime      *string `json:"endTime"`
	BreakMinutes *int    `json:"breakMinutes"`
	Hours        float64 `json:"hours"`
	Notes        string  `json:"notes"`
}
