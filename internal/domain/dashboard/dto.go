package dashboard

type StatsResponse struct {
	ReportsLast24h      int     `json:"reportsLast24h"`
	LatestReportTime    *string `json:"latestReportTime"`
	LatestReportProject string  `json:"latestReportProject"`
	OpenIssues          int     `json:"openIssues"`
	LatestOpenIssueID   *string `json:"latestOpenIssueId"`
	ActiveProjects      int     `json:"activeProjects"`
	TotalReports        int     `json:"totalReports"`
	HoursThisWeek       float64 `json:"hoursThisWeek"`
}
