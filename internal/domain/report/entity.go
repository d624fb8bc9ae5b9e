package report

import "time"

// MaxImages caps the number of photos accepted per report.
const MaxImages = 10

// QuickActions are the predefined tags a worker can attach to a report.
var QuickActions = []string{
	"Material geliefert",
	"Material fehlt",
	"Arbeiten abgeschlossen",
	"Wetter: Regen",
	"Wetter: Sonnig",
	"Verzögerung",
	"Inspektion",
	"Sicherheitsproblem",
}

type Report struct {
	ID             string
	ProjectID      string
	UserID         string
	Text           string
	QuickActions   []string
	Weather        *string
	WorkersPresent *int
	StartTime      *string
	EndTime        *string
	BreakMinutes   *int
	CreatedAt      time.Time

	// Join
	UserName       string
	Username       string
	ProjectName    string
	ProjectAddress string
	ImagePaths     []string
}

// AuthorName returns the report author's full name, falling back to the
// username.
func (r *Report) AuthorName() string {
	if r.UserName != "" {
		return r.UserName
	}
	return r.Username
}
