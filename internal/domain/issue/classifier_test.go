package issue

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
)

func rep(id string, createdAt time.Time, text string, tags ...string) report.Report {
	return report.Report{
		ID:           id,
		Text:         text,
		QuickActions: tags,
		CreatedAt:    createdAt,
	}
}

func TestDefaultClassifier(t *testing.T) {
	c := Default()
	now := time.Now()

	cases := []struct {
		name string
		r    report.Report
		want bool
	}{
		{"missing material tag", rep("r1", now, "alles gut", "Material fehlt"), true},
		{"inspection tag", rep("r2", now, "", "Inspektion"), true},
		{"problem in text", rep("r3", now, "Problem mit Grundwasser"), true},
		{"case insensitive text", rep("r4", now, "PROBLEM an der Baustelle"), true},
		{"tag match across join", rep("r5", now, "", "Material", "fehlt"), true},
		{"clean report", rep("r6", now, "Fundament fertig", "Arbeiten abgeschlossen"), false},
		{"empty report", rep("r7", now, ""), false},
	}

	for _, c2 := range cases {
		t.Run(c2.name, func(t *testing.T) {
			if got := c.IsOpenIssue(c2.r); got != c2.want {
				t.Errorf("IsOpenIssue(%s) = %v, want %v", c2.r.ID, got, c2.want)
			}
		})
	}
}

func TestFlagSortsNewestFirst(t *testing.T) {
	c := Default()
	base := time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)

	reports := []report.Report{
		rep("old", base, "Problem A"),
		rep("clean", base.Add(time.Hour), "alles ruhig"),
		rep("new", base.Add(2*time.Hour), "Problem B"),
		rep("tie-1", base.Add(time.Hour), "Problem C"),
		rep("tie-2", base.Add(time.Hour), "Problem D"),
	}

	flagged := c.Flag(reports)
	if len(flagged) != 4 {
		t.Fatalf("got %d flagged, want 4", len(flagged))
	}
	if flagged[0].ID != "new" || flagged[3].ID != "old" {
		t.Errorf("flag order = %v, want newest first", ids(flagged))
	}
	// Equal timestamps keep input order.
	if flagged[1].ID != "tie-1" || flagged[2].ID != "tie-2" {
		t.Errorf("tie order = %v, want stable", ids(flagged))
	}
}

func ids(reports []report.Report) []string {
	out := make([]string, len(reports))
	for i, r := range reports {
		out[i] = r.ID
	}
	return out
}

func TestLatest(t *testing.T) {
	c := Default()
	base := time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)

	if _, ok := c.Latest(nil); ok {
		t.Error("Latest(nil) found a report")
	}
	if _, ok := c.Latest([]report.Report{rep("clean", base, "ok")}); ok {
		t.Error("Latest with no flagged reports found one")
	}

	latest, ok := c.Latest([]report.Report{
		rep("r1", base, "Problem A"),
		rep("r2", base.Add(time.Hour), "Problem B"),
		rep("r3", base.Add(30*time.Minute), "Problem C"),
	})
	if !ok || latest.ID != "r2" {
		t.Errorf("Latest = %v %v, want r2", latest.ID, ok)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `rules:
  - match: Verzögerung
    target: tags
  - match: unfall
    target: text
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	now := time.Now()
	if !c.IsOpenIssue(rep("r1", now, "", "Verzögerung")) {
		t.Error("custom tag rule did not match")
	}
	if !c.IsOpenIssue(rep("r2", now, "Unfall auf der Baustelle")) {
		t.Error("custom text rule did not match")
	}
	// Default rules are replaced, not merged.
	if c.IsOpenIssue(rep("r3", now, "Problem XY")) {
		t.Error("default rule still active after loading custom rules")
	}
}

func TestLoadFileRejectsBadRules(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		content string
	}{
		{"empty rules", "rules: []\n"},
		{"unknown target", "rules:\n  - match: x\n    target: title\n"},
		{"empty match", "rules:\n  - match: \"\"\n    target: text\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(dir, c.name+".yaml")
			if err := os.WriteFile(path, []byte(c.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("LoadFile accepted invalid rules")
			}
		})
	}
}
