package issue

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
)

// Target selects which part of a report a rule matches against.
type Target string

const (
	// TargetTags matches against the report's quick-action tags, joined
	// with spaces.
	TargetTags Target = "tags"
	// TargetText matches against the report's free text.
	TargetText Target = "text"
)

// Rule is a single case-insensitive substring matcher.
type Rule struct {
	Match  string `yaml:"match"`
	Target Target `yaml:"target"`
}

// Classifier decides whether a report counts as an open issue. Rules are
// checked in order; the first hit flags the report.
type Classifier struct {
	rules []Rule
}

// Default returns the built-in rule set: missing material or a pending
// inspection tag, or the word "problem" in the report text.
func Default() *Classifier {
	return New([]Rule{
		{Match: "material fehlt", Target: TargetTags},
		{Match: "inspektion", Target: TargetTags},
		{Match: "problem", Target: TargetText},
	})
}

// New builds a classifier from an ordered rule list. Match strings are
// lowercased once up front.
func New(rules []Rule) *Classifier {
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		normalized[i] = Rule{
			Match:  strings.ToLower(r.Match),
			Target: r.Target,
		}
	}
	return &Classifier{rules: normalized}
}

type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadFile reads a YAML rule file of the form:
//
//	rules:
//	  - match: material fehlt
//	    target: tags
//	  - match: problem
//	    target: text
func LoadFile(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read issue rules: %w", err)
	}

	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse issue rules: %w", err)
	}
	if len(f.Rules) == 0 {
		return nil, fmt.Errorf("issue rules file %s contains no rules", path)
	}
	for _, r := range f.Rules {
		if r.Target != TargetTags && r.Target != TargetText {
			return nil, fmt.Errorf("issue rule %q has unknown target %q", r.Match, r.Target)
		}
		if strings.TrimSpace(r.Match) == "" {
			return nil, fmt.Errorf("issue rule with target %q has an empty match", r.Target)
		}
	}

	return New(f.Rules), nil
}

// Rules returns a copy of the classifier's rule list.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// IsOpenIssue reports whether a single report matches any rule.
func (c *Classifier) IsOpenIssue(r report.Report) bool {
	tags := strings.ToLower(strings.Join(r.QuickActions, " "))
	text := strings.ToLower(r.Text)

	for _, rule := range c.rules {
		switch rule.Target {
		case TargetTags:
			if strings.Contains(tags, rule.Match) {
				return true
			}
		case TargetText:
			if strings.Contains(text, rule.Match) {
				return true
			}
		}
	}
	return false
}

// Flag returns the reports matching any rule, newest first. The sort is
// stable, so reports with equal timestamps keep their input order.
func (c *Classifier) Flag(reports []report.Report) []report.Report {
	var flagged []report.Report
	for _, r := range reports {
		if c.IsOpenIssue(r) {
			flagged = append(flagged, r)
		}
	}

	sort.SliceStable(flagged, func(i, j int) bool {
		return flagged[i].CreatedAt.After(flagged[j].CreatedAt)
	})
	return flagged
}

// Latest returns the most recent flagged report, or false when nothing
// is flagged.
func (c *Classifier) Latest(reports []report.Report) (report.Report, bool) {
	var latest report.Report
	found := false
	for _, r := range reports {
		if !c.IsOpenIssue(r) {
			continue
		}
		if !found || r.CreatedAt.After(latest.CreatedAt) {
			latest = r
			found = true
		}
	}
	return latest, found
}
