// Package severity assigns an urgency tier to a symptom text using ordered rules.
package severity

import (
	"strconv"
	"strings"

	"github.com/zen-systems/medtriage/pkg/patterns"
	"github.com/zen-systems/medtriage/pkg/schema"
)

// PediatricAgeLimit is the exclusive upper age bound of the pediatric fever rule.
const PediatricAgeLimit = 14

// Rule names reported for the non-table steps.
const (
	RulePediatricFever = "pediatric_fever"
	RuleFeverCatchAll  = "fever_catch_all"
	RuleDefault        = "default"
)

// Verdict is the outcome of a severity evaluation and the rule that produced it.
type Verdict struct {
	Severity schema.Severity `json:"severity"`
	Rule     string          `json:"rule"`
}

// Classifier evaluates the severity tables. The zero value is ready to use and
// safe for concurrent use.
type Classifier struct{}

// NewClassifier returns a severity classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Determine returns the severity of text for an optional patient age.
func (c *Classifier) Determine(text string, age *int) schema.Severity {
	return c.Evaluate(text, age).Severity
}

// Evaluate runs the rules in order and stops at the first one that fires.
func (c *Classifier) Evaluate(text string, age *int) Verdict {
	lower := strings.ToLower(text)

	for _, rule := range patterns.HighRules() {
		if rule.Re.MatchString(lower) {
			return Verdict{Severity: schema.SeverityHigh, Rule: rule.Name}
		}
	}

	if age != nil && *age < PediatricAgeLimit && patterns.PediatricFever().MatchString(lower) {
		return Verdict{Severity: schema.SeverityMedium, Rule: RulePediatricFever}
	}

	for _, rule := range patterns.MediumRules() {
		m := rule.Re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if rule.MinDays > 0 && !meetsDayCount(m, rule.MinDays) {
			continue
		}
		return Verdict{Severity: schema.SeverityMedium, Rule: rule.Name}
	}

	// Short fevers that failed the day-count gate still land here.
	if patterns.FeverCatchAll().MatchString(lower) {
		return Verdict{Severity: schema.SeverityMedium, Rule: RuleFeverCatchAll}
	}

	return Verdict{Severity: schema.SeverityLow, Rule: RuleDefault}
}

func meetsDayCount(m []string, minDays int) bool {
	if len(m) < 3 {
		return false
	}
	days, err := strconv.Atoi(m[2])
	if err != nil {
		return false
	}
	return days >= minDays
}
