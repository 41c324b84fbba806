// Package router assigns a symptom text to a clinical department by keyword scoring,
// with age and gender overrides and an out-of-scope referral rule.
package router

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/zen-systems/medtriage/pkg/patterns"
	"github.com/zen-systems/medtriage/pkg/schema"
)

// PediatricAgeLimit is the exclusive upper age bound of the age override.
const PediatricAgeLimit = 14

// MaxReferKeywords bounds the out-of-scope keywords reported on a referral.
const MaxReferKeywords = 5

// Marker keywords recorded by the age override rules.
const (
	KeywordGynecologyOverride = "age<14_female_gynecology"
	KeywordPediatricRule      = "pediatric_rule"
)

// Classifier routes symptom texts to departments. It holds only immutable state
// after construction and is safe for concurrent use.
type Classifier struct {
	rules      *RuleSet
	gynecology *keywordScanner
	refer      *keywordScanner
	log        *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the classifier logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Classifier) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClassifier compiles the keyword tables into a classifier.
func NewClassifier(opts ...Option) (*Classifier, error) {
	gyn, err := newKeywordScanner(patterns.DepartmentKeywords(schema.Gynecology))
	if err != nil {
		return nil, fmt.Errorf("gynecology keywords: %w", err)
	}
	refer, err := newKeywordScanner(patterns.ReferKeywords())
	if err != nil {
		return nil, fmt.Errorf("refer keywords: %w", err)
	}

	c := &Classifier{
		rules:      NewRuleSet(),
		gynecology: gyn,
		refer:      refer,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Classify determines the department for a symptom text.
func (c *Classifier) Classify(text string, age *int, gender schema.Gender) schema.ClassificationResult {
	lower := strings.ToLower(text)

	if age != nil && *age < PediatricAgeLimit {
		if gender.IsFemale() && c.gynecology.Any(lower) {
			return schema.ClassificationResult{
				Department: schema.Gynecology.Ptr(),
				Confidence: 1.0,
				Keywords:   []string{KeywordGynecologyOverride},
				Method:     schema.MethodAgeOverride,
			}
		}
		return schema.ClassificationResult{
			Department: schema.Pediatrics.Ptr(),
			Confidence: 1.0,
			Keywords:   []string{KeywordPediatricRule},
			Method:     schema.MethodPediatricRule,
		}
	}

	candidates := c.rules.Score(lower)
	if len(candidates) == 0 {
		if referred := c.refer.Found(lower); len(referred) > 0 {
			if len(referred) > MaxReferKeywords {
				referred = referred[:MaxReferKeywords]
			}
			return schema.ClassificationResult{
				Confidence: 0,
				Keywords:   referred,
				Method:     schema.MethodReferRule,
			}
		}
		return schema.ClassificationResult{
			Confidence: 0,
			Keywords:   []string{},
			Method:     schema.MethodNoMatch,
		}
	}

	best := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.Score > best.Score {
			best = cand
		}
	}

	c.log.Debug("department scored",
		"department", best.Department.String(),
		"score", best.Score,
		"candidates", len(candidates))

	return schema.ClassificationResult{
		Department: best.Department.Ptr(),
		Confidence: best.Confidence(),
		Keywords:   best.Keywords(),
		Method:     schema.MethodKeywordScoring,
	}
}

// Candidates returns every department with a positive score, highest first.
// Equal scores keep table order, so the first entry is the department Classify picks.
func (c *Classifier) Candidates(text string) []Candidate {
	candidates := c.rules.Score(strings.ToLower(text))
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}
