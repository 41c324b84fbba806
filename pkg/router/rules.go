package router

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zen-systems/medtriage/pkg/patterns"
	"github.com/zen-systems/medtriage/pkg/schema"
)

// RuleSet contains the compiled department keyword rules in table order.
type RuleSet struct {
	departments []departmentRules
}

type departmentRules struct {
	department schema.Department
	rules      []compiledRule
}

type compiledRule struct {
	keyword string
	lower   string
	// bounded keywords need a word boundary on both sides for an exact match.
	bounded bool
}

// NewRuleSet compiles the department keyword tables.
func NewRuleSet() *RuleSet {
	rs := &RuleSet{}
	for _, dept := range schema.Departments() {
		dr := departmentRules{department: dept}
		for _, kw := range patterns.DepartmentKeywords(dept) {
			lower := strings.ToLower(kw)
			dr.rules = append(dr.rules, compiledRule{
				keyword: kw,
				lower:   lower,
				bounded: isBoundedKeyword(lower),
			})
		}
		rs.departments = append(rs.departments, dr)
	}
	return rs
}

// Score returns the candidates with a positive score, in table order.
// text must already be lowercased.
func (rs *RuleSet) Score(text string) []Candidate {
	var candidates []Candidate
	for _, dr := range rs.departments {
		cand := Candidate{Department: dr.department}
		for _, rule := range dr.rules {
			if kind, ok := rule.match(text); ok {
				cand.Matches = append(cand.Matches, Match{Keyword: rule.keyword, Kind: kind})
				if kind == MatchExact {
					cand.Score += ExactScore
				} else {
					cand.Score += PartialScore
				}
			}
		}
		if cand.Score > 0 {
			candidates = append(candidates, cand)
		}
	}
	return candidates
}

func (r compiledRule) match(text string) (MatchKind, bool) {
	if r.bounded {
		if containsTrigger(text, r.lower) {
			return MatchExact, true
		}
		if strings.Contains(text, r.lower) {
			return MatchPartial, true
		}
		return "", false
	}
	// Word boundaries are ill-defined for non-Latin scripts, so containment is exact.
	if strings.Contains(text, r.lower) {
		return MatchExact, true
	}
	return "", false
}

// isBoundedKeyword reports whether the keyword is ASCII with at least one alphanumeric.
func isBoundedKeyword(keyword string) bool {
	hasAlnum := false
	for _, r := range keyword {
		if r > unicode.MaxASCII {
			return false
		}
		if isWordRune(r) && r != '_' {
			hasAlnum = true
		}
	}
	return hasAlnum
}

// containsTrigger checks if the text contains the trigger as a word or phrase.
// Every occurrence is tried, so "ear" is found in "hearing, ear pain".
func containsTrigger(text, trigger string) bool {
	if trigger == "" {
		return false
	}
	offset := 0
	for {
		idx := strings.Index(text[offset:], trigger)
		if idx == -1 {
			return false
		}
		start := offset + idx
		end := start + len(trigger)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		offset = start + 1
		for offset < len(text) && !utf8.RuneStart(text[offset]) {
			offset++
		}
		if offset >= len(text) {
			return false
		}
	}
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:idx])
	return !isWordRune(prev)
}

func boundaryAfter(text string, idx int) bool {
	if idx >= len(text) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[idx:])
	return !isWordRune(next)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}
