package router

import (
	"fmt"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
)

// keywordScanner finds plain substring hits of a fixed keyword list in one pass.
type keywordScanner struct {
	matcher  *goahocorasick.Machine
	keywords []string
}

func newKeywordScanner(keywords []string) (*keywordScanner, error) {
	lowered := make([]string, 0, len(keywords))
	patterns := make([][]rune, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if kw == "" {
			continue
		}
		lowered = append(lowered, kw)
		patterns = append(patterns, []rune(kw))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, fmt.Errorf("build keyword automaton: %w", err)
	}
	return &keywordScanner{matcher: m, keywords: lowered}, nil
}

// Found returns the keywords present in text, in keyword-list order, without duplicates.
// text must already be lowercased.
func (s *keywordScanner) Found(text string) []string {
	if text == "" {
		return nil
	}
	terms := s.matcher.MultiPatternSearch([]rune(text), false)
	if len(terms) == 0 {
		return nil
	}
	hits := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		hits[string(term.Word)] = struct{}{}
	}

	var found []string
	for _, kw := range s.keywords {
		if _, ok := hits[kw]; ok {
			found = append(found, kw)
			delete(hits, kw)
		}
	}
	return found
}

// Any reports whether at least one keyword occurs in text.
func (s *keywordScanner) Any(text string) bool {
	if text == "" {
		return false
	}
	return len(s.matcher.MultiPatternSearch([]rune(text), true)) > 0
}
