package router

import "github.com/zen-systems/medtriage/pkg/schema"

// MatchKind distinguishes a word-boundary match from a bare substring match.
type MatchKind string

const (
	MatchExact   MatchKind = "exact"
	MatchPartial MatchKind = "partial"
)

// Scores awarded per matched keyword.
const (
	ExactScore   = 10
	PartialScore = 5
)

// Match is a single keyword hit inside a department.
type Match struct {
	Keyword string    `json:"keyword"`
	Kind    MatchKind `json:"kind"`
}

// Candidate captures the accumulated keyword score of one department.
type Candidate struct {
	Department schema.Department `json:"department"`
	Score      int               `json:"score"`
	Matches    []Match           `json:"matches,omitempty"`
}

// Keywords returns the matched keywords in discovery order.
func (c Candidate) Keywords() []string {
	out := make([]string, len(c.Matches))
	for i, m := range c.Matches {
		out[i] = m.Keyword
	}
	return out
}

// Confidence normalizes the score so that one exact match saturates at 1.0.
func (c Candidate) Confidence() float64 {
	return minFloat(float64(c.Score)/ExactScore, 1.0)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
