package router

import "testing"

func TestContainsTrigger(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		trigger string
		want    bool
	}{
		{name: "whole word", text: "pain in the ear", trigger: "ear", want: true},
		{name: "prefix of word", text: "earache", trigger: "ear", want: false},
		{name: "inside word", text: "hearing", trigger: "ear", want: false},
		{name: "later occurrence", text: "hearing and ear pain", trigger: "ear", want: true},
		{name: "phrase", text: "severe chest pain today", trigger: "chest pain", want: true},
		{name: "punctuation", text: "leg, arm.", trigger: "arm", want: true},
		{name: "underscore joins", text: "ear_pain", trigger: "ear", want: false},
		{name: "digit joins", text: "bp2", trigger: "bp", want: false},
		{name: "non-latin neighbour", text: "कानear", trigger: "ear", want: false},
		{name: "missing", text: "nothing", trigger: "ear", want: false},
		{name: "empty trigger", text: "anything", trigger: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := containsTrigger(tt.text, tt.trigger); got != tt.want {
				t.Fatalf("containsTrigger(%q, %q) = %v, want %v", tt.text, tt.trigger, got, tt.want)
			}
		})
	}
}

func TestIsBoundedKeyword(t *testing.T) {
	tests := map[string]bool{
		"ear":        true,
		"chest pain": true,
		"911":        true,
		"पेट":        false,
		"ಹೊಟ್ಟೆ":     false,
		"--":         false,
	}
	for kw, want := range tests {
		if got := isBoundedKeyword(kw); got != want {
			t.Fatalf("isBoundedKeyword(%q) = %v, want %v", kw, got, want)
		}
	}
}

func TestRuleSetScoreTableOrder(t *testing.T) {
	rs := NewRuleSet()
	cands := rs.Score("skin rash with chest pain")
	if len(cands) < 2 {
		t.Fatalf("expected at least two candidates, got %d", len(cands))
	}
	for i := 1; i < len(cands); i++ {
		if cands[i].Department <= cands[i-1].Department {
			t.Fatalf("candidates not in table order: %v", cands)
		}
	}
}

func TestNonLatinKeywordCountsAsExact(t *testing.T) {
	rs := NewRuleSet()
	cands := rs.Score("मुझे त्वचा पर चकत्ते हैं")
	if len(cands) != 1 {
		t.Fatalf("expected a single candidate, got %+v", cands)
	}
	if cands[0].Score != 2*ExactScore {
		t.Fatalf("score = %d, want %d", cands[0].Score, 2*ExactScore)
	}
}
