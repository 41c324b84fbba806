package explain

import (
	"strings"
	"testing"

	"github.com/zen-systems/medtriage/pkg/schema"
)

func TestBuildHigh(t *testing.T) {
	got := Build("Orthopedics", schema.SeverityHigh, []string{"accident", "leg", "cannot walk"})

	want := "Traumatic injury with suspected bone fracture or joint dislocation detected. " +
		"Rule #2: Any accident/trauma/fracture requires HIGH severity emergency protocol " +
		"Detected indicators: accident, leg, cannot walk."
	if got.EN != want {
		t.Fatalf("EN = %q\nwant  %q", got.EN, want)
	}
	if !strings.HasSuffix(got.HI, "पहचाने गए संकेत: accident, leg, cannot walk।") {
		t.Fatalf("unexpected HI suffix: %q", got.HI)
	}
	if !strings.Contains(got.KN, "ನಿಯಮ #2") {
		t.Fatalf("KN missing high severity rule: %q", got.KN)
	}
}

func TestBuildMedium(t *testing.T) {
	got := Build("Pediatrics", schema.SeverityMedium, []string{"pediatric_rule"})
	want := "Pediatric patient (age <14) with age-specific medical condition" +
		" Moderate symptoms affecting daily activities require observation." +
		" Detected indicators: pediatric_rule."
	if got.EN != want {
		t.Fatalf("EN = %q\nwant  %q", got.EN, want)
	}
}

func TestBuildLowWithoutKeywords(t *testing.T) {
	got := Build("Dermatology", schema.SeverityLow, nil)
	if got.EN != "Dermatological condition involving skin, hair, or nails" {
		t.Fatalf("unexpected EN %q", got.EN)
	}
	if strings.Contains(got.KN, "ಸೂಚಕಗಳು") || strings.Contains(got.HI, "संकेत") {
		t.Fatalf("no keyword clause expected: %+v", got)
	}
}

func TestBuildRefer(t *testing.T) {
	got := Build(schema.CategoryRefer, schema.SeverityLow, []string{"vision", "cataract"})
	want := "Specialized care not available in current hospital Detected indicators: vision, cataract."
	if got.EN != want {
		t.Fatalf("EN = %q\nwant  %q", got.EN, want)
	}

	high := Build(schema.CategoryRefer, schema.SeverityHigh, nil)
	if !strings.HasSuffix(high.EN, ". Cannot assess severity - specialist unavailable") {
		t.Fatalf("unexpected refer HIGH text %q", high.EN)
	}
}

func TestUnknownCategoryUsesGeneralMedicine(t *testing.T) {
	unknown := Build("Oncology", schema.SeverityLow, nil)
	general := Build("General Medicine", schema.SeverityLow, nil)
	if unknown != general {
		t.Fatalf("unknown category should render General Medicine, got %+v", unknown)
	}
}

func TestKeywordsTruncated(t *testing.T) {
	got := Build("ENT", schema.SeverityLow, []string{"a1", "a2", "a3", "a4", "a5", "a6"})
	if strings.Contains(got.EN, "a6") {
		t.Fatalf("expected at most 5 keywords, got %q", got.EN)
	}
	if !strings.HasSuffix(got.EN, "a1, a2, a3, a4, a5.") {
		t.Fatalf("unexpected keyword rendering %q", got.EN)
	}
}

func TestEveryDepartmentHasTemplate(t *testing.T) {
	for _, d := range schema.Departments() {
		if _, ok := templates[d]; !ok {
			t.Fatalf("missing template for %s", d)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	kw := []string{"fever", "weakness"}
	a := Build("General Medicine", schema.SeverityMedium, kw)
	b := Build("General Medicine", schema.SeverityMedium, kw)
	if a != b {
		t.Fatalf("Build is not deterministic")
	}
}
