package schema

import (
	"fmt"
	"strings"
)

// Severity is the urgency tier assigned to a case.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// Rank orders severities by clinical urgency.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

// Method records which rule produced a department classification.
type Method string

const (
	MethodAgeOverride    Method = "age_override"
	MethodPediatricRule  Method = "pediatric_rule"
	MethodKeywordScoring Method = "keyword_scoring"
	MethodMLOverride     Method = "ml_override"
	MethodReferRule      Method = "refer_rule"
	MethodNoMatch        Method = "no_match"
)

// Status is the routing outcome of a triage record.
type Status string

const (
	StatusAssigned Status = "ASSIGNED"
	StatusRefer    Status = "REFER"
)

// Gender is the optional patient gender as supplied by the caller.
// The empty value means the gender was not provided.
type Gender string

// IsFemale reports whether the gender value designates a female patient.
func (g Gender) IsFemale() bool {
	switch strings.ToLower(strings.TrimSpace(string(g))) {
	case "f", "female":
		return true
	}
	return false
}

const (
	// CategoryRefer is the medical category of a case routed out of the hospital.
	CategoryRefer = "REFER"
	// NoneValue fills doctor and room fields of referred cases.
	NoneValue = "None"
)

// Room allocations keyed by severity.
const (
	RoomEmergency  = "Emergency / ICU"
	RoomWard       = "General Ward"
	RoomOutpatient = "Outpatient / No Room"
)

// ClassificationResult is the output of the department classifier.
type ClassificationResult struct {
	Department *Department `json:"department,omitempty"`
	Confidence float64     `json:"confidence"`
	Keywords   []string    `json:"keywords"`
	Method     Method      `json:"method"`
}

// DepartmentName returns the department name or "" when none was assigned.
func (r ClassificationResult) DepartmentName() string {
	if r.Department == nil {
		return ""
	}
	return r.Department.String()
}

// Explanation holds the trilingual explanation of a triage decision.
type Explanation struct {
	EN string `json:"explanation_en"`
	KN string `json:"explanation_kn"`
	HI string `json:"explanation_hi"`
}

// Explainability is the explanation block of a triage record.
type Explainability struct {
	KeyKeywords   []string `json:"key_keywords"`
	ExplanationEN string   `json:"explanation_en"`
	ExplanationKN string   `json:"explanation_kn"`
	ExplanationHI string   `json:"explanation_hi"`
}

// Metadata carries diagnostics that are not part of the public record shape.
type Metadata struct {
	Language      string  `json:"detected_language"`
	LanguageRatio float64 `json:"language_ratio"`
	LanguageGuess string  `json:"language_guess,omitempty"`
	Method        Method  `json:"method"`
	Confidence    float64 `json:"confidence"`
}

// Record is the orchestrator output. It is built once per call and never mutated.
type Record struct {
	Symptoms string `json:"-"`
	Age      *int   `json:"-"`
	Gender   Gender `json:"-"`

	MedicalCategory string         `json:"medical_category"`
	Severity        Severity       `json:"severity"`
	AssignedDoctor  string         `json:"assigned_doctor"`
	RoomAllotted    string         `json:"room_allotted"`
	Status          Status         `json:"status"`
	Explainability  Explainability `json:"explainability"`

	Metadata Metadata `json:"-"`
}

// Case is a single triage request.
type Case struct {
	Symptoms string `json:"symptoms" yaml:"symptoms" validate:"required,min=10"`
	Age      *int   `json:"age,omitempty" yaml:"age,omitempty" validate:"omitempty,min=0,max=120"`
	Gender   Gender `json:"gender,omitempty" yaml:"gender,omitempty" validate:"omitempty,oneof=M F Male Female Other male female other"`
	// PatientID is an optional caller identifier, stored but never classified.
	PatientID string `json:"patient_id,omitempty" yaml:"patient_id,omitempty" validate:"omitempty,max=64"`
}

func (c Case) String() string {
	age := "-"
	if c.Age != nil {
		age = fmt.Sprintf("%d", *c.Age)
	}
	return fmt.Sprintf("case(age=%s gender=%q symptoms=%q)", age, string(c.Gender), c.Symptoms)
}

// Language codes returned by the language detector.
const (
	LangEnglish = "en"
	LangKannada = "kn"
	LangHindi   = "hi"
)

// LanguageDetection is the dominant script of an input text.
type LanguageDetection struct {
	Language string  `json:"language"`
	Ratio    float64 `json:"ratio"`
	// Guess is the ISO 639-1 code from statistical detection, informational only.
	Guess           string  `json:"guess,omitempty"`
	GuessConfidence float64 `json:"guess_confidence,omitempty"`
}
