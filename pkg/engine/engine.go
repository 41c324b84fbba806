// Package engine composes severity, department routing, the statistical fallback
// and explanation rendering into a single triage decision.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/zen-systems/medtriage/pkg/explain"
	"github.com/zen-systems/medtriage/pkg/fallback"
	"github.com/zen-systems/medtriage/pkg/language"
	"github.com/zen-systems/medtriage/pkg/router"
	"github.com/zen-systems/medtriage/pkg/schema"
	"github.com/zen-systems/medtriage/pkg/severity"
)

// KeywordFallbackMarker is appended to keywords when the fallback decided the department,
// and used alone when a consulted fallback left a keyword-less result untouched.
const KeywordFallbackMarker = "ml_predicted"

// Engine is the triage orchestrator. Build one per process and share it; it holds
// no per-call state.
type Engine struct {
	severity   *severity.Classifier
	router     *router.Classifier
	capability fallback.Capability

	threshold          float64
	fallbackConfidence float64
	workers            int

	log    *slog.Logger
	detect func(string) schema.LanguageDetection
}

// New builds an engine. Without WithCapability it runs rule-only.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		severity:           severity.NewClassifier(),
		capability:         fallback.RuleOnly(),
		threshold:          DefaultThreshold,
		fallbackConfidence: DefaultFallbackConfidence,
		workers:            DefaultWorkers,
		log:                slog.Default(),
		detect:             language.Detect,
	}
	for _, opt := range opts {
		opt(e)
	}

	r, err := router.NewClassifier(router.WithLogger(e.log))
	if err != nil {
		return nil, fmt.Errorf("build department classifier: %w", err)
	}
	e.router = r
	return e, nil
}

// Capability reports the fallback capability the engine was built with.
func (e *Engine) Capability() fallback.Capability {
	return e.capability
}

// Candidates exposes the keyword scoring breakdown for a symptom text.
func (e *Engine) Candidates(symptoms string) []router.Candidate {
	return e.router.Candidates(symptoms)
}

// Analyze triages one case. It never panics: an internal fault yields FallbackRecord.
func (e *Engine) Analyze(symptoms string, age *int, gender schema.Gender) (rec schema.Record) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("Recovered from triage panic", "panic", r)
			rec = FallbackRecord(symptoms, age, gender)
		}
	}()

	verdict := e.severity.Evaluate(symptoms, age)
	result := e.router.Classify(symptoms, age, gender)
	result = e.applyFallback(symptoms, result)

	rec = schema.Record{
		Symptoms:        symptoms,
		Age:             age,
		Gender:          gender,
		MedicalCategory: schema.CategoryRefer,
		Severity:        verdict.Severity,
		AssignedDoctor:  schema.NoneValue,
		RoomAllotted:    schema.NoneValue,
		Status:          schema.StatusRefer,
	}
	if result.Department != nil && result.Department.Valid() {
		name := result.Department.String()
		rec.MedicalCategory = name
		rec.AssignedDoctor = name
		rec.RoomAllotted = roomFor(verdict.Severity)
		rec.Status = schema.StatusAssigned
	}

	keywords := result.Keywords
	if len(keywords) > explain.MaxKeywords {
		keywords = keywords[:explain.MaxKeywords]
	}
	explanation := explain.Build(rec.MedicalCategory, verdict.Severity, result.Keywords)
	rec.Explainability = schema.Explainability{
		KeyKeywords:   append(make([]string, 0, len(keywords)), keywords...),
		ExplanationEN: explanation.EN,
		ExplanationKN: explanation.KN,
		ExplanationHI: explanation.HI,
	}

	lang := e.detect(symptoms)
	rec.Metadata = schema.Metadata{
		Language:      lang.Language,
		LanguageRatio: lang.Ratio,
		LanguageGuess: lang.Guess,
		Method:        result.Method,
		Confidence:    result.Confidence,
	}

	e.log.Debug("Triage decided",
		"category", rec.MedicalCategory,
		"severity", rec.Severity,
		"severity_rule", verdict.Rule,
		"method", result.Method,
		"confidence", result.Confidence)
	return rec
}

// applyFallback consults the statistical predictor when rule confidence is low.
func (e *Engine) applyFallback(symptoms string, result schema.ClassificationResult) schema.ClassificationResult {
	if result.Method == schema.MethodReferRule || result.Confidence >= e.threshold {
		return result
	}
	p, ok := e.capability.Predictor()
	if !ok {
		return result
	}

	label, err := fallback.Consult(p, symptoms)
	if err != nil {
		if errors.Is(err, fallback.ErrUnavailable) {
			e.log.Debug("Fallback unavailable", "error", err)
			return result
		}
		e.log.Warn("Fallback prediction failed, keeping rule result", "error", err)
		label = ""
	}

	if dept, valid := schema.ParseDepartment(label); valid {
		if result.Department == nil || *result.Department != dept {
			e.log.Debug("Fallback override accepted",
				"from", result.DepartmentName(),
				"to", dept.String(),
				"rule_confidence", result.Confidence)
			keywords := make([]string, 0, len(result.Keywords)+1)
			keywords = append(keywords, result.Keywords...)
			return schema.ClassificationResult{
				Department: dept.Ptr(),
				Confidence: e.fallbackConfidence,
				Keywords:   append(keywords, KeywordFallbackMarker),
				Method:     schema.MethodMLOverride,
			}
		}
	} else if label != "" {
		e.log.Debug("Fallback predicted an unknown department", "label", label)
	}

	if len(result.Keywords) == 0 {
		result.Keywords = []string{KeywordFallbackMarker}
	}
	return result
}

// BatchAnalyze triages cases independently with bounded parallelism.
// Results keep the input order. A cancelled ctx stops unstarted cases.
func (e *Engine) BatchAnalyze(ctx context.Context, cases []schema.Case) ([]schema.Record, error) {
	records := make([]schema.Record, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, c := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records[i] = e.Analyze(c.Symptoms, c.Age, c.Gender)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func roomFor(s schema.Severity) string {
	switch s {
	case schema.SeverityHigh:
		return schema.RoomEmergency
	case schema.SeverityMedium:
		return schema.RoomWard
	default:
		return schema.RoomOutpatient
	}
}
