// Package fallback wraps the optional statistical department predictor that is
// consulted when keyword scoring is not confident.
package fallback

// Capability records whether a fallback predictor exists. It is resolved once at
// construction so callers never probe for the model per request.
type Capability struct {
	predictor Predictor
}

// RuleOnly is the capability of an engine without a model.
func RuleOnly() Capability {
	return Capability{}
}

// RuleWithFallback is the capability of an engine backed by p.
// A nil p degrades to RuleOnly.
func RuleWithFallback(p Predictor) Capability {
	return Capability{predictor: p}
}

// Predictor returns the fallback predictor, if any.
func (c Capability) Predictor() (Predictor, bool) {
	return c.predictor, c.predictor != nil
}

// Available reports whether a predictor is configured.
func (c Capability) Available() bool {
	return c.predictor != nil
}

func (c Capability) String() string {
	if c.predictor == nil {
		return "rule-only"
	}
	return "rule-with-fallback"
}

type versioned interface {
	ModelVersion() string
}

// ModelVersion identifies the model behind the capability for persisted records.
func (c Capability) ModelVersion() string {
	if c.predictor == nil {
		return "rule-only"
	}
	if v, ok := c.predictor.(versioned); ok {
		if version := v.ModelVersion(); version != "" {
			return version
		}
	}
	return "unversioned"
}
