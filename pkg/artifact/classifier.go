package artifact

import "fmt"

// Classifier kinds.
const (
	ClassifierMultinomialNB = "multinomial_nb"
	ClassifierLinear        = "linear"
)

// ClassifierSpec holds trained weights.
// multinomial_nb uses ClassLogPrior and FeatureLogProb; linear uses Coef and Intercept.
type ClassifierSpec struct {
	Kind           string      `json:"kind"`
	Classes        []string    `json:"classes"`
	ClassLogPrior  []float64   `json:"class_log_prior,omitempty"`
	FeatureLogProb [][]float64 `json:"feature_log_prob,omitempty"`
	Coef           [][]float64 `json:"coef,omitempty"`
	Intercept      []float64   `json:"intercept,omitempty"`
}

func (c ClassifierSpec) validate(dim int) error {
	if len(c.Classes) == 0 {
		return fmt.Errorf("%w: no classes", ErrInvalidArtifact)
	}
	switch c.Kind {
	case ClassifierMultinomialNB:
		if len(c.ClassLogPrior) != len(c.Classes) || len(c.FeatureLogProb) != len(c.Classes) {
			return fmt.Errorf("%w: naive bayes weights do not match %d classes", ErrInvalidArtifact, len(c.Classes))
		}
		return checkRows(c.FeatureLogProb, dim)
	case ClassifierLinear:
		rows := len(c.Classes)
		if rows == 2 && len(c.Coef) == 1 {
			rows = 1
		}
		if len(c.Coef) != rows || len(c.Intercept) != rows {
			return fmt.Errorf("%w: linear weights do not match %d classes", ErrInvalidArtifact, len(c.Classes))
		}
		return checkRows(c.Coef, dim)
	default:
		return fmt.Errorf("%w: unknown classifier kind %q", ErrInvalidArtifact, c.Kind)
	}
}

func checkRows(rows [][]float64, dim int) error {
	for i, row := range rows {
		if len(row) != dim {
			return fmt.Errorf("%w: row %d has %d features, vectorizer produces %d", ErrInvalidArtifact, i, len(row), dim)
		}
	}
	return nil
}

// Predict returns the highest scoring class for a feature vector.
// Ties resolve to the earlier class.
func (c ClassifierSpec) Predict(x []float64) (string, error) {
	if err := c.validate(len(x)); err != nil {
		return "", err
	}

	switch c.Kind {
	case ClassifierMultinomialNB:
		scores := make([]float64, len(c.Classes))
		for k := range c.Classes {
			scores[k] = c.ClassLogPrior[k] + dot(c.FeatureLogProb[k], x)
		}
		return c.Classes[argmax(scores)], nil
	default:
		if len(c.Coef) == 1 {
			if dot(c.Coef[0], x)+c.Intercept[0] > 0 {
				return c.Classes[1], nil
			}
			return c.Classes[0], nil
		}
		scores := make([]float64, len(c.Classes))
		for k := range c.Classes {
			scores[k] = dot(c.Coef[k], x) + c.Intercept[k]
		}
		return c.Classes[argmax(scores)], nil
	}
}

func dot(w, x []float64) float64 {
	var s float64
	for i := range w {
		s += w[i] * x[i]
	}
	return s
}

func argmax(xs []float64) int {
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[best] {
			best = i
		}
	}
	return best
}
