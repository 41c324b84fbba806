//go:generate go run go.uber.org/mock/mockgen -source=predictor.go -destination=mocks/mock_predictor.go -package=mocks
package fallback

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when no model artifact could be loaded.
var ErrUnavailable = errors.New("statistical fallback unavailable")

// Predictor guesses a department name from raw symptom text.
type Predictor interface {
	Predict(text string) (string, error)
}

// Consult calls p and converts a panic inside the predictor into an error.
func Consult(p Predictor, text string) (label string, err error) {
	defer func() {
		if r := recover(); r != nil {
			label = ""
			err = fmt.Errorf("predictor panic: %v", r)
		}
	}()
	return p.Predict(text)
}
