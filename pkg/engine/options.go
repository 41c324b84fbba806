package engine

import (
	"log/slog"

	"github.com/zen-systems/medtriage/pkg/fallback"
)

// Defaults applied by New.
const (
	DefaultThreshold          = 0.6
	DefaultFallbackConfidence = 0.75
	DefaultWorkers            = 4
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithCapability sets the statistical fallback capability.
func WithCapability(c fallback.Capability) Option {
	return func(e *Engine) {
		e.capability = c
	}
}

// WithThreshold sets the rule confidence below which the fallback is consulted.
func WithThreshold(threshold float64) Option {
	return func(e *Engine) {
		if threshold > 0 && threshold <= 1 {
			e.threshold = threshold
		}
	}
}

// WithFallbackConfidence sets the confidence reported for a fallback override.
func WithFallbackConfidence(confidence float64) Option {
	return func(e *Engine) {
		if confidence > 0 && confidence <= 1 {
			e.fallbackConfidence = confidence
		}
	}
}

// WithWorkers bounds the parallelism of BatchAnalyze.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}
