package fallback

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/zen-systems/medtriage/pkg/artifact"
)

// Resolve builds the fallback capability for the artifact at path.
// A missing or unreadable artifact is not an error: the engine runs rule-only.
// With lazy set, the artifact is read on first prediction instead of now.
func Resolve(path string, lazy bool, log *slog.Logger) Capability {
	if log == nil {
		log = slog.Default()
	}
	if path == "" {
		return RuleOnly()
	}

	if lazy {
		if _, err := os.Stat(path); err != nil {
			log.Info("Model artifact not found, running rule-only", "path", path)
			return RuleOnly()
		}
		return RuleWithFallback(NewLazyPredictor(path, log))
	}

	bundle, err := artifact.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info("Model artifact not found, running rule-only", "path", path)
		} else {
			log.Warn("Could not load model artifact, running rule-only", "path", path, "error", err)
		}
		return RuleOnly()
	}
	log.Info("Model artifact loaded", "path", path, "hash", bundle.Hash, "classes", len(bundle.Classifier.Classes))
	return RuleWithFallback(bundle)
}

// LazyPredictor loads its artifact exactly once, on first use, even under
// concurrent callers.
type LazyPredictor struct {
	path string
	log  *slog.Logger

	once   sync.Once
	bundle *artifact.Bundle
	err    error

	mu      sync.Mutex
	version string
}

// NewLazyPredictor returns a predictor that defers loading path until Predict.
func NewLazyPredictor(path string, log *slog.Logger) *LazyPredictor {
	if log == nil {
		log = slog.Default()
	}
	return &LazyPredictor{path: path, log: log}
}

// Predict loads the artifact if needed and classifies text.
func (p *LazyPredictor) Predict(text string) (string, error) {
	bundle, err := p.load()
	if err != nil {
		return "", err
	}
	return bundle.Predict(text)
}

// Loaded reports whether the artifact has been read successfully.
func (p *LazyPredictor) Loaded() bool {
	bundle, err := p.load()
	return err == nil && bundle != nil
}

func (p *LazyPredictor) load() (*artifact.Bundle, error) {
	p.once.Do(func() {
		p.bundle, p.err = artifact.Load(p.path)
		if p.err != nil {
			p.log.Warn("Lazy model load failed, fallback disabled", "path", p.path, "error", p.err)
			p.err = fmt.Errorf("%w: %v", ErrUnavailable, p.err)
			return
		}
		p.log.Info("Model artifact loaded", "path", p.path, "hash", p.bundle.Hash)
		p.mu.Lock()
		p.version = p.bundle.Hash
		p.mu.Unlock()
	})
	return p.bundle, p.err
}

// ModelVersion returns the artifact hash once loaded, without forcing a load.
func (p *LazyPredictor) ModelVersion() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.version
}
