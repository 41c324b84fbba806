// Package artifact loads the offline-trained department model bundle consumed by
// the statistical fallback. Bundles are read-only once loaded.
package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrInvalidArtifact reports a bundle whose shapes do not line up.
var ErrInvalidArtifact = errors.New("invalid model artifact")

// FormatVersion is the bundle layout understood by this package.
const FormatVersion = 1

// Bundle pairs a text vectorizer with a classifier trained on its features.
type Bundle struct {
	Version    int            `json:"version"`
	Name       string         `json:"name,omitempty"`
	TrainedAt  time.Time      `json:"trained_at,omitempty"`
	Vectorizer VectorizerSpec `json:"vectorizer"`
	Classifier ClassifierSpec `json:"classifier"`

	// Hash is a short content digest of the file the bundle was loaded from.
	Hash string `json:"-"`
	Path string `json:"-"`
}

// Load reads and validates a bundle from path. A missing file yields an error
// matching os.ErrNotExist.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidArtifact, path, err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.Hash = computeHash(data)
	b.Path = path
	return &b, nil
}

// Save writes the bundle to path as indented JSON.
func (b *Bundle) Save(path string) error {
	if err := b.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write model artifact: %w", err)
	}
	b.Hash = computeHash(data)
	b.Path = path
	return nil
}

// Validate checks that vectorizer and classifier dimensions agree.
func (b *Bundle) Validate() error {
	if b.Version != FormatVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidArtifact, b.Version)
	}
	dim, err := b.Vectorizer.dimension()
	if err != nil {
		return err
	}
	return b.Classifier.validate(dim)
}

// Features returns the vectorizer output dimension.
func (b *Bundle) Features() int {
	dim, _ := b.Vectorizer.dimension()
	return dim
}

// Predict returns the class label with the highest score for text.
func (b *Bundle) Predict(text string) (string, error) {
	x, err := b.Vectorizer.Transform(text)
	if err != nil {
		return "", err
	}
	return b.Classifier.Predict(x)
}

func computeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}

// ModelVersion identifies the loaded bundle by name and content hash.
func (b *Bundle) ModelVersion() string {
	if b.Name == "" {
		return b.Hash
	}
	return b.Name + "@" + b.Hash
}
