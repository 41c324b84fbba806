package artifact

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func naiveBayesBundle() *Bundle {
	return &Bundle{
		Version: FormatVersion,
		Name:    "test-nb",
		Vectorizer: VectorizerSpec{
			Kind:       VectorizerTFIDF,
			Vocabulary: map[string]int{"rash": 0, "skin": 1, "heart": 2, "chest": 3},
			IDF:        []float64{1, 1, 1, 1},
		},
		Classifier: ClassifierSpec{
			Kind:          ClassifierMultinomialNB,
			Classes:       []string{"Dermatology", "Cardiology"},
			ClassLogPrior: []float64{math.Log(0.5), math.Log(0.5)},
			FeatureLogProb: [][]float64{
				{math.Log(0.4), math.Log(0.4), math.Log(0.1), math.Log(0.1)},
				{math.Log(0.1), math.Log(0.1), math.Log(0.4), math.Log(0.4)},
			},
		},
	}
}

func TestSaveLoadPredict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := naiveBayesBundle().Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(b.Hash) != 16 {
		t.Fatalf("expected 16 char hash, got %q", b.Hash)
	}
	if b.Features() != 4 {
		t.Fatalf("features = %d, want 4", b.Features())
	}

	tests := map[string]string{
		"Itchy skin rash":          "Dermatology",
		"pressure in chest, heart": "Cardiology",
		"nothing known":            "Dermatology",
	}
	for text, want := range tests {
		got, err := b.Predict(text)
		if err != nil {
			t.Fatalf("predict %q: %v", text, err)
		}
		if got != want {
			t.Fatalf("Predict(%q) = %q, want %q", text, got, want)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidArtifact) {
		t.Fatalf("expected ErrInvalidArtifact, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *Bundle)
	}{
		{name: "version", mutate: func(b *Bundle) { b.Version = 9 }},
		{name: "idf length", mutate: func(b *Bundle) { b.Vectorizer.IDF = []float64{1} }},
		{name: "vocab index", mutate: func(b *Bundle) { b.Vectorizer.Vocabulary["skin"] = 7 }},
		{name: "vectorizer kind", mutate: func(b *Bundle) { b.Vectorizer.Kind = "bag" }},
		{name: "no classes", mutate: func(b *Bundle) { b.Classifier.Classes = nil }},
		{name: "prior length", mutate: func(b *Bundle) { b.Classifier.ClassLogPrior = []float64{0} }},
		{name: "row width", mutate: func(b *Bundle) { b.Classifier.FeatureLogProb[1] = []float64{0, 0} }},
		{name: "classifier kind", mutate: func(b *Bundle) { b.Classifier.Kind = "forest" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := naiveBayesBundle()
			tt.mutate(b)
			if err := b.Validate(); !errors.Is(err, ErrInvalidArtifact) {
				t.Fatalf("expected ErrInvalidArtifact, got %v", err)
			}
		})
	}

	if err := naiveBayesBundle().Validate(); err != nil {
		t.Fatalf("valid bundle rejected: %v", err)
	}
}

func TestHashingLinearBundle(t *testing.T) {
	b := &Bundle{
		Version:    FormatVersion,
		Vectorizer: VectorizerSpec{Kind: VectorizerHashing, NFeatures: 8},
		Classifier: ClassifierSpec{
			Kind:      ClassifierLinear,
			Classes:   []string{"ENT", "Neurology"},
			Coef:      [][]float64{{0, 0, 0, 0, 0, 0, 0, 0}},
			Intercept: []float64{1},
		},
	}
	got, err := b.Predict("ear pain")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if got != "Neurology" {
		t.Fatalf("positive decision function must pick the second class, got %q", got)
	}

	b.Classifier.Intercept = []float64{-1}
	got, err = b.Predict("ear pain")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if got != "ENT" {
		t.Fatalf("negative decision function must pick the first class, got %q", got)
	}
}

func TestTransformNormalized(t *testing.T) {
	v := VectorizerSpec{Kind: VectorizerHashing, NFeatures: 16}
	x, err := v.Transform("fever fever cough")
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	var sum float64
	for _, f := range x {
		sum += f * f
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("expected unit norm, got %v", sum)
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Chest-pain, a 2nd BP reading!")
	want := []string{"chest", "pain", "2nd", "bp", "reading"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}
