package artifact

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Vectorizer kinds.
const (
	VectorizerTFIDF   = "tfidf"
	VectorizerHashing = "hashing"
)

// VectorizerSpec describes how text becomes a feature vector.
// tfidf uses Vocabulary and IDF; hashing uses NFeatures buckets.
type VectorizerSpec struct {
	Kind       string         `json:"kind"`
	Vocabulary map[string]int `json:"vocabulary,omitempty"`
	IDF        []float64      `json:"idf,omitempty"`
	NFeatures  int            `json:"n_features,omitempty"`
}

func (v VectorizerSpec) dimension() (int, error) {
	switch v.Kind {
	case VectorizerTFIDF:
		if len(v.Vocabulary) == 0 {
			return 0, fmt.Errorf("%w: empty vocabulary", ErrInvalidArtifact)
		}
		if len(v.IDF) != len(v.Vocabulary) {
			return 0, fmt.Errorf("%w: idf has %d weights for %d terms", ErrInvalidArtifact, len(v.IDF), len(v.Vocabulary))
		}
		for term, idx := range v.Vocabulary {
			if idx < 0 || idx >= len(v.IDF) {
				return 0, fmt.Errorf("%w: term %q index %d out of range", ErrInvalidArtifact, term, idx)
			}
		}
		return len(v.IDF), nil
	case VectorizerHashing:
		if v.NFeatures <= 0 {
			return 0, fmt.Errorf("%w: n_features must be positive", ErrInvalidArtifact)
		}
		return v.NFeatures, nil
	default:
		return 0, fmt.Errorf("%w: unknown vectorizer kind %q", ErrInvalidArtifact, v.Kind)
	}
}

// Transform maps text to an L2-normalized feature vector.
func (v VectorizerSpec) Transform(text string) ([]float64, error) {
	dim, err := v.dimension()
	if err != nil {
		return nil, err
	}
	vec := make([]float64, dim)

	for _, tok := range Tokenize(text) {
		switch v.Kind {
		case VectorizerTFIDF:
			if idx, ok := v.Vocabulary[tok]; ok {
				vec[idx]++
			}
		case VectorizerHashing:
			h := fnv.New32a()
			h.Write([]byte(tok))
			vec[int(h.Sum32()%uint32(dim))]++
		}
	}

	if v.Kind == VectorizerTFIDF {
		for i := range vec {
			vec[i] *= v.IDF[i]
		}
	}
	normalize(vec)
	return vec, nil
}

// Tokenize lowercases text and splits it into word tokens of at least two runes.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_')
	})
	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= 2 {
			out = append(out, f)
		}
	}
	return out
}

func normalize(vec []float64) {
	var sum float64
	for _, x := range vec {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}
