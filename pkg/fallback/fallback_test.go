package fallback

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zen-systems/medtriage/pkg/artifact"
	"github.com/zen-systems/medtriage/pkg/fallback/mocks"
)

func writeBundle(t *testing.T) string {
	t.Helper()
	b := &artifact.Bundle{
		Version: artifact.FormatVersion,
		Vectorizer: artifact.VectorizerSpec{
			Kind:       artifact.VectorizerTFIDF,
			Vocabulary: map[string]int{"rash": 0, "heart": 1},
			IDF:        []float64{1, 1},
		},
		Classifier: artifact.ClassifierSpec{
			Kind:          artifact.ClassifierMultinomialNB,
			Classes:       []string{"Dermatology", "Cardiology"},
			ClassLogPrior: []float64{math.Log(0.5), math.Log(0.5)},
			FeatureLogProb: [][]float64{
				{math.Log(0.9), math.Log(0.1)},
				{math.Log(0.1), math.Log(0.9)},
			},
		},
	}
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, b.Save(path))
	return path
}

func TestResolve(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	t.Run("Should be rule-only without a path", func(t *testing.T) {
		require.False(t, Resolve("", false, log).Available())
	})

	t.Run("Should be rule-only when the artifact is missing", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.json")
		require.False(t, Resolve(missing, false, log).Available())
		require.False(t, Resolve(missing, true, log).Available())
	})

	t.Run("Should be rule-only when the artifact is corrupt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))
		require.False(t, Resolve(path, false, log).Available())
	})

	t.Run("Should load eagerly", func(t *testing.T) {
		capability := Resolve(writeBundle(t), false, log)
		p, ok := capability.Predictor()
		require.True(t, ok)
		label, err := p.Predict("red rash")
		require.NoError(t, err)
		require.Equal(t, "Dermatology", label)
	})

	t.Run("Should defer loading when lazy", func(t *testing.T) {
		capability := Resolve(writeBundle(t), true, log)
		p, ok := capability.Predictor()
		require.True(t, ok)
		lazy, ok := p.(*LazyPredictor)
		require.True(t, ok)
		label, err := lazy.Predict("heart racing")
		require.NoError(t, err)
		require.Equal(t, "Cardiology", label)
	})
}

func TestLazyPredictorConcurrentFirstUse(t *testing.T) {
	req := require.New(t)
	p := NewLazyPredictor(writeBundle(t), nil)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			label, err := p.Predict("rash")
			if err == nil {
				results[i] = label
			}
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		req.Equal("Dermatology", r)
	}
	req.True(p.Loaded())
}

func TestLazyPredictorUnavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0644))

	p := NewLazyPredictor(path, nil)
	_, err := p.Predict("rash")
	require.True(t, errors.Is(err, ErrUnavailable))
	require.False(t, p.Loaded())

	// The failure is remembered; the file is not read again.
	require.NoError(t, os.Remove(path))
	_, err = p.Predict("rash")
	require.True(t, errors.Is(err, ErrUnavailable))
}

type panickingPredictor struct{}

func (panickingPredictor) Predict(string) (string, error) { panic("boom") }

func TestConsult(t *testing.T) {
	req := require.New(t)

	label, err := Consult(panickingPredictor{}, "anything")
	req.Error(err)
	req.Empty(label)

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockPredictor(ctrl)
	mock.EXPECT().Predict("skin rash").Return("Dermatology", nil).Times(1)

	label, err = Consult(mock, "skin rash")
	req.NoError(err)
	req.Equal("Dermatology", label)
}

func TestCapability(t *testing.T) {
	req := require.New(t)
	req.Equal("rule-only", RuleOnly().String())
	req.False(RuleWithFallback(nil).Available())

	ctrl := gomock.NewController(t)
	c := RuleWithFallback(mocks.NewMockPredictor(ctrl))
	req.True(c.Available())
	req.Equal("rule-with-fallback", c.String())
}

func TestModelVersion(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	path := writeBundle(t)

	req.Equal("rule-only", RuleOnly().ModelVersion())

	eager := Resolve(path, false, log)
	req.Len(eager.ModelVersion(), 16)

	lazy := NewLazyPredictor(path, log)
	req.Empty(lazy.ModelVersion())
	req.True(lazy.Loaded())
	req.Equal(eager.ModelVersion(), RuleWithFallback(lazy).ModelVersion())

	ctrl := gomock.NewController(t)
	req.Equal("unversioned", RuleWithFallback(mocks.NewMockPredictor(ctrl)).ModelVersion())
}
