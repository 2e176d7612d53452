package suitability

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testPredictor builds a two-class model over a tiny vocabulary where any
// text containing "cake" predicts class 1 ("No") and everything else
// class 0 ("Yes").
func testPredictor(t *testing.T) *Predictor {
	t.Helper()

	encoder := NewCountEncoder(map[string]int{
		"rice": 0,
		"cake": 1,
		"for":  2,
	})
	classifier, err := NewLinearClassifier(
		[][]float64{
			{0.5, -2.0, 0.1},
			{-0.5, 2.0, -0.1},
		},
		[]float64{0.2, -0.2},
	)
	assert.NoError(t, err)
	decoder := NewClassDecoder([]string{"Yes", "No"})

	return NewPredictor(encoder, classifier, decoder)
}

func TestPredictorSuitable(t *testing.T) {
	p := testPredictor(t)

	ok, err := p.Suitable("Rice", "Diabetes")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Suitable("Cake", "Diabetes")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCountEncoderTokenizes(t *testing.T) {
	encoder := NewCountEncoder(map[string]int{"rice": 0, "dal": 1})

	got := encoder.Encode("Rice rice, dal! x")

	// Single-character tokens are ignored by the token pattern.
	assert.Equal(t, FeatureVector{0: 2, 1: 1}, got)
}

func TestLinearClassifierArgmax(t *testing.T) {
	classifier, err := NewLinearClassifier(
		[][]float64{{1, 0}, {0, 1}},
		[]float64{0, 0},
	)
	assert.NoError(t, err)

	idx, err := classifier.Predict(FeatureVector{1: 3})
	assert.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestLinearClassifierRejectsShapeMismatch(t *testing.T) {
	_, err := NewLinearClassifier([][]float64{{1, 0}}, []float64{0, 0})

	var unavailable *UnavailableError
	assert.True(t, errors.As(err, &unavailable))
}

func TestClassDecoderRange(t *testing.T) {
	decoder := NewClassDecoder([]string{"Yes", "No"})

	label, err := decoder.Decode(0)
	assert.NoError(t, err)
	assert.Equal(t, "Yes", label)

	_, err = decoder.Decode(5)
	var unavailable *UnavailableError
	assert.True(t, errors.As(err, &unavailable))
}

func TestLoadPredictorFromArtifacts(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	encoderPath := write("vectorizer.json", `{"vocabulary":{"rice":0,"cake":1,"for":2}}`)
	classifierPath := write("model.json", `{"coefficients":[[0.5,-2.0,0.1],[-0.5,2.0,-0.1]],"intercepts":[0.2,-0.2]}`)
	decoderPath := write("labels.json", `{"classes":["Yes","No"]}`)

	p, err := LoadPredictor(encoderPath, classifierPath, decoderPath)
	assert.NoError(t, err)

	ok, err := p.Suitable("Rice", "Diabetes")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestLoadPredictorMissingArtifact(t *testing.T) {
	_, err := LoadPredictor("nope.json", "nope.json", "nope.json")

	var unavailable *UnavailableError
	assert.True(t, errors.As(err, &unavailable))
}
