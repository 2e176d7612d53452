package suitability

import (
	"encoding/json"
	"fmt"
	"os"
)

// LinearClassifier scores a feature vector against one coefficient row per
// label and returns the argmax label index. Weights are immutable after load.
type LinearClassifier struct {
	coefficients [][]float64
	intercepts   []float64
}

type linearClassifierArtifact struct {
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

// NewLinearClassifier builds a classifier from in-memory weights.
func NewLinearClassifier(coefficients [][]float64, intercepts []float64) (*LinearClassifier, error) {
	if len(coefficients) == 0 || len(coefficients) != len(intercepts) {
		return nil, &UnavailableError{
			Op:  "init classifier",
			Err: fmt.Errorf("weight shape mismatch: %d coefficient rows, %d intercepts", len(coefficients), len(intercepts)),
		}
	}
	return &LinearClassifier{coefficients: coefficients, intercepts: intercepts}, nil
}

// LoadLinearClassifier reads a serialized model artifact from disk.
func LoadLinearClassifier(path string) (*LinearClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &UnavailableError{Op: "load classifier", Err: err}
	}

	var artifact linearClassifierArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, &UnavailableError{Op: "parse classifier", Err: err}
	}

	return NewLinearClassifier(artifact.Coefficients, artifact.Intercepts)
}

// Predict returns the index of the highest-scoring label.
func (c *LinearClassifier) Predict(features FeatureVector) (int, error) {
	best := 0
	bestScore := 0.0
	for label, row := range c.coefficients {
		score := c.intercepts[label]
		for idx, value := range features {
			if idx < 0 || idx >= len(row) {
				return 0, &UnavailableError{
					Op:  "predict",
					Err: fmt.Errorf("feature index %d out of range for %d model features", idx, len(row)),
				}
			}
			score += row[idx] * value
		}
		if label == 0 || score > bestScore {
			bestScore = score
			best = label
		}
	}
	return best, nil
}
