// Package suitability wraps the pre-trained food-suitability model. The model
// is consumed, never trained, here: three serialized artifacts (feature
// encoder vocabulary, linear classifier weights, label classes) are loaded
// once at startup and shared read-only across sessions.
package suitability

import "fmt"

// FeatureVector is a sparse feature representation keyed by feature index.
type FeatureVector map[int]float64

// FeatureEncoder maps raw text to a feature vector.
type FeatureEncoder interface {
	Encode(text string) FeatureVector
}

// Classifier maps a feature vector to a label index.
type Classifier interface {
	Predict(features FeatureVector) (int, error)
}

// LabelDecoder maps a label index back to its label string.
type LabelDecoder interface {
	Decode(labelIndex int) (string, error)
}

// UnavailableError reports that the classifier artifacts failed to load or an
// inference call failed. It is fatal to the single recommendation request but
// never to the process.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("suitability classifier unavailable: %s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
