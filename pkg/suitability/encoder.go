package suitability

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"
)

// tokenPattern matches word tokens of two or more characters, the same
// tokenization the vectorizer was trained with.
var tokenPattern = regexp.MustCompile(`\w\w+`)

// CountEncoder is a bag-of-words feature encoder backed by a fixed vocabulary
// exported from the training pipeline. Tokens outside the vocabulary are
// ignored.
type CountEncoder struct {
	vocabulary map[string]int
}

type countEncoderArtifact struct {
	Vocabulary map[string]int `json:"vocabulary"`
}

// NewCountEncoder builds an encoder from an in-memory vocabulary. Mainly
// useful for tests; production loads the serialized artifact.
func NewCountEncoder(vocabulary map[string]int) *CountEncoder {
	return &CountEncoder{vocabulary: vocabulary}
}

// LoadCountEncoder reads a serialized vectorizer artifact from disk.
func LoadCountEncoder(path string) (*CountEncoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &UnavailableError{Op: "load encoder", Err: err}
	}

	var artifact countEncoderArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, &UnavailableError{Op: "parse encoder", Err: err}
	}

	return &CountEncoder{vocabulary: artifact.Vocabulary}, nil
}

// Encode lowercases text, tokenizes it and counts vocabulary hits.
func (e *CountEncoder) Encode(text string) FeatureVector {
	features := make(FeatureVector)
	for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if idx, ok := e.vocabulary[token]; ok {
			features[idx]++
		}
	}
	return features
}
