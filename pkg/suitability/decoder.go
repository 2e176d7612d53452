package suitability

import (
	"encoding/json"
	"fmt"
	"os"
)

// ClassDecoder maps label indices back to the label strings the model was
// trained against (the exported label-encoder classes).
type ClassDecoder struct {
	classes []string
}

type classDecoderArtifact struct {
	Classes []string `json:"classes"`
}

// NewClassDecoder builds a decoder from an in-memory class list.
func NewClassDecoder(classes []string) *ClassDecoder {
	return &ClassDecoder{classes: classes}
}

// LoadClassDecoder reads a serialized label-encoder artifact from disk.
func LoadClassDecoder(path string) (*ClassDecoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &UnavailableError{Op: "load decoder", Err: err}
	}

	var artifact classDecoderArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, &UnavailableError{Op: "parse decoder", Err: err}
	}
	if len(artifact.Classes) == 0 {
		return nil, &UnavailableError{Op: "parse decoder", Err: fmt.Errorf("empty class list")}
	}

	return &ClassDecoder{classes: artifact.Classes}, nil
}

// Decode returns the label string for a label index.
func (d *ClassDecoder) Decode(labelIndex int) (string, error) {
	if labelIndex < 0 || labelIndex >= len(d.classes) {
		return "", &UnavailableError{
			Op:  "decode",
			Err: fmt.Errorf("label index %d out of range for %d classes", labelIndex, len(d.classes)),
		}
	}
	return d.classes[labelIndex], nil
}
