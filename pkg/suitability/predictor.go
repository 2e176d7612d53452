package suitability

import "fmt"

// SuitableLabel is the one decoded value that means "suitable"; every other
// label is treated as not suitable.
const SuitableLabel = "Yes"

// Predictor answers the binary suitability question for a (food, condition)
// pair by running the encoder, classifier and decoder in sequence. It is a
// pure function of its inputs and safe for concurrent use.
type Predictor struct {
	encoder    FeatureEncoder
	classifier Classifier
	decoder    LabelDecoder
}

// NewPredictor wires the three model artifacts together.
func NewPredictor(encoder FeatureEncoder, classifier Classifier, decoder LabelDecoder) *Predictor {
	return &Predictor{
		encoder:    encoder,
		classifier: classifier,
		decoder:    decoder,
	}
}

// LoadPredictor loads all three artifacts from their configured paths.
func LoadPredictor(encoderPath, classifierPath, decoderPath string) (*Predictor, error) {
	encoder, err := LoadCountEncoder(encoderPath)
	if err != nil {
		return nil, err
	}
	classifier, err := LoadLinearClassifier(classifierPath)
	if err != nil {
		return nil, err
	}
	decoder, err := LoadClassDecoder(decoderPath)
	if err != nil {
		return nil, err
	}
	return NewPredictor(encoder, classifier, decoder), nil
}

// Suitable reports whether the model deems food suitable for condition.
func (p *Predictor) Suitable(food, condition string) (bool, error) {
	features := p.encoder.Encode(fmt.Sprintf("%s for %s", food, condition))

	labelIndex, err := p.classifier.Predict(features)
	if err != nil {
		return false, err
	}

	label, err := p.decoder.Decode(labelIndex)
	if err != nil {
		return false, err
	}

	return label == SuitableLabel, nil
}
