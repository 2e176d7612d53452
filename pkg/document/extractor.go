package document

import (
	"context"
	"path/filepath"
	"strings"
)

// TextRecognizer is the OCR contract the extractor depends on; the concrete
// engine shells out to tesseract.
type TextRecognizer interface {
	Recognize(ctx context.Context, filename string, data []byte) (string, error)
}

// Extractor turns an uploaded document into its plain-text content.
type Extractor struct {
	ocr TextRecognizer
}

// NewExtractor builds an extractor around the given OCR engine.
func NewExtractor(ocr TextRecognizer) *Extractor {
	return &Extractor{ocr: ocr}
}

// Extract returns the text content of an uploaded file. Files named *.pdf are
// parsed as PDFs; everything else is treated as a raster image and OCRed,
// matching the accepted upload types (pdf, png, jpg, jpeg). Any decode or OCR
// failure surfaces as an *UnreadableError.
func (e *Extractor) Extract(ctx context.Context, filename string, data []byte) (string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		text, err := extractPDFText(data)
		if err != nil {
			return "", &UnreadableError{Filename: filename, Err: err}
		}
		return text, nil
	}

	text, err := e.ocr.Recognize(ctx, filename, data)
	if err != nil {
		return "", &UnreadableError{Filename: filename, Err: err}
	}
	return text, nil
}
