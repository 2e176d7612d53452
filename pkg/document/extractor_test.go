package document

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubRecognizer struct {
	text string
	err  error
	seen string
}

func (s *stubRecognizer) Recognize(_ context.Context, filename string, _ []byte) (string, error) {
	s.seen = filename
	return s.text, s.err
}

func TestExtractRoutesImagesToOCR(t *testing.T) {
	ocr := &stubRecognizer{text: "Rice\nDal"}
	e := NewExtractor(ocr)

	got, err := e.Extract(context.Background(), "menu.png", []byte{0x89})

	assert.NoError(t, err)
	assert.Equal(t, "Rice\nDal", got)
	assert.Equal(t, "menu.png", ocr.seen)
}

func TestExtractWrapsOCRFailure(t *testing.T) {
	ocr := &stubRecognizer{err: errors.New("tesseract exited 1")}
	e := NewExtractor(ocr)

	_, err := e.Extract(context.Background(), "menu.jpg", []byte{0x01})

	var unreadable *UnreadableError
	assert.True(t, errors.As(err, &unreadable))
	assert.Equal(t, "menu.jpg", unreadable.Filename)
}

func TestExtractCorruptPDF(t *testing.T) {
	e := NewExtractor(&stubRecognizer{})

	_, err := e.Extract(context.Background(), "report.PDF", []byte("not a pdf"))

	var unreadable *UnreadableError
	assert.True(t, errors.As(err, &unreadable))
	assert.Equal(t, "report.PDF", unreadable.Filename)
}
