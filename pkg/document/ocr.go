package document

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// OCREngine runs text recognition on raster images via the tesseract binary.
type OCREngine struct {
	binaryPath string
}

// NewOCREngine locates tesseract on PATH, falling back to the bare command
// name so availability is decided at call time.
func NewOCREngine() *OCREngine {
	path, _ := exec.LookPath("tesseract")
	if path == "" {
		path = "tesseract"
	}
	return &OCREngine{binaryPath: path}
}

// IsAvailable reports whether the OCR binary can be invoked.
func (o *OCREngine) IsAvailable() bool {
	return exec.Command(o.binaryPath, "--version").Run() == nil
}

// Recognize writes the image to a temp file and returns tesseract's raw text
// output for it.
func (o *OCREngine) Recognize(ctx context.Context, filename string, data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "ocr-*"+filepath.Ext(filename))
	if err != nil {
		return "", fmt.Errorf("stage image for OCR: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("stage image for OCR: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("stage image for OCR: %w", err)
	}

	output, err := exec.CommandContext(ctx, o.binaryPath, tmp.Name(), "stdout", "-l", "eng").Output()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}

	return string(output), nil
}
