// Package document extracts plain text from uploaded medical reports and menu
// images. PDFs are parsed page-in-order with embedded-text extraction; raster
// images go through the OCR engine.
package document

import "fmt"

// UnreadableError reports that the underlying decoder or OCR engine could not
// parse an uploaded document (corrupt file, unsupported encoding). Callers
// catch it and degrade to a "no text available" state instead of failing the
// session.
type UnreadableError struct {
	Filename string
	Err      error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("unreadable document %q: %v", e.Filename, e.Err)
}

func (e *UnreadableError) Unwrap() error {
	return e.Err
}
