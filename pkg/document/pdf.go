package document

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDFText concatenates the embedded text of every page in page order.
// No separator is inserted beyond what each page yields.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}
