package scanning

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Plain implements the TextExtractor interface with a pure Go PDF reader.
// It needs no native MuPDF library but copes with fewer font encodings.
type Plain struct{}

// NewPlain creates a new Plain extractor
func NewPlain() *Plain {
	return &Plain{}
}

// pageReader is the part of *pdf.Reader used to walk a document
type pageReader interface {
	NumPage() int
	Page(num int) pdf.Page
}

// ExtractText opens the PDF, reads every page and closes it again
func (p *Plain) ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	return readPages(r)
}

// readPages concatenates the text of every page, each followed by a newline.
// A page with no content object still gets its newline.
func readPages(r pageReader) (string, error) {
	var text strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if !page.V.IsNull() {
			content, err := page.GetPlainText(nil)
			if err != nil {
				return "", fmt.Errorf("extracting page %d: %w", i, err)
			}
			text.WriteString(content)
		}
		text.WriteString("\n")
	}
	return text.String(), nil
}

// Close is a no-op
func (p *Plain) Close() error {
	return nil
}
