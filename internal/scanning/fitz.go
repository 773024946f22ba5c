package scanning

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Fitz implements the TextExtractor interface using MuPDF
type Fitz struct{}

// NewFitz creates a new Fitz extractor
func NewFitz() *Fitz {
	return &Fitz{}
}

// ExtractText opens the PDF, reads every page and closes it again
func (f *Fitz) ExtractText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	var text strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		page, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("extracting page %d: %w", i+1, err)
		}
		text.WriteString(page)
		text.WriteString("\n")
	}
	return text.String(), nil
}

// Close is a no-op; documents are closed after each extraction
func (f *Fitz) Close() error {
	return nil
}
