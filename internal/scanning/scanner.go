package scanning

import "fmt"

// TextExtractor defines the interface for reading the text of a PDF
type TextExtractor interface {
	// ExtractText returns the text of every page, each followed by a newline
	ExtractText(path string) (string, error)
	// Close releases any resources held by the extractor
	Close() error
}

// Extractor kinds accepted by New
const (
	KindFitz  = "fitz"
	KindPlain = "plain"
)

// New returns the TextExtractor registered under kind
func New(kind string) (TextExtractor, error) {
	switch kind {
	case KindFitz:
		return NewFitz(), nil
	case KindPlain:
		return NewPlain(), nil
	default:
		return nil, fmt.Errorf("unknown extractor %q (valid: %s or %s)", kind, KindFitz, KindPlain)
	}
}
