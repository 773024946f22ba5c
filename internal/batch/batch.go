package batch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/zombor/invoice-reader/internal/invoice"
	"github.com/zombor/invoice-reader/internal/report"
	"github.com/zombor/invoice-reader/internal/scanning"
)

// pdfExtension is matched case-sensitively against file names
const pdfExtension = ".pdf"

// ErrNoFolder is returned when Config.Folder is empty
var ErrNoFolder = errors.New("input folder is required")

// Config holds the paths for one batch run
type Config struct {
	Folder       string
	DetailedPath string
	FlatPath     string

	// ContinueOnError records a file whose text cannot be extracted and
	// moves on to the next one. When false the first such file aborts the
	// run before any report is written.
	ContinueOnError bool
}

// FileError is a per-file failure collected when ContinueOnError is set
type FileError struct {
	Filename string
	Err      error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Filename, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Result describes a finished batch run
type Result struct {
	Records  []invoice.FileRecord
	Failures []FileError
}

// Processor turns a folder of invoice PDFs into the two reports
type Processor struct {
	extractor scanning.TextExtractor
}

// NewProcessor creates a new Processor reading PDFs with extractor
func NewProcessor(extractor scanning.TextExtractor) *Processor {
	return &Processor{extractor: extractor}
}

// ProcessFolder extracts every PDF directly under cfg.Folder, in name order,
// then writes the detailed and flat reports once with all the records.
func (p *Processor) ProcessFolder(cfg Config) (*Result, error) {
	if cfg.Folder == "" {
		return nil, ErrNoFolder
	}

	files, err := listPDFs(cfg.Folder)
	if err != nil {
		return nil, err
	}

	result := &Result{Records: make([]invoice.FileRecord, 0, len(files))}
	for _, name := range files {
		path := filepath.Join(cfg.Folder, name)
		slog.Info("Processing invoice", "path", path)

		text, err := p.extractor.ExtractText(path)
		if err != nil {
			if !cfg.ContinueOnError {
				return nil, fmt.Errorf("extracting text from %s: %w", path, err)
			}
			slog.Error("Failed to extract text", "path", path, "error", err)
			result.Failures = append(result.Failures, FileError{Filename: name, Err: err})
			continue
		}

		result.Records = append(result.Records, invoice.FileRecord{
			Filename: name,
			Record:   invoice.ExtractInvoiceData(text),
		})
	}

	if err := report.WriteDetailed(result.Records, cfg.DetailedPath); err != nil {
		return nil, fmt.Errorf("writing detailed report: %w", err)
	}
	if err := report.WriteFlat(result.Records, cfg.FlatPath); err != nil {
		return nil, fmt.Errorf("writing flat report: %w", err)
	}

	return result, nil
}

// listPDFs returns the names of the PDF files directly under dir, sorted.
// Subdirectories are skipped, even when their name ends in .pdf.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading folder: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), pdfExtension) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
