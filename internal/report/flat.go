package report

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/zombor/invoice-reader/internal/invoice"
)

// flatEntry is the key/value shape the flat layout is derived from
type flatEntry struct {
	filename string
	fields   []invoice.Field
	summary  []invoice.Field
}

func newFlatEntry(rec invoice.FileRecord) flatEntry {
	data := rec.Record
	if data == nil {
		data = &invoice.Record{}
	}
	return flatEntry{
		filename: rec.Filename,
		fields:   data.Fields(),
		summary:  data.Consumption.Fields(),
	}
}

// WriteFlat writes a header row and one row per record to dest.
//
// The header is taken from the first record only: its top-level keys
// followed by its consumption summary keys. Keys a later record has but the
// first lacks are not written.
func WriteFlat(records []invoice.FileRecord, dest string) error {
	entries := make([]flatEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, newFlatEntry(rec))
	}
	if err := writeFlat(entries, dest); err != nil {
		return err
	}
	slog.Info("Report saved", "layout", "flat", "path", dest, "invoices", len(records))
	return nil
}

func writeFlat(entries []flatEntry, dest string) error {
	w, err := newWorkbook(flatSheet)
	if err != nil {
		return err
	}

	headers := flatHeaders(entries)
	header := make([]any, 0, len(headers))
	for _, h := range headers {
		header = append(header, h)
	}
	if err := w.appendRow(header...); err != nil {
		w.close()
		return err
	}
	if err := styleHeader(w, len(headers)); err != nil {
		w.close()
		return err
	}

	for _, entry := range entries {
		if err := w.appendRow(flatRow(entry, headers)...); err != nil {
			w.close()
			return fmt.Errorf("writing %s: %w", entry.filename, err)
		}
	}

	return w.save(dest)
}

// flatHeaders derives the column names from the first entry
func flatHeaders(entries []flatEntry) []string {
	headers := []string{sourceFileHeader}
	if len(entries) == 0 {
		return headers
	}
	first := entries[0]
	for _, f := range first.fields {
		headers = append(headers, f.Key)
	}
	for _, f := range first.summary {
		headers = append(headers, f.Key)
	}
	return headers
}

// flatRow looks each header up in the top-level fields, then in the
// summary, and falls back to an empty string.
func flatRow(entry flatEntry, headers []string) []any {
	row := make([]any, 0, len(headers))
	row = append(row, entry.filename)
	for _, key := range headers[1:] {
		if v, ok := lookup(entry.fields, key); ok {
			row = append(row, v)
		} else if v, ok := lookup(entry.summary, key); ok {
			row = append(row, v)
		} else {
			row = append(row, "")
		}
	}
	return row
}

func lookup(fields []invoice.Field, key string) (any, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// styleHeader bolds the header row and freezes it above the data
func styleHeader(w *workbook, columns int) error {
	style, err := w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return err
	}
	if err := w.f.SetCellStyle(w.sheet, "A1", last, style); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	return w.f.SetPanes(w.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
