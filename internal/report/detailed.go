package report

import (
	"fmt"
	"log/slog"

	"github.com/zombor/invoice-reader/internal/invoice"
)

const (
	invoiceDataHeading = "Invoice Data"
	consumptionHeading = "Consumption Summary"
	addressHeading     = "Supply Address"

	labelColumnWidth = 32
	valueColumnWidth = 48
)

// WriteDetailed writes one block per record to dest: a title row, the
// invoice fields, the consumption summary and the supply address, each
// under a merged section heading, followed by a blank row.
func WriteDetailed(records []invoice.FileRecord, dest string) error {
	w, err := newWorkbook(detailedSheet)
	if err != nil {
		return err
	}

	titleStyle, err := w.headingStyle(14)
	if err != nil {
		w.close()
		return err
	}
	sectionStyle, err := w.headingStyle(12)
	if err != nil {
		w.close()
		return err
	}

	for _, rec := range records {
		if err := writeBlock(w, rec, titleStyle, sectionStyle); err != nil {
			w.close()
			return fmt.Errorf("writing %s: %w", rec.Filename, err)
		}
	}

	if err := w.f.SetColWidth(w.sheet, "A", "A", labelColumnWidth); err != nil {
		w.close()
		return fmt.Errorf("sizing columns: %w", err)
	}
	if err := w.f.SetColWidth(w.sheet, "B", "B", valueColumnWidth); err != nil {
		w.close()
		return fmt.Errorf("sizing columns: %w", err)
	}

	if err := w.save(dest); err != nil {
		return err
	}
	slog.Info("Report saved", "layout", "detailed", "path", dest, "invoices", len(records))
	return nil
}

func writeBlock(w *workbook, rec invoice.FileRecord, titleStyle, sectionStyle int) error {
	data := rec.Record
	if data == nil {
		data = &invoice.Record{}
	}

	if err := w.appendHeading(fmt.Sprintf("File: %s", rec.Filename), titleStyle); err != nil {
		return err
	}

	if err := w.appendHeading(invoiceDataHeading, sectionStyle); err != nil {
		return err
	}
	var address any
	for _, field := range data.Fields() {
		if field.Key == invoice.KeySupplyAddress {
			address = field.Value
			continue
		}
		if err := w.appendRow(field.Key, field.Value); err != nil {
			return err
		}
	}

	if err := w.appendHeading(consumptionHeading, sectionStyle); err != nil {
		return err
	}
	for _, field := range data.Consumption.Fields() {
		if err := w.appendRow(field.Key, field.Value); err != nil {
			return err
		}
	}

	if err := w.appendHeading(addressHeading, sectionStyle); err != nil {
		return err
	}
	if err := w.appendRow(address); err != nil {
		return err
	}

	return w.appendRow()
}
