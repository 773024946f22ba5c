package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	detailedSheet = "Invoices"
	flatSheet     = "Summary"

	sourceFileHeader = "Source File"
)

// workbook wraps an excelize file with a single sheet that is filled
// top to bottom, one row at a time.
type workbook struct {
	f     *excelize.File
	sheet string
	row   int
}

// newWorkbook creates a file whose default sheet is renamed to sheet
func newWorkbook(sheet string) (*workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	return &workbook{f: f, sheet: sheet}, nil
}

// appendRow writes values into the next row starting at column A.
// An empty call leaves a blank row.
func (w *workbook) appendRow(values ...any) error {
	w.row++
	if len(values) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	if err := w.f.SetSheetRow(w.sheet, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", w.row, err)
	}
	return nil
}

// appendHeading writes text into column A of the next row, merges it with
// column B and applies style.
func (w *workbook) appendHeading(text string, style int) error {
	if err := w.appendRow(text); err != nil {
		return err
	}
	left, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	right, err := excelize.CoordinatesToCellName(2, w.row)
	if err != nil {
		return err
	}
	if err := w.f.MergeCell(w.sheet, left, right); err != nil {
		return fmt.Errorf("merging %s:%s: %w", left, right, err)
	}
	if err := w.f.SetCellStyle(w.sheet, left, right, style); err != nil {
		return fmt.Errorf("styling %s: %w", left, err)
	}
	return nil
}

// headingStyle registers a bold, left-aligned font of the given size
func (w *workbook) headingStyle(size float64) (int, error) {
	style, err := w.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: size},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		return 0, fmt.Errorf("creating style: %w", err)
	}
	return style, nil
}

// save writes the workbook to dest, replacing any existing file, and closes it
func (w *workbook) save(dest string) error {
	defer w.f.Close()
	if err := w.f.SaveAs(dest); err != nil {
		return fmt.Errorf("saving %s: %w", dest, err)
	}
	return nil
}

// close releases the workbook without saving it
func (w *workbook) close() {
	w.f.Close()
}
