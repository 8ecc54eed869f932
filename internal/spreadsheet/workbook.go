// Package spreadsheet reads Excel workbooks and ranks their rows.
package spreadsheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is an opened Excel file.
type Workbook struct {
	file *excelize.File
	path string
}

// Open loads the workbook at path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel %s: %w", path, err)
	}
	return &Workbook{file: f, path: path}, nil
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	if w.file == nil {
		return nil
	}
	return w.file.Close()
}

// ActiveSheet returns the name of the sheet selected when the file was
// last saved.
func (w *Workbook) ActiveSheet() string {
	return w.file.GetSheetName(w.file.GetActiveSheetIndex())
}

// Sheets returns the sheet names in workbook order.
func (w *Workbook) Sheets() []string {
	return w.file.GetSheetList()
}

// Rows returns the raw (unformatted) cell values of sheet for the 1-based
// inclusive row range [minRow, maxRow]. Rows past the last populated row
// are omitted.
func (w *Workbook) Rows(sheet string, minRow, maxRow int) ([][]string, error) {
	if sheet == "" {
		return nil, errors.New("no active sheet")
	}
	rows, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows of %s: %w", sheet, err)
	}
	if minRow < 1 {
		minRow = 1
	}
	if maxRow > len(rows) {
		maxRow = len(rows)
	}
	if minRow > maxRow {
		return [][]string{}, nil
	}
	return rows[minRow-1 : maxRow], nil
}

// ColumnIndex converts a column letter ("C") to a 0-based index.
func ColumnIndex(letters string) (int, error) {
	n, err := excelize.ColumnNameToNumber(strings.ToUpper(strings.TrimSpace(letters)))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// CleanWorkbook opens the workbook at src and saves it again as a
// standard .xlsx file at dst.
func CleanWorkbook(src, dst string) error {
	w, err := Open(src)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", dst, err)
	}
	if err := w.file.SaveAs(dst); err != nil {
		return fmt.Errorf("save cleaned workbook %s: %w", dst, err)
	}
	return nil
}
