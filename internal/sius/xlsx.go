package sius

// xlsx.go reads score exports that were re-saved as Excel workbooks.
// Ranges routinely open the device CSV in Excel and pass the .xlsx around;
// only the first sheet matters and every cell is taken as text.

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RowsFromWorkbook reads the first sheet of an xlsx workbook into headerless
// rows. A workbook with no sheets or no rows yields an empty result.
func RowsFromWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// IsWorkbookName reports whether the uploaded filename looks like an Excel
// workbook rather than a delimited text export.
func IsWorkbookName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".xlsx")
}
