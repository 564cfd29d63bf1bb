// Package fileio decodes uploaded tabular files (.xlsx, .xls, .csv) into a
// raw cell grid. Header detection is not done here: the import pipeline owns
// it, so readers return rows exactly as they appear in the file.
package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadGrid picks a parser by extension and returns the cells of one sheet as
// rows of strings. sheet selects a worksheet by name; empty means the first
// one. CSV files have a single implicit sheet.
func ReadGrid(r io.Reader, filename, sheet string) ([][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx":
		return readXLSX(r, sheet)
	case ".xls":
		return readXLS(r, sheet)
	case ".csv":
		return readCSV(r)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// SheetNames lists the worksheets of a workbook in file order.
func SheetNames(r io.Reader, filename string) ([]string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx":
		return sheetNamesXLSX(r)
	case ".xls":
		return sheetNamesXLS(r)
	case ".csv":
		return []string{strings.TrimSuffix(filepath.Base(filename), ext)}, nil
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}
