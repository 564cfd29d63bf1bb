// Package importer turns messy courier spreadsheets into typed orders:
// locate the header row, map logical columns by alias scoring, normalize
// prices and phone numbers, continue the sequence numbering.
package importer

import (
	"errors"
	"fmt"
	"io"

	"delivery-tracker/internal/fileio"
	"delivery-tracker/internal/orders/model"
)

// ErrBadWorkbook wraps decode failures of the uploaded file itself.
var ErrBadWorkbook = errors.New("cannot read workbook")

// Import reads one sheet of an uploaded workbook and builds the new orders.
// It fails before anything is written: an unreadable file or an unrecognized
// layout leaves the existing collection untouched.
func Import(r io.Reader, filename, sheet string, existing []model.Order, appendMode bool) ([]model.Order, error) {
	rows, err := fileio.ReadGrid(r, filename, sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadWorkbook, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}

	headerIdx, mapping, err := LocateHeader(rows, model.ColumnAliases)
	if err != nil {
		return nil, err
	}
	return BuildOrders(rows, headerIdx, mapping, existing, appendMode), nil
}
