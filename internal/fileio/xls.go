// Legacy .xls reader. Row.LastCol() is unreliable on files exported by old
// courier software, so the table width is probed across all rows first.
package fileio

import (
	"bytes"
	"errors"
	"io"
	"strings"

	xls "github.com/extrame/xls"
)

// some exporters write cp1251 or even koi8-r instead of declaring utf-8
var xlsCharsets = []string{"utf-8", "windows-1251", "koi8-r"}

func openXLS(r io.Reader) (*xls.WorkBook, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var lastErr error
	for _, ch := range xlsCharsets {
		wb, err := xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			return wb, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("xls: failed to open workbook")
	}
	return nil, lastErr
}

func readXLS(r io.Reader, sheet string) ([][]string, error) {
	wb, err := openXLS(r)
	if err != nil {
		return nil, err
	}

	ws := wb.GetSheet(0)
	if sheet != "" {
		ws = nil
		for i := 0; i < wb.NumSheets(); i++ {
			if s := wb.GetSheet(i); s != nil && s.Name == sheet {
				ws = s
				break
			}
		}
		if ws == nil {
			return nil, errors.New("xls: sheet not found: " + sheet)
		}
	}
	if ws == nil {
		return nil, nil
	}

	maxCols := probeMaxCols(ws)
	rows := make([][]string, 0, int(ws.MaxRow)+1)
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		cols := make([]string, maxCols)
		if row != nil {
			for j := 0; j < maxCols; j++ {
				cols[j] = strings.TrimSpace(row.Col(j))
			}
		}
		rows = append(rows, cols)
	}
	return rows, nil
}

// probeMaxCols walks every row looking for the rightmost non-empty cell.
func probeMaxCols(ws *xls.WorkSheet) int {
	const probeMax = 512
	maxCols := 1
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			continue
		}
		for j := 0; j < probeMax; j++ {
			if strings.TrimSpace(row.Col(j)) != "" && j+1 > maxCols {
				maxCols = j + 1
			}
		}
	}
	return maxCols
}

func sheetNamesXLS(r io.Reader) ([]string, error) {
	wb, err := openXLS(r)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		if s := wb.GetSheet(i); s != nil {
			names = append(names, s.Name)
		}
	}
	return names, nil
}
