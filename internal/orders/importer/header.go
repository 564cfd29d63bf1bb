package importer

import (
	"errors"

	"delivery-tracker/internal/orders/model"
)

const (
	// headers are assumed to sit somewhere in the first 50 rows
	headerScanLimit = 50

	exactScore   = 5
	partialScore = 2

	// below this the sheet has no recognizable header at all
	minHeaderScore = 8
)

// ErrUnrecognizedLayout means no candidate row scored well enough to be
// trusted as a header. Nothing is imported in that case.
var ErrUnrecognizedLayout = errors.New("sheet columns not recognized")

// ErrEmptyWorkbook means the selected sheet holds no rows at all.
var ErrEmptyWorkbook = errors.New("workbook is empty")

// Mapping binds logical column names to physical column indexes.
type Mapping map[string]int

// LocateHeader scans the top of the grid, scores every candidate row against
// the alias table and returns the winning row index with its column mapping.
// An exact hit anywhere in a row beats a partial hit for the same logical
// column regardless of position; ties on score keep the earliest row.
func LocateHeader(rows [][]string, aliases []model.AliasSet) (int, Mapping, error) {
	bestIdx := -1
	bestScore := 0
	var bestMapping Mapping

	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for i := 0; i < limit; i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}
		mapping := Mapping{}
		score := 0
		for _, set := range aliases {
			exactIdx, partialIdx := -1, -1
			for j, cell := range row {
				switch MatchAlias(cell, set.Aliases) {
				case MatchExact:
					exactIdx = j
				case MatchPartial:
					if partialIdx == -1 {
						partialIdx = j
					}
				}
				if exactIdx != -1 {
					break
				}
			}
			switch {
			case exactIdx != -1:
				mapping[set.Column] = exactIdx
				score += exactScore
			case partialIdx != -1:
				mapping[set.Column] = partialIdx
				score += partialScore
			}
		}
		if score > bestScore {
			bestScore = score
			bestIdx = i
			bestMapping = mapping
		}
	}

	if bestScore < minHeaderScore {
		return 0, nil, ErrUnrecognizedLayout
	}
	return bestIdx, bestMapping, nil
}
