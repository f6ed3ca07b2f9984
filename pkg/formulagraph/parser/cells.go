package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/models"
	"github.com/xuri/excelize/v2"
)

// LoadGrid reads one worksheet into a grid.
// Formula cells hold "=" followed by the formula text; other non-empty cells
// hold their parsed value.
func LoadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	nRows, nCols := len(rows), 0
	for _, row := range rows {
		nCols = max(nCols, len(row))
	}
	// The dimension ref can reach past the last cached value, e.g. for
	// formulas that were never calculated.
	if dim, err := f.GetSheetDimension(sheetName); err == nil {
		if r, c, ok := dimensionExtent(dim); ok {
			nRows, nCols = max(nRows, r), max(nCols, c)
		}
	}

	grid := make(models.Grid, nRows)
	for rowIdx := range grid {
		grid[rowIdx] = make([]*models.Cell, nCols)
		for colIdx := 0; colIdx < nCols; colIdx++ {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}

			formula, err := f.GetCellFormula(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			if formula != "" {
				grid[rowIdx][colIdx] = &models.Cell{Value: "=" + strings.TrimPrefix(formula, "=")}
				continue
			}

			if rowIdx < len(rows) && colIdx < len(rows[rowIdx]) && rows[rowIdx][colIdx] != "" {
				grid[rowIdx][colIdx] = &models.Cell{Value: parseValue(rows[rowIdx][colIdx])}
			}
		}
	}

	return grid, nil
}

// dimensionExtent returns the bottom-right corner of a dimension ref such as
// "A1:D10" or "B2".
func dimensionExtent(ref string) (rows, cols int, ok bool) {
	ref = strings.ReplaceAll(ref, "$", "")
	if ref == "" {
		return 0, 0, false
	}

	parts := strings.Split(ref, ":")
	col, row, err := excelize.CellNameToCoordinates(parts[len(parts)-1])
	if err != nil {
		return 0, 0, false
	}
	return row, col, true
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
