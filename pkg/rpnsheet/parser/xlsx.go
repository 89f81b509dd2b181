package parser

import (
	"fmt"

	"github.com/ukaji3/rpnsheet-go/pkg/rpnsheet/models"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the raw cell text of a worksheet into a grid.
// If sheetName is empty, the first worksheet is used.
// Trailing empty rows are not part of the grid; empty cells inside the
// used range are kept as empty strings.
func ReadXLSX(f *excelize.File, sheetName string) (models.Grid, error) {
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		copy(cells, row)
		grid = append(grid, cells)
	}
	return grid, nil
}
