package output

import (
	"github.com/ukaji3/rpnsheet-go/pkg/rpnsheet/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the worksheet written by WriteXLSX.
const DefaultSheetName = "Sheet1"

// NewWorkbook builds a workbook holding an evaluated grid.
// Computed values are stored as numbers; failed cells hold their text.
func NewWorkbook(g *models.ResultGrid) (*excelize.File, error) {
	f := excelize.NewFile()
	for _, row := range g.Rows {
		for _, cell := range row.Cells {
			name, err := excelize.CoordinatesToCellName(cell.C, cell.R)
			if err != nil {
				f.Close()
				return nil, err
			}
			var value interface{} = cell.Text
			if cell.Value != nil {
				value = *cell.Value
			}
			if err := f.SetCellValue(DefaultSheetName, name, value); err != nil {
				f.Close()
				return nil, err
			}
		}
	}
	return f, nil
}

// WriteXLSX saves an evaluated grid as a workbook at path.
func WriteXLSX(g *models.ResultGrid, path string) error {
	f, err := NewWorkbook(g)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}
