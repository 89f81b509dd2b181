package rpnsheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/rpnsheet-go/pkg/rpnsheet/models"
	"github.com/ukaji3/rpnsheet-go/pkg/rpnsheet/parser"
	"github.com/xuri/excelize/v2"
)

// Evaluate computes every cell of grid in row-major order.
// A failing cell is replaced by the error marker; it never stops the pass.
func Evaluate(grid models.Grid, opts Options) (*models.ResultGrid, error) {
	snapshot, err := grid.Clone()
	if err != nil {
		return nil, fmt.Errorf("snapshot grid: %w", err)
	}

	log := opts.logger()
	resolver := NewResolver(snapshot)
	result := &models.ResultGrid{
		Rows: make([]models.ResultRow, 0, len(snapshot)),
	}

	cells := 0
	for rowIdx, row := range snapshot {
		out := models.ResultRow{
			R:     rowIdx + 1,
			Cells: make([]models.CellResult, 0, len(row)),
		}
		for colIdx, text := range row {
			cells++
			cell := models.CellResult{
				R:   rowIdx + 1,
				C:   colIdx + 1,
				Ref: models.CellName(rowIdx, colIdx),
			}

			expr := strings.TrimSpace(text)
			v, err := resolver.Resolve(expr)
			if err != nil {
				cellErr := &CellError{Ref: cell.Ref, Row: rowIdx, Col: colIdx, Err: err}
				log.Debug("cell evaluation failed", "cell", cell.Ref, "expr", expr, "err", cellErr)
				cell.Text = opts.Marker()
				cell.Error = err.Error()
				cell.Code = ErrorCode(err)
			} else {
				value := v
				cell.Value = &value
				cell.Text = FormatValue(v)
			}
			out.Cells = append(out.Cells, cell)
		}
		result.Rows = append(result.Rows, out)
	}

	stats := resolver.Stats()
	log.Info("evaluated grid",
		"rows", len(snapshot),
		"cols", snapshot.Width(),
		"cells", cells,
		"errors", result.Errors(),
		"evaluated", stats.Evaluated,
		"cache_hits", stats.CacheHits,
	)
	return result, nil
}

// EvaluateFile reads a grid from path and evaluates it.
// Files ending in .xlsx or .xlsm are read as workbooks; anything else is
// read as delimited text.
func EvaluateFile(path string, opts Options) (*models.ResultGrid, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	grid, err := readGrid(path, opts)
	if err != nil {
		return nil, err
	}

	result, err := Evaluate(grid, opts)
	if err != nil {
		return nil, err
	}
	result.Source = filepath.Base(path)
	return result, nil
}

func readGrid(path string, opts Options) (models.Grid, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open workbook: %w", err)
		}
		defer f.Close()

		grid, err := parser.ReadXLSX(f, opts.Sheet)
		if err != nil {
			return nil, fmt.Errorf("read workbook: %w", err)
		}
		return grid, nil
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		grid, err := parser.ReadCSV(f, parser.CSVOptions{
			Delimiter: opts.FieldDelimiter(),
			Encoding:  opts.Encoding,
		})
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		return grid, nil
	}
}
