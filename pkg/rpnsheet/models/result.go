package models

// CellResult is the evaluated form of one cell.
type CellResult struct {
	// R is the row index (1-based).
	R int `json:"r" yaml:"r"`
	// C is the column index (1-based).
	C int `json:"c" yaml:"c"`
	// Ref is the cell name, e.g. "B2".
	Ref string `json:"ref" yaml:"ref"`
	// Value is the computed number (nil when evaluation failed).
	Value *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	// Text is the formatted value, or the error marker on failure.
	Text string `json:"text" yaml:"text"`
	// Error describes the failure (empty on success).
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
	// Code is the short error code, e.g. "#DIV/0!" (empty on success).
	Code string `json:"code,omitempty" yaml:"code,omitempty"`
}

// Failed reports whether the cell could not be evaluated.
func (c CellResult) Failed() bool {
	return c.Value == nil
}

// ResultRow is one evaluated row.
type ResultRow struct {
	// R is the row index (1-based).
	R int `json:"r" yaml:"r"`
	// Cells holds one result per input cell, in column order.
	Cells []CellResult `json:"cells" yaml:"cells"`
}

// ResultGrid has the same shape as the input grid.
type ResultGrid struct {
	// Source is the input name (no path), if known.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Rows contains the evaluated rows.
	Rows []ResultRow `json:"rows" yaml:"rows"`
}

// Text returns the formatted text of every cell, row by row.
func (g *ResultGrid) Text() [][]string {
	out := make([][]string, 0, len(g.Rows))
	for _, row := range g.Rows {
		texts := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			texts = append(texts, cell.Text)
		}
		out = append(out, texts)
	}
	return out
}

// Errors returns the number of failed cells.
func (g *ResultGrid) Errors() int {
	n := 0
	for _, row := range g.Rows {
		for _, cell := range row.Cells {
			if cell.Failed() {
				n++
			}
		}
	}
	return n
}
