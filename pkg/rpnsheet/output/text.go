// Package output serializes evaluated grids.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/ukaji3/rpnsheet-go/pkg/rpnsheet/models"
)

// Separator joins the cells of one row in text output.
const Separator = ", "

// WriteText writes one line per row, cells joined by Separator.
func WriteText(w io.Writer, g *models.ResultGrid) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.Text() {
		if _, err := bw.WriteString(strings.Join(row, Separator)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
