// Package parser reads evaluation grids from delimited text and workbooks.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/rpnsheet-go/pkg/rpnsheet/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// CSVOptions configures ReadCSV.
type CSVOptions struct {
	// Delimiter separates fields. If empty, "," is used.
	Delimiter string
	// Encoding is the IANA charset name of the input. If empty, UTF-8.
	Encoding string
}

// ReadCSV reads one row per line, splitting fields on the delimiter.
// Quoting and escaping are not supported. Trailing empty fields are
// dropped, so a line of only delimiters gives an empty row, while an
// empty line gives a row with a single empty cell.
func ReadCSV(r io.Reader, opts CSVOptions) (models.Grid, error) {
	delim := opts.Delimiter
	if delim == "" {
		delim = ","
	}

	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var grid models.Grid
	for scanner.Scan() {
		grid = append(grid, splitLine(scanner.Text(), delim))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return grid, nil
}

// splitLine splits a line on delim and removes trailing empty fields.
func splitLine(line, delim string) []string {
	fields := strings.Split(line, delim)
	if len(fields) == 1 {
		return fields
	}
	end := len(fields)
	for end > 0 && fields[end-1] == "" {
		end--
	}
	return fields[:end]
}

// lookupEncoding returns nil for UTF-8 input.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}
	return enc, nil
}
