// Package rpnsheet evaluates grids of postfix (RPN) cell expressions.
package rpnsheet

import "log/slog"

// DefaultErrorMarker is written in place of any cell that failed to evaluate.
const DefaultErrorMarker = "#ERR"

// DefaultDelimiter separates fields of delimited text input.
const DefaultDelimiter = ","

// Options configures reading and evaluation.
type Options struct {
	// ErrorMarker replaces the text of failed cells.
	// If empty, DefaultErrorMarker is used.
	ErrorMarker string
	// Delimiter separates fields of delimited text input.
	// If empty, DefaultDelimiter is used.
	Delimiter string
	// Encoding is the IANA charset name of delimited text input.
	// If empty, input is read as UTF-8.
	Encoding string
	// Sheet selects the worksheet of xlsx input.
	// If empty, the first worksheet is used.
	Sheet string
	// Logger receives diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default evaluation options.
func DefaultOptions() Options {
	return Options{
		ErrorMarker: DefaultErrorMarker,
		Delimiter:   DefaultDelimiter,
	}
}

// Marker returns the text written for failed cells.
func (o Options) Marker() string {
	if o.ErrorMarker != "" {
		return o.ErrorMarker
	}
	return DefaultErrorMarker
}

// FieldDelimiter returns the delimiter for delimited text input.
func (o Options) FieldDelimiter() string {
	if o.Delimiter != "" {
		return o.Delimiter
	}
	return DefaultDelimiter
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
