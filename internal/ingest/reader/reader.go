package reader

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Line is one expression read from a source. No is 1-based.
type Line struct {
	No   int
	Text string
}

type Result struct {
	Line Line
	Err  error
}

// LineReader streams expressions. The channel is closed when the source is
// exhausted or ctx is done.
type LineReader interface {
	Lines(ctx context.Context) (<-chan Result, error)
}

type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
)

// FormatFromPath picks CSV for *.csv files and plain text otherwise.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatText
}

// New returns a reader for format. column is only used by CSV.
func New(format Format, r io.Reader, column string) (LineReader, error) {
	switch format {
	case FormatText, "":
		return NewTextReader(r), nil
	case FormatCSV:
		return NewCSVReader(r, column), nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

func send(ctx context.Context, out chan<- Result, res Result) bool {
	select {
	case out <- res:
		return true
	case <-ctx.Done():
		return false
	}
}
