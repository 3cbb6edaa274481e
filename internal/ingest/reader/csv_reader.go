package reader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const DefaultCSVColumn = "expression"

// CSVReader yields the expression column of every data row.
type CSVReader struct {
	reader io.Reader
	column string
}

func NewCSVReader(reader io.Reader, column string) *CSVReader {
	if column == "" {
		column = DefaultCSVColumn
	}
	return &CSVReader{
		reader: reader,
		column: column,
	}
}

func (cr *CSVReader) Lines(ctx context.Context) (<-chan Result, error) {
	csvReader := csv.NewReader(cr.reader)
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	col := -1
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), cr.column) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("csv header has no %q column", cr.column)
	}

	out := make(chan Result)
	go func() {
		defer close(out)

		no := 0
		for {
			row, err := csvReader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			no++
			if err != nil {
				slog.Error("Error reading CSV row", "row", no, "error", err)
				if !send(ctx, out, Result{Line: Line{No: no}, Err: err}) {
					return
				}
				continue
			}
			if col >= len(row) {
				if !send(ctx, out, Result{Line: Line{No: no}, Err: fmt.Errorf("row %d: missing %q column", no, cr.column)}) {
					return
				}
				continue
			}
			if !send(ctx, out, Result{Line: Line{No: no, Text: row[col]}}) {
				return
			}
		}
	}()

	return out, nil
}
