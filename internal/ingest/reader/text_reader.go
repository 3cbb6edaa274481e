package reader

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// TextReader yields one expression per line. Blank lines and lines starting
// with '#' are skipped.
type TextReader struct {
	reader io.Reader
}

func NewTextReader(reader io.Reader) *TextReader {
	return &TextReader{reader: reader}
}

func (tr *TextReader) Lines(ctx context.Context) (<-chan Result, error) {
	out := make(chan Result)
	scanner := bufio.NewScanner(tr.reader)

	go func() {
		defer close(out)

		no := 0
		for scanner.Scan() {
			no++
			text := scanner.Text()
			trimmed := strings.TrimSpace(text)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			if !send(ctx, out, Result{Line: Line{No: no, Text: text}}) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			send(ctx, out, Result{Err: err})
		}
	}()

	return out, nil
}
