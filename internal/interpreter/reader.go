package interpreter

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// LineReader supplies input lines, both commands and BEG values.
// ReadLine returns io.EOF once the source is exhausted.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

type lineReader struct {
	r *bufio.Reader
}

// NewLineReader returns a LineReader over r. Lines have no length limit and are
// returned without their "\n" or "\r\n" terminator. A final line without a
// terminator is still returned before io.EOF.
func NewLineReader(r io.Reader) LineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// ReadLine checks ctx before reading; the read itself blocks until a line arrives.
func (lr *lineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := lr.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
