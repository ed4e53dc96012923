package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Reader reads player commands one line at a time
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReader creates a reader that prompts on out and reads lines from in
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// ReadCommand writes prompt and returns the next line without its line
// terminator. Other whitespace is kept. A final line without a newline is
// returned as is; after that the reader reports io.EOF.
func (r *Reader) ReadCommand(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
