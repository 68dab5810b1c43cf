package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInputClosed is returned by ReadLine after Close.
var ErrInputClosed = errors.New("input closed")

// TextHandler implements ports.LineReader for standard text IO.
// Reads are blocking and sequential; there is no background reader.
type TextHandler struct {
	source io.Reader
	Reader *bufio.Reader
	Writer io.Writer

	closed bool
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &TextHandler{
		source: r,
		Reader: bufio.NewReader(r),
		Writer: w,
	}
}

// ReadLine writes the prompt and blocks until a full line is submitted.
// A final line without a trailing newline is still returned; io.EOF follows on the next call.
func (h *TextHandler) ReadLine(ctx context.Context, prompt string) (string, error) {
	for {
		if h.closed {
			return "", ErrInputClosed
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}

		fmt.Fprint(h.Writer, prompt)

		text, err := h.Reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			return "", err
		}

		// Sanitize Input (Limit + Control Chars)
		clean, serr := SanitizeInput(strings.TrimSpace(text))
		if serr != nil {
			fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", serr)
			continue
		}
		return clean, nil
	}
}

// Close releases the handler. The underlying reader is closed unless it is os.Stdin.
// Close is idempotent.
func (h *TextHandler) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	if c, ok := h.source.(io.Closer); ok && h.source != io.Reader(os.Stdin) {
		return c.Close()
	}
	return nil
}
