package ports

import "context"

// LineReader is the single line-reading interface of a session.
// ReadLine writes the prompt and blocks until the user submits a line.
// The returned text is trimmed. Close must be called on every exit path.
type LineReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
	Close() error
}
