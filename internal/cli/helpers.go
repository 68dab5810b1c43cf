package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/workflow-tui/internal/logging"
	"github.com/aretw0/workflow-tui/pkg/domain"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout prompt UI).
func createLogger(w io.Writer, debug bool, format string) (*slog.Logger, error) {
	f, err := logging.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if debug {
		return logging.NewWithWriter(w, slog.LevelDebug, f), nil
	}
	return logging.NewNop(), nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// parseContext decodes the --context JSON object, keeping its key order.
func parseContext(raw string) (*domain.Data, error) {
	data := domain.NewData()
	if raw == "" {
		return data, nil
	}
	if err := json.Unmarshal([]byte(raw), data); err != nil {
		return nil, fmt.Errorf("error parsing --context JSON: %w", err)
	}
	return data, nil
}
