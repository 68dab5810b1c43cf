// Package loader reads workflow documents (JSON or YAML) from disk into domain.Workflow.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/workflow-tui/pkg/domain"
)

// Format is a workflow document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for file extensions other than .json, .yaml and .yml.
var ErrUnsupportedFormat = errors.New("unsupported workflow format")

// ParseError reports a document that could not be decoded.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid %s: %v", strings.ToUpper(string(e.Format)), e.Err)
	}
	return fmt.Sprintf("invalid %s in %s: %v", strings.ToUpper(string(e.Format)), e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// FileLoader implements ports.WorkflowLoader for a document on disk.
type FileLoader struct {
	Path   string
	Logger *slog.Logger
}

// New creates a FileLoader. Relative paths are resolved against the working directory at Load time.
func New(path string, logger *slog.Logger) *FileLoader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &FileLoader{Path: path, Logger: logger}
}

// Load reads and decodes the workflow file.
func (l *FileLoader) Load(ctx context.Context) (*domain.Workflow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", l.Path, err)
	}
	format, err := FormatFor(abs)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s", abs)
		}
		return nil, fmt.Errorf("failed to read workflow: %w", err)
	}

	wf, unused, err := parse(raw, format)
	if err != nil {
		return nil, &ParseError{Path: abs, Format: format, Err: err}
	}
	if len(unused) > 0 {
		l.Logger.Debug("ignored unknown workflow keys", "path", abs, "keys", unused)
	}
	l.Logger.Debug("workflow loaded", "path", abs, "workflow_id", wf.Meta.ID, "nodes", len(wf.Nodes))
	return wf, nil
}

// Load is a shorthand for New(path, nil).Load(context.Background()).
func Load(path string) (*domain.Workflow, error) {
	return New(path, nil).Load(context.Background())
}

// Parse decodes an in-memory document.
func Parse(data []byte, format Format) (*domain.Workflow, error) {
	wf, _, err := parse(data, format)
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}
	return wf, nil
}

func parse(data []byte, format Format) (*domain.Workflow, []string, error) {
	var doc map[string]any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if doc == nil {
		return nil, nil, errors.New("empty document")
	}

	var wf domain.Workflow
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: optionHook,
		Metadata:   &md,
		Result:     &wf,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := dec.Decode(doc); err != nil {
		return nil, nil, err
	}

	// Node ids default to their key.
	for key, node := range wf.Nodes {
		if node.ID == "" {
			node.ID = key
			wf.Nodes[key] = node
		}
	}
	return &wf, md.Unused, nil
}

var optionType = reflect.TypeOf(domain.Option{})

// optionHook accepts a bare string as an option whose value and label are the same.
func optionHook(from, to reflect.Type, data any) (any, error) {
	if to != optionType || from.Kind() != reflect.String {
		return data, nil
	}
	s := reflect.ValueOf(data).String()
	return domain.Option{Value: s, Label: s}, nil
}
