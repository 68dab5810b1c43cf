package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/workflow-tui/pkg/domain"
)

// ErrResultNotFound is returned by Load for an unknown session id.
var ErrResultNotFound = errors.New("result not found")

// Result is the archived outcome of a completed session.
type Result struct {
	SessionID       string       `json:"sessionId"`
	WorkflowID      string       `json:"workflowId"`
	WorkflowVersion string       `json:"workflowVersion,omitempty"`
	FinalNodeID     string       `json:"finalNodeId"`
	Status          string       `json:"status"`
	History         []string     `json:"history"`
	CompletedAt     time.Time    `json:"completedAt"`
	Data            *domain.Data `json:"data"`
}

// ResultStore archives completed sessions as JSON files in a directory,
// one <session-id>.json per session.
type ResultStore struct {
	BasePath string
}

// NewResultStore creates a store rooted at basePath.
// If basePath is empty, it defaults to ".workflow-tui/results".
func NewResultStore(basePath string) *ResultStore {
	if basePath == "" {
		basePath = filepath.Join(".workflow-tui", "results")
	}
	return &ResultStore{BasePath: basePath}
}

// Save writes the result. An existing file for the same session is replaced.
func (s *ResultStore) Save(ctx context.Context, r *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(r.SessionID)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure results directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	// Write to a sibling temp file first so readers never see a partial result.
	tmp, err := os.CreateTemp(s.BasePath, ".result-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create result file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write result file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write result file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write result file: %w", err)
	}
	return nil
}

// Load reads the result archived for sessionID.
func (s *ResultStore) Load(ctx context.Context, sessionID string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(sessionID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to read result file: %w", err)
	}

	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return &r, nil
}

// Delete removes the archived result. Deleting an unknown session is not an error.
func (s *ResultStore) Delete(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(sessionID)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete result file: %w", err)
	}
	return nil
}

// List returns the archived session ids, sorted.
func (s *ResultStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	ids := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *ResultStore) path(sessionID string) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("sessionID cannot be empty")
	}
	if strings.ContainsAny(sessionID, `/\`) || sessionID == "." || sessionID == ".." {
		return "", fmt.Errorf("invalid sessionID: %q", sessionID)
	}
	return filepath.Join(s.BasePath, sessionID+".json"), nil
}
