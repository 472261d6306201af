package adapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	m "wptscore.dev/pkg/wptscore/internal/model"
)

// RunFileExtension is the extension of runs written by the store.
const RunFileExtension = ".xz"

// RunStore persists assembled runs, one file per run date.
type RunStore interface {
	// List returns the stored runs of dir sorted by file name, oldest first.
	List(dir m.Path) ([]m.RunFile, error)

	// Load reads a stored run. xz, gzip and plain JSON files are accepted.
	Load(path m.Path) (m.ProcessedRun, error)

	// Save writes run as <dir>/<date>.xz and returns the written path.
	Save(dir m.Path, date string, run m.ProcessedRun) (m.Path, error)
}

// LocalRunStore stores runs as xz compressed JSON on the local filesystem.
type LocalRunStore struct{}

// NewLocalRunStore constructs a LocalRunStore.
func NewLocalRunStore() *LocalRunStore {
	return &LocalRunStore{}
}

// List returns the run files of dir.
func (s *LocalRunStore) List(dir m.Path) ([]m.RunFile, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		slog.Error("failed to list runs", "path", dir, "error", err)
		return nil, fmt.Errorf("list runs in %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || ignoredEntries[entry.Name()] {
			continue
		}

		names = append(names, entry.Name())
	}

	sort.Strings(names)

	runs := make([]m.RunFile, 0, len(names))
	for _, name := range names {
		runs = append(runs, m.NewRunFile(m.Path(filepath.Join(string(dir), name))))
	}

	slog.Debug("listed runs", "path", dir, "count", len(runs))

	return runs, nil
}

// Load reads and decodes a stored run.
func (s *LocalRunStore) Load(path m.Path) (m.ProcessedRun, error) {
	data, err := readMaybeCompressed(path)
	if err != nil {
		slog.Error("failed to read run", "path", path, "error", err)
		return m.ProcessedRun{}, fmt.Errorf("read run %s: %w", path, err)
	}

	var run m.ProcessedRun
	if err := json.Unmarshal(data, &run); err != nil {
		slog.Error("failed to decode run", "path", path, "error", err)
		return m.ProcessedRun{}, fmt.Errorf("decode run %s: %w", path, err)
	}

	if run.TestScores == nil {
		run.TestScores = map[string]m.TestScore{}
	}

	return run, nil
}

// Save encodes run as JSON, compresses it and writes it to dir. Test scores
// are written in key order.
func (s *LocalRunStore) Save(dir m.Path, date string, run m.ProcessedRun) (m.Path, error) {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("failed to create runs directory", "path", dir, "error", err)
		return "", fmt.Errorf("create runs directory: %w", err)
	}

	data, err := json.Marshal(run)
	if err != nil {
		return "", fmt.Errorf("encode run: %w", err)
	}

	compressed, err := compressXz(data)
	if err != nil {
		slog.Error("failed to compress run", "date", date, "error", err)
		return "", err
	}

	path := m.Path(filepath.Join(string(dir), date+RunFileExtension))
	if err := os.WriteFile(string(path), compressed, 0o600); err != nil {
		slog.Error("failed to write run", "path", path, "error", err)
		return "", fmt.Errorf("write run %s: %w", path, err)
	}

	slog.Info("saved run", "path", path, "tests", len(run.TestScores), "bytes", len(compressed))

	return path, nil
}
