// Package adapter contains the infrastructure adapters of the wptscore CLI:
// reading shard reports, storing assembled runs and publishing score documents.
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

// ignoredEntries are directory entries that are never shard reports.
var ignoredEntries = map[string]bool{
	".DS_Store": true,
}

// ChunkSource abstracts access to the shard reports of a single test run so
// that run assembly can be tested without touching the disk.
type ChunkSource interface {
	// List returns the shard reports found in dir, sorted by name.
	List(dir m.Path) ([]m.ChunkFile, error)

	// Read parses one shard report.
	Read(chunk m.ChunkFile) (m.RawReport, error)
}

// LocalChunkSource reads shard reports from the local filesystem.
type LocalChunkSource struct{}

// NewLocalChunkSource constructs a LocalChunkSource.
func NewLocalChunkSource() *LocalChunkSource {
	return &LocalChunkSource{}
}

// List returns the regular files of dir, skipping OS metadata files.
func (s *LocalChunkSource) List(dir m.Path) ([]m.ChunkFile, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		slog.Error("failed to list chunks", "path", dir, "error", err)
		return nil, fmt.Errorf("list chunks in %s: %w", dir, err)
	}

	chunks := make([]m.ChunkFile, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || ignoredEntries[entry.Name()] {
			continue
		}

		chunks = append(chunks, m.ChunkFile{
			Name: entry.Name(),
			Path: m.Path(filepath.Join(string(dir), entry.Name())),
		})
	}

	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].Name < chunks[j].Name
	})

	slog.Debug("listed chunks", "path", dir, "count", len(chunks))

	return chunks, nil
}

// Read decodes a JSON shard report.
func (s *LocalChunkSource) Read(chunk m.ChunkFile) (m.RawReport, error) {
	data, err := readMaybeCompressed(chunk.Path)
	if err != nil {
		slog.Error("failed to read chunk", "path", chunk.Path, "error", err)
		return m.RawReport{}, fmt.Errorf("read chunk %s: %w", chunk.Name, err)
	}

	var report m.RawReport
	if err := json.Unmarshal(data, &report); err != nil {
		slog.Error("failed to decode chunk", "path", chunk.Path, "error", err)
		return m.RawReport{}, fmt.Errorf("decode chunk %s: %w", chunk.Name, err)
	}

	return report, nil
}
