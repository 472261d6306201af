package adapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

// SiteFormat is the encoding of published score documents.
type SiteFormat string

// Supported site formats.
const (
	FormatJSON SiteFormat = "json"
	FormatYAML SiteFormat = "yaml"
)

const (
	scoresBaseName  = "scores"
	lastRunBaseName = "scores-last-run"
)

// ParseSiteFormat validates a configured site format.
func ParseSiteFormat(value string) (SiteFormat, error) {
	switch SiteFormat(value) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("unsupported site format %q", value)
}

func (f SiteFormat) marshal(v any) ([]byte, error) {
	if f == FormatYAML {
		return yaml.Marshal(v)
	}

	return json.Marshal(v)
}

func (f SiteFormat) unmarshal(data []byte, v any) error {
	if f == FormatYAML {
		return yaml.Unmarshal(data, v)
	}

	return json.Unmarshal(data, v)
}

func (f SiteFormat) fileName(base string) string {
	return base + "." + string(f)
}

// SiteStore publishes the score documents read by the site.
type SiteStore interface {
	// Save writes the all-runs and last-run documents into dir.
	Save(dir m.Path, format SiteFormat, scores m.ScoresDocument, lastRun m.LastRunDocument) error

	// LoadLastRun reads the last-run document from dir.
	LoadLastRun(dir m.Path, format SiteFormat) (m.LastRunDocument, error)
}

// LocalSiteStore writes score documents to the local filesystem.
type LocalSiteStore struct{}

// NewLocalSiteStore constructs a LocalSiteStore.
func NewLocalSiteStore() *LocalSiteStore {
	return &LocalSiteStore{}
}

// Save writes scores.<format> and scores-last-run.<format>.
func (s *LocalSiteStore) Save(dir m.Path, format SiteFormat, scores m.ScoresDocument, lastRun m.LastRunDocument) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("failed to create site directory", "path", dir, "error", err)
		return fmt.Errorf("create site directory: %w", err)
	}

	if err := s.write(dir, format, scoresBaseName, scores); err != nil {
		return err
	}

	return s.write(dir, format, lastRunBaseName, lastRun)
}

func (s *LocalSiteStore) write(dir m.Path, format SiteFormat, base string, document any) error {
	data, err := format.marshal(document)
	if err != nil {
		return fmt.Errorf("encode %s: %w", base, err)
	}

	path := filepath.Join(string(dir), format.fileName(base))
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // published documents are world readable
		slog.Error("failed to write site document", "path", path, "error", err)
		return fmt.Errorf("write %s: %w", path, err)
	}

	slog.Info("wrote site document", "path", path, "bytes", len(data))

	return nil
}

// LoadLastRun reads scores-last-run.<format>.
func (s *LocalSiteStore) LoadLastRun(dir m.Path, format SiteFormat) (m.LastRunDocument, error) {
	path := filepath.Join(string(dir), format.fileName(lastRunBaseName))

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("failed to read site document", "path", path, "error", err)
		return m.LastRunDocument{}, fmt.Errorf("read %s: %w", path, err)
	}

	var document m.LastRunDocument
	if err := format.unmarshal(data, &document); err != nil {
		return m.LastRunDocument{}, fmt.Errorf("decode %s: %w", path, err)
	}

	return document, nil
}
