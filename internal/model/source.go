package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// RunFile is a stored run found in the runs directory.
type RunFile struct {
	// Date is the file name without extensions, e.g. "2024-03-01".
	Date string
	Path Path
}

// NewRunFile derives the run date from the file name at path.
func NewRunFile(path Path) RunFile {
	base := filepath.Base(string(path))
	date, _, _ := strings.Cut(base, ".")

	return RunFile{Date: date, Path: path}
}

// ChunkFile is one shard report of a run that is being assembled.
type ChunkFile struct {
	Name string
	Path Path
}
