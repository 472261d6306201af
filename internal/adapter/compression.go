package adapter

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

// Compression is the encoding of a stored file.
type Compression int

// Supported encodings.
const (
	Uncompressed Compression = iota
	Gzip
	Xz
)

var (
	gzipMagic = []byte{0x1F, 0x8B}
	xzMagic   = []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}
)

// DetectCompression guesses the encoding of data from its magic bytes.
func DetectCompression(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, xzMagic):
		return Xz
	case bytes.HasPrefix(data, gzipMagic):
		return Gzip
	default:
		return Uncompressed
	}
}

func (c Compression) String() string {
	switch c {
	case Uncompressed:
		return "none"
	case Gzip:
		return "gzip"
	case Xz:
		return "xz"
	}

	return "unknown"
}

// decompress returns the decoded contents of data.
func decompress(data []byte) ([]byte, error) {
	var (
		reader io.Reader
		err    error
	)

	switch DetectCompression(data) {
	case Xz:
		reader, err = xz.NewReader(bytes.NewReader(data))
	case Gzip:
		reader, err = gzip.NewReader(bytes.NewReader(data))
	case Uncompressed:
		return data, nil
	}

	if err != nil {
		return nil, err
	}

	return io.ReadAll(reader)
}

// readMaybeCompressed reads a file and decodes it if it is xz or gzip compressed.
func readMaybeCompressed(path m.Path) ([]byte, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	return decompress(data)
}

// compressXz encodes data as an xz stream.
func compressXz(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	writer, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("create xz writer: %w", err)
	}

	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close xz writer: %w", err)
	}

	return buf.Bytes(), nil
}
