package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

const sampleReport = `{
  "run_info": {"product": "servo", "revision": "0123456789abcdef", "browser_version": "Servo 0.0.1-abc123"},
  "results": [
    {"test": "/css/CSS2/floats/a.html", "status": "PASS", "subtests": []},
    {"test": "/streams/b.any.html", "status": "ERROR", "subtests": [
      {"name": "first", "status": "PASS"},
      {"name": "second", "status": "FAIL"}
    ]}
  ]
}`

func writeTestFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestLocalChunkSource_List(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "b.json"), []byte("{}"))
	writeTestFile(t, filepath.Join(dir, "a.json"), []byte("{}"))
	writeTestFile(t, filepath.Join(dir, ".DS_Store"), []byte("junk"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o750))

	chunks, err := NewLocalChunkSource().List(m.Path(dir))
	require.NoError(t, err)

	assert.Equal(t, []m.ChunkFile{
		{Name: "a.json", Path: m.Path(filepath.Join(dir, "a.json"))},
		{Name: "b.json", Path: m.Path(filepath.Join(dir, "b.json"))},
	}, chunks)
}

func TestLocalChunkSource_ListMissingDir(t *testing.T) {
	_, err := NewLocalChunkSource().List(m.Path(filepath.Join(t.TempDir(), "missing")))
	require.Error(t, err)
}

func TestLocalChunkSource_Read(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.json")
	compressed := filepath.Join(dir, "compressed.json.gz")

	writeTestFile(t, plain, []byte(sampleReport))
	writeTestFile(t, compressed, gzipBytes(t, []byte(sampleReport)))

	source := NewLocalChunkSource()

	for _, path := range []string{plain, compressed} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			report, err := source.Read(m.ChunkFile{Name: filepath.Base(path), Path: m.Path(path)})
			require.NoError(t, err)

			assert.Equal(t, "Servo 0.0.1-abc123", report.RunInfo.String(m.RunInfoBrowserVersion))
			require.Len(t, report.Results, 2)
			assert.Equal(t, "/css/CSS2/floats/a.html", report.Results[0].Test)
			assert.Equal(t, m.StatusPass, report.Results[0].Status)
			assert.Equal(t, []m.RawSubtest{
				{Name: "first", Status: m.StatusPass},
				{Name: "second", Status: m.StatusFail},
			}, report.Results[1].Subtests)
		})
	}
}

func TestLocalChunkSource_ReadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	writeTestFile(t, path, []byte("{not json"))

	_, err := NewLocalChunkSource().Read(m.ChunkFile{Name: "broken.json", Path: m.Path(path)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.json")
}
