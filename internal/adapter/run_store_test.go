package adapter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

func sampleRun() m.ProcessedRun {
	return m.ProcessedRun{
		RunInfo: m.RunInfo{
			m.RunInfoRevision:       "0123456789abcdef",
			m.RunInfoBrowserVersion: "0.0.1-abc123",
		},
		TestScores: map[string]m.TestScore{
			"/css/CSS2/floats/a.html": {Score: 1, Subtests: map[string]m.SubtestScore{}},
			"/streams/b.any.html": {Score: 0, Subtests: map[string]m.SubtestScore{
				"first":  {Score: 1},
				"second": {Score: 0},
			}},
		},
	}
}

func TestLocalRunStore_SaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runs")
	store := NewLocalRunStore()

	path, err := store.Save(m.Path(dir), "2024-03-01", sampleRun())
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(dir, "2024-03-01.xz")), path)

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, Xz, DetectCompression(data))

	loaded, err := store.Load(path)
	require.NoError(t, err)

	if diff := cmp.Diff(sampleRun(), loaded); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLocalRunStore_LoadLegacyEncodings(t *testing.T) {
	dir := t.TempDir()

	data, err := json.Marshal(sampleRun())
	require.NoError(t, err)

	plain := filepath.Join(dir, "2023-12-01.json")
	gzipped := filepath.Join(dir, "2023-12-02.gz")
	writeTestFile(t, plain, data)
	writeTestFile(t, gzipped, gzipBytes(t, data))

	store := NewLocalRunStore()

	for _, path := range []string{plain, gzipped} {
		loaded, err := store.Load(m.Path(path))
		require.NoError(t, err)
		assert.Len(t, loaded.TestScores, 2)
	}
}

func TestLocalRunStore_LoadWithoutScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2024-01-01.json")
	writeTestFile(t, path, []byte(`{"run_info":{}}`))

	loaded, err := NewLocalRunStore().Load(m.Path(path))
	require.NoError(t, err)
	assert.NotNil(t, loaded.TestScores)
	assert.Empty(t, loaded.TestScores)
}

func TestLocalRunStore_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalRunStore()

	_, err := store.Load(m.Path(filepath.Join(dir, "missing.xz")))
	require.Error(t, err)

	broken := filepath.Join(dir, "broken.json")
	writeTestFile(t, broken, []byte("[1, 2"))

	_, err = store.Load(m.Path(broken))
	require.Error(t, err)
}

func TestLocalRunStore_List(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"2024-01-02.xz", "2023-12-31.xz", "2024-01-01.xz", ".DS_Store"} {
		writeTestFile(t, filepath.Join(dir, name), []byte("x"))
	}

	require.NoError(t, os.Mkdir(filepath.Join(dir, "tmp"), 0o750))

	runs, err := NewLocalRunStore().List(m.Path(dir))
	require.NoError(t, err)

	dates := make([]string, 0, len(runs))
	for _, run := range runs {
		dates = append(dates, run.Date)
	}

	assert.Equal(t, []string{"2023-12-31", "2024-01-01", "2024-01-02"}, dates)
	assert.Equal(t, m.Path(filepath.Join(dir, "2023-12-31.xz")), runs[0].Path)
}

func TestLocalRunStore_ListMissingDir(t *testing.T) {
	_, err := NewLocalRunStore().List(m.Path(filepath.Join(t.TempDir(), "missing")))
	require.Error(t, err)
}
