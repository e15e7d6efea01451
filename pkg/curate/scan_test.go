package curate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return dir
}

func TestScan(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"b/promo.html":   layoutA,
		"a/welcome.html": layoutC,
		"notes.txt":      "not a template",
	})

	items, stats, err := NewScanner(nil, 2).Scan(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, Stats{Processed: 2, Scored: 2, Errored: 0}, stats)
	require.Len(t, items, 2)
	assert.Equal(t, "a/welcome.html", items[0].File)
	assert.Equal(t, "b/promo.html", items[1].File)
	assert.Equal(t, int64(len(layoutA)), items[1].Size)
}

func TestScanSkipsBrokenFiles(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"ok.html":     layoutA,
		"broken.mjml": "<mjml><mj-body><mj-section>",
	})

	items, stats, err := NewScanner(nil, 2).Scan(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, stats.Processed, stats.Scored+stats.Errored)

	var files []string
	for _, it := range items {
		files = append(files, it.File)
	}
	assert.Contains(t, files, "ok.html")
}

func TestScanSkipsUnreadableFiles(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"ok.html": layoutA,
	})
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing.html"), filepath.Join(dir, "gone.html")))

	items, stats, err := NewScanner(nil, 2).Scan(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, Stats{Processed: 2, Scored: 1, Errored: 1}, stats)
	require.Len(t, items, 1)
	assert.Equal(t, "ok.html", items[0].File)
}

func TestScanMissingDir(t *testing.T) {
	_, _, err := NewScanner(nil, 1).Scan(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
