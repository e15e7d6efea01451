package tokenize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/templateforge/pkg/curate"
)

func TestRunnerRun(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "promo"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "promo", "sale.html"), []byte(branded), 0o644))

	items := []curate.Item{
		{File: "promo/sale.html", Score: 61},
		{File: "missing.html", Score: 90},
	}

	entries, stats, err := (&Runner{Workers: 2}).Run(context.Background(), src, out, items)
	require.NoError(t, err)
	assert.Equal(t, Stats{Processed: 2, Tokenized: 1, Errored: 1}, stats)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "promo/sale.html", e.File)
	assert.Equal(t, filepath.Join(out, "promo", "sale.html"), e.Output)
	assert.Equal(t, 61, e.OriginalScore)
	assert.Equal(t, TokenBG, e.ColorMapping["#FFFFFF"])
	assert.Contains(t, e.TokensUsed, TokenFont)
	assert.NotEmpty(t, e.Categories)

	written, err := os.ReadFile(e.Output)
	require.NoError(t, err)
	assert.Equal(t, Tokenize(branded).HTML, string(written))

	indexPath := filepath.Join(out, IndexName)
	require.NoError(t, WriteIndex(indexPath, entries))
	idx, err := ReadIndex(indexPath)
	require.NoError(t, err)
	assert.Equal(t, 1, idx.Count)
	assert.Equal(t, entries, idx.Items)
}

func TestWriteIndexEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", IndexName)
	require.NoError(t, WriteIndex(path, nil))

	idx, err := ReadIndex(path)
	require.NoError(t, err)
	assert.Equal(t, Index{Items: []Entry{}}, idx)
}
