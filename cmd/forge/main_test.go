package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/templateforge/pkg/curate"
)

const sample = `<!DOCTYPE html><html><head><meta name="viewport" content="width=device-width"></head>` +
	`<body><table><tr><td><img src="a.png"><h1>{{headline}}</h1></td></tr></table></body></html>`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScoreCommand(t *testing.T) {
	out, err := run(t, sample, "score", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "/100 grade")
	assert.Contains(t, out, "hierarchy")
	assert.Contains(t, out, "status")
}

func TestScoreCommandJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "welcome.html", sample)

	out, err := run(t, "", "score", "--fix", "--json", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"auto_fixed": true`)
	assert.Contains(t, out, `"grade"`)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.html", sample)
	bad := writeFile(t, dir, "bad.html", "<html><body><div></body></html>")

	out, err := run(t, "", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "good.html: ok")

	out, err = run(t, "", "validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "bad.html: FAIL")
}

func TestFixCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.html", sample)
	outPath := filepath.Join(dir, "out.html")

	_, err := run(t, "", "fix", in, "-o", outPath)
	require.NoError(t, err)

	fixed, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(fixed), `role="presentation"`)
	assert.Contains(t, string(fixed), `alt=""`)

	again, err := run(t, string(fixed), "fix", "-")
	require.NoError(t, err)
	assert.Equal(t, string(fixed), again)
}

func TestGenerateSingle(t *testing.T) {
	out, err := run(t, "", "generate", "--type", "welcome", "--skin", "linear_dark")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))

	_, err = run(t, "", "generate", "--type", "nope")
	assert.Error(t, err)
}

func TestGenerateBatch(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "batch.json")

	out, err := run(t, "", "generate", "-o", outPath, "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "templates written to")
	assert.FileExists(t, outPath)
}

func TestCurateCommand(t *testing.T) {
	corpus := t.TempDir()
	indexDir := t.TempDir()
	writeFile(t, corpus, "a.html", sample)
	writeFile(t, corpus, "nested/b.html", sample+"<!-- copy -->")
	writeFile(t, corpus, "tiny.html", "<p>x</p>")

	out, err := run(t, "", "curate", "--dir", corpus, "--out", indexDir, "--top", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Processed 3 files")

	items, err := curate.ReadIndex(filepath.Join(indexDir, "curated_top10.json"))
	require.NoError(t, err)
	// a.html and nested/b.html share a layout; tiny.html has no signature.
	require.Len(t, items, 1)

	scored, err := curate.ReadIndex(filepath.Join(indexDir, "templates_scored.json"))
	require.NoError(t, err)
	assert.Len(t, scored, 3)
}

func TestTokenizeCommand(t *testing.T) {
	corpus := t.TempDir()
	indexDir := t.TempDir()
	outDir := t.TempDir()
	branded := strings.Replace(sample, "<body>", `<body style="background-color:#ffffff;color:#222222">`, 1)
	writeFile(t, corpus, "welcome.html", branded)

	_, err := run(t, "", "curate", "--dir", corpus, "--out", indexDir, "--top", "5")
	require.NoError(t, err)

	out, err := run(t, "", "tokenize",
		"--index", filepath.Join(indexDir, "curated_top5.json"),
		"--dir", corpus,
		"--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Tokenized 1 of 1 templates (0 errored)")
	assert.Contains(t, out, "Welcome: 1")

	written, err := os.ReadFile(filepath.Join(outDir, "welcome.html"))
	require.NoError(t, err)
	assert.Contains(t, string(written), `<body style="background-color:{brandBG};color:{brandText}">`)
	assert.Contains(t, string(written), "https://placehold.co/300x200/png?text=Image")
	assert.FileExists(t, filepath.Join(outDir, "tokenized_index.json"))
}

func TestListCommands(t *testing.T) {
	out, err := run(t, "", "skins")
	require.NoError(t, err)
	assert.Contains(t, out, "apple_light")

	out, err = run(t, "", "types")
	require.NoError(t, err)
	assert.Contains(t, out, "newsletter")
}
