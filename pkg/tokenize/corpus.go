package tokenize

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"

	"github.com/joeblew999/templateforge/pkg/curate"
	"github.com/joeblew999/templateforge/pkg/document"
	"github.com/joeblew999/templateforge/pkg/mjml"
	"github.com/joeblew999/templateforge/pkg/score"
)

// IndexName is the file written next to the tokenized templates.
const IndexName = "tokenized_index.json"

// Entry records one tokenized template.
type Entry struct {
	File          string            `json:"file"`
	Output        string            `json:"output_path"`
	Categories    []string          `json:"categories"`
	TokensUsed    []string          `json:"tokens_used"`
	ColorMapping  map[string]string `json:"color_mapping"`
	OriginalScore int               `json:"original_score"`
	Score         int               `json:"tokenized_score"`
	Grade         score.Grade       `json:"grade"`
}

// Index is the on-disk shape of tokenized_index.json.
type Index struct {
	Items []Entry `json:"items"`
	Count int     `json:"count"`
}

// Stats counts the outcome of one tokenize run.
type Stats struct {
	Processed int `json:"processed"`
	Tokenized int `json:"tokenized"`
	Errored   int `json:"errored"`
}

// Runner tokenizes the files behind a curated index.
type Runner struct {
	Compiler *mjml.Compiler
	Workers  int
}

// NewRunner creates a runner. A nil compiler gets a caching one.
func NewRunner(compiler *mjml.Compiler, workers int) *Runner {
	if compiler == nil {
		compiler = mjml.NewCompiler(mjml.WithCache(true))
	}
	if workers <= 0 {
		workers = 8
	}
	return &Runner{Compiler: compiler, Workers: workers}
}

// Run tokenizes each item's file under srcDir and writes the result to the
// same relative path under outDir, with .mjml sources written as .html.
// Files that cannot be read, compiled or written are skipped and counted as
// errored. Entries come back sorted by file.
func (r *Runner) Run(ctx context.Context, srcDir, outDir string, items []curate.Item) ([]Entry, Stats, error) {
	var errored atomic.Int64
	entries, err := mr.MapReduce(func(source chan<- curate.Item) {
		for _, it := range items {
			source <- it
		}
	}, func(item curate.Item, writer mr.Writer[Entry], cancel func(error)) {
		entry, err := r.tokenizeFile(srcDir, outDir, item)
		if err != nil {
			errored.Add(1)
			logx.WithContext(ctx).Errorw("skipping curated file",
				logx.Field("file", item.File), logx.Field("error", err.Error()))
			return
		}
		writer.Write(entry)
	}, func(pipe <-chan Entry, writer mr.Writer[[]Entry], cancel func(error)) {
		collected := make([]Entry, 0, len(items))
		for e := range pipe {
			collected = append(collected, e)
		}
		writer.Write(collected)
	}, mr.WithContext(ctx), mr.WithWorkers(r.Workers))
	if err != nil {
		return nil, Stats{}, err
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.File, b.File)
	})

	stats := Stats{
		Processed: len(items),
		Tokenized: len(entries),
		Errored:   int(errored.Load()),
	}
	return entries, stats, nil
}

func (r *Runner) tokenizeFile(srcDir, outDir string, item curate.Item) (Entry, error) {
	src := filepath.Join(srcDir, filepath.FromSlash(item.File))

	var html string
	if strings.EqualFold(filepath.Ext(src), ".mjml") {
		compiled, err := r.Compiler.CompileFile(src)
		if err != nil {
			return Entry{}, err
		}
		html = compiled
	} else {
		content, err := os.ReadFile(src)
		if err != nil {
			return Entry{}, err
		}
		html = string(content)
	}

	res := Tokenize(html)

	rel := filepath.FromSlash(item.File)
	if ext := filepath.Ext(rel); strings.EqualFold(ext, ".mjml") {
		rel = strings.TrimSuffix(rel, ext) + ".html"
	}
	out := filepath.Join(outDir, rel)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return Entry{}, err
	}
	if err := os.WriteFile(out, []byte(res.HTML), 0o644); err != nil {
		return Entry{}, err
	}

	rec := score.Score(document.Document{ID: item.File, HTML: res.HTML})
	return Entry{
		File:          item.File,
		Output:        out,
		Categories:    Categorize(html, filepath.Base(item.File)),
		TokensUsed:    res.TokensUsed,
		ColorMapping:  res.ColorMapping,
		OriginalScore: item.Score,
		Score:         rec.Total,
		Grade:         rec.Grade,
	}, nil
}

// WriteIndex writes entries to path as {"items": [...], "count": n}.
func WriteIndex(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create index dir: %w", err)
	}

	data, err := json.MarshalIndent(Index{Items: entries, Count: len(entries)}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write index %s: %w", path, err)
	}
	return nil
}

// ReadIndex loads an index written by WriteIndex.
func ReadIndex(path string) (Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Index{}, err
	}

	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return Index{}, fmt.Errorf("failed to decode index %s: %w", path, err)
	}
	return idx, nil
}
