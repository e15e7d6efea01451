package curate

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"

	"github.com/joeblew999/templateforge/pkg/mjml"
)

// Stats counts the outcome of one corpus scan.
type Stats struct {
	Processed int `json:"processed"`
	Scored    int `json:"scored"`
	Errored   int `json:"errored"`
}

// Scanner walks a compiled corpus directory and analyzes every template.
type Scanner struct {
	Compiler *mjml.Compiler
	Workers  int
}

// NewScanner creates a scanner. MJML sources are compiled with compiler;
// a nil compiler gets a caching one.
func NewScanner(compiler *mjml.Compiler, workers int) *Scanner {
	if compiler == nil {
		compiler = mjml.NewCompiler(mjml.WithCache(true))
	}
	if workers <= 0 {
		workers = 8
	}
	return &Scanner{Compiler: compiler, Workers: workers}
}

// Scan analyzes every *.html and *.mjml file under dir. A file that cannot
// be read or compiled is skipped and counted as errored. Items come back
// sorted by their slash-separated path relative to dir.
func (s *Scanner) Scan(ctx context.Context, dir string) ([]Item, Stats, error) {
	paths, err := corpusFiles(dir)
	if err != nil {
		return nil, Stats{}, err
	}

	var errored atomic.Int64
	items, err := mr.MapReduce(func(source chan<- string) {
		for _, p := range paths {
			source <- p
		}
	}, func(path string, writer mr.Writer[Item], cancel func(error)) {
		item, err := s.analyzeFile(dir, path)
		if err != nil {
			errored.Add(1)
			logx.WithContext(ctx).Errorw("skipping corpus file",
				logx.Field("file", path), logx.Field("error", err.Error()))
			return
		}
		writer.Write(item)
	}, func(pipe <-chan Item, writer mr.Writer[[]Item], cancel func(error)) {
		collected := make([]Item, 0, len(paths))
		for item := range pipe {
			collected = append(collected, item)
		}
		writer.Write(collected)
	}, mr.WithContext(ctx), mr.WithWorkers(s.Workers))
	if err != nil {
		return nil, Stats{}, err
	}

	slices.SortFunc(items, func(a, b Item) int {
		return strings.Compare(a.File, b.File)
	})

	stats := Stats{
		Processed: len(paths),
		Scored:    len(items),
		Errored:   int(errored.Load()),
	}
	return items, stats, nil
}

func (s *Scanner) analyzeFile(root, path string) (Item, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Item{}, err
	}

	var html string
	if strings.EqualFold(filepath.Ext(path), ".mjml") {
		html, err = s.Compiler.CompileFile(path)
		if err != nil {
			return Item{}, err
		}
	} else {
		content, err := os.ReadFile(path)
		if err != nil {
			return Item{}, err
		}
		html = string(content)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return Analyze(filepath.ToSlash(rel), html, info.Size()), nil
}

func corpusFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".html", ".mjml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(paths)
	return paths, nil
}
