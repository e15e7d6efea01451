// Package mjml compiles MJML sources in the template corpus to HTML so they
// can be scored alongside hand-written HTML templates.
package mjml

import (
	"crypto/sha256"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/preslavrachev/gomjml/mjml"
)

// Compiler converts MJML to HTML, optionally caching results by content.
type Compiler struct {
	cache   map[string]string
	mu      sync.RWMutex
	options *CompileOptions
}

// CompileOptions configures the compiler behavior
type CompileOptions struct {
	EnableCache bool // Cache compiled HTML keyed by source hash
	EnableDebug bool // Add debug attributes to HTML
}

// CompilerOption configures the compiler
type CompilerOption func(*CompileOptions)

// WithCache enables HTML output caching
func WithCache(enabled bool) CompilerOption {
	return func(opts *CompileOptions) {
		opts.EnableCache = enabled
	}
}

// WithDebug adds debug attributes to generated HTML
func WithDebug(enabled bool) CompilerOption {
	return func(opts *CompileOptions) {
		opts.EnableDebug = enabled
	}
}

// NewCompiler creates a compiler with the specified options
func NewCompiler(opts ...CompilerOption) *Compiler {
	options := &CompileOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return &Compiler{
		cache:   make(map[string]string),
		options: options,
	}
}

// CompileString converts MJML content to HTML.
func (c *Compiler) CompileString(source string) (string, error) {
	key := cacheKey(source)

	if c.options.EnableCache {
		c.mu.RLock()
		cached, found := c.cache[key]
		c.mu.RUnlock()
		if found {
			compileCacheHits.Inc()
			return cached, nil
		}
		compileCacheMisses.Inc()
	}

	start := time.Now()
	html, err := c.render(source)
	compileDuration.ObserveFloat(time.Since(start).Seconds(), resultLabel(err))
	if err != nil {
		return "", err
	}

	if c.options.EnableCache {
		c.mu.Lock()
		c.cache[key] = html
		c.mu.Unlock()
	}

	return html, nil
}

// CompileFile reads and compiles one .mjml file.
func (c *Compiler) CompileFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read mjml file %s: %w", path, err)
	}

	html, err := c.CompileString(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to compile %s: %w", path, err)
	}
	return html, nil
}

func (c *Compiler) render(source string) (string, error) {
	var mjmlOpts []mjml.RenderOption

	if c.options.EnableDebug {
		mjmlOpts = append(mjmlOpts, mjml.WithDebugTags(true))
	}

	if c.options.EnableCache {
		mjmlOpts = append(mjmlOpts, mjml.WithCache())
	}

	html, err := mjml.Render(source, mjmlOpts...)
	if err != nil {
		return "", fmt.Errorf("gomjml render failed: %w", err)
	}

	return html, nil
}

// CacheSize returns the number of cached HTML entries
func (c *Compiler) CacheSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.cache)
}

// ClearCache clears all cached HTML
func (c *Compiler) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[string]string)
}

// Stop releases the background AST cache janitor started by gomjml.
func (c *Compiler) Stop() {
	if c.options.EnableCache {
		mjml.StopASTCacheCleanup()
	}
}

// cacheKey is deterministic for identical sources.
func cacheKey(source string) string {
	sum := sha256.Sum256([]byte(source))
	return fmt.Sprintf("%x", sum[:8])
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
