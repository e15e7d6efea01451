package mjml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleMJML = `<mjml>
	<mj-head><mj-title>{{headline}}</mj-title></mj-head>
	<mj-body>
		<mj-section>
			<mj-column>
				<mj-text>Hello {{headline}}</mj-text>
				<mj-button href="{{ctaUrl}}">{{ctaLabel}}</mj-button>
			</mj-column>
		</mj-section>
	</mj-body>
</mjml>`

func TestCompilerOptions(t *testing.T) {
	c := NewCompiler(WithCache(true), WithDebug(true))
	require.NotNil(t, c)
	assert.True(t, c.options.EnableCache)
	assert.True(t, c.options.EnableDebug)

	plain := NewCompiler()
	assert.False(t, plain.options.EnableCache)
}

func TestCompileString(t *testing.T) {
	c := NewCompiler()

	html, err := c.CompileString(simpleMJML)
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(html), "<!doctype html>")
	assert.Contains(t, html, "{{ctaLabel}}")
}

func TestCompileCache(t *testing.T) {
	c := NewCompiler(WithCache(true))
	t.Cleanup(c.Stop)

	first, err := c.CompileString(simpleMJML)
	require.NoError(t, err)
	assert.Equal(t, 1, c.CacheSize())

	second, err := c.CompileString(simpleMJML)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.CacheSize())

	c.ClearCache()
	assert.Equal(t, 0, c.CacheSize())
}

func TestCompileFile(t *testing.T) {
	c := NewCompiler()

	path := filepath.Join(t.TempDir(), "promo.mjml")
	require.NoError(t, os.WriteFile(path, []byte(simpleMJML), 0o644))

	html, err := c.CompileFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, html)

	_, err = c.CompileFile(filepath.Join(t.TempDir(), "missing.mjml"))
	assert.Error(t, err)
}

func TestCacheKeyDeterministic(t *testing.T) {
	assert.Equal(t, cacheKey(simpleMJML), cacheKey(simpleMJML))
	assert.NotEqual(t, cacheKey(simpleMJML), cacheKey(simpleMJML+" "))
}
