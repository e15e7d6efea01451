package section

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/templateforge/pkg/htmlcheck"
)

func TestGet(t *testing.T) {
	s, ok := Get("hero")
	require.True(t, ok)
	assert.Equal(t, "Hero Section", s.Name)
	assert.Contains(t, s.HTML, "{{headline}}")
	assert.Contains(t, s.HTML, "{brandAccent}")

	_, ok = Get("carousel")
	assert.False(t, ok)
}

func TestNamesMatchLibrary(t *testing.T) {
	names := Names()
	assert.Len(t, names, len(All()))
	for _, n := range []string{"hero", "subhero", "1col_text", "cta_band", "header_nav", "divider", "spacer", "testimonial", "product_grid", "footer_simple"} {
		assert.Contains(t, names, n)
	}
}

func TestFragmentsAreBalanced(t *testing.T) {
	for _, s := range All() {
		t.Run(s.Type, func(t *testing.T) {
			res := htmlcheck.ValidateStructure(s.HTML)
			assert.True(t, res.Valid, "errors: %v", res.Errors)
			assert.True(t, strings.HasPrefix(strings.TrimSpace(s.HTML), "<table"))
		})
	}
}
