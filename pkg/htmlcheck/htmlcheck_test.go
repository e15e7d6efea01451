package htmlcheck

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/joeblew999/templateforge/pkg/document"
)

const minimalValid = `<!DOCTYPE html><html lang="en"><head><meta name="viewport" content="width=device-width"></head><body><p>Hi</p></body></html>`

func TestValidateStructure(t *testing.T) {
	tests := []struct {
		name   string
		html   string
		errors []string
	}{
		{name: "balanced", html: `<div><p>hi</p></div>`, errors: []string{}},
		{name: "void elements", html: `<p>a<br>b<img src="x.png"><hr></p>`, errors: []string{}},
		{name: "self closing", html: `<p><span/></p>`, errors: []string{}},
		{name: "stray close ignored", html: `<p>x</p></td>`, errors: []string{}},
		{name: "unclosed", html: `<table><tr><td>x`, errors: []string{"Unclosed tags: table, tr, td"}},
		{
			name: "mismatched",
			html: `<div><span></div>`,
			errors: []string{
				"Mismatched tag: expected </span>, got </div>",
				"Unclosed tags: div, span",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateStructure(tt.html)
			if diff := cmp.Diff(tt.errors, res.Errors); diff != "" {
				t.Errorf("errors mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.errors) == 0, res.Valid)
			assert.Empty(t, res.Warnings)
		})
	}
}

func TestValidateStructureParseError(t *testing.T) {
	markup := `<table><tr><td><img src="` + strings.Repeat("x", 40) + `"></td></tr></table>`

	res := StructureValidator{MaxBuf: 16}.Validate(markup)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{
		"HTML parsing error: " + html.ErrBufferExceeded.Error(),
		"Unclosed tags: table, tr, td",
	}, res.Errors)

	assert.True(t, StructureValidator{}.Validate(markup).Valid)
}

func TestValidate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		res := Validate(document.Document{})
		assert.False(t, res.Valid)
		assert.Equal(t, []string{"Template has no HTML content"}, res.Errors)
		assert.Equal(t, "unknown", res.TemplateType)
	})

	t.Run("minimal valid", func(t *testing.T) {
		res := Validate(document.Document{Type: "welcome", HTML: minimalValid})
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		assert.Equal(t, "welcome", res.TemplateType)
		assert.Contains(t, res.Warnings, "Missing preheader text")
		assert.Contains(t, res.Warnings, "Missing unsubscribe link")
	})

	t.Run("missing doctype and viewport", func(t *testing.T) {
		res := Validate(document.Document{HTML: `<html><body><p>x</p></body></html>`})
		assert.False(t, res.Valid)
		assert.Equal(t, []string{"Missing DOCTYPE declaration", "Missing viewport meta tag"}, res.Errors)
	})

	t.Run("warnings never fail", func(t *testing.T) {
		html := `<!DOCTYPE html><html><head><meta name="viewport"></head><body style="background-color: #fff">` +
			`<p style="color: #fff; display: flex">x</p><img src="a.png"><a href="#"></a></body></html>`
		res := Validate(document.Document{HTML: html})
		assert.True(t, res.Valid)
		assert.Contains(t, res.Warnings, "Image missing alt attribute")
		assert.Contains(t, res.Warnings, "Link with empty text")
		assert.Contains(t, res.Warnings, "Potential low contrast: white on white")
		assert.Contains(t, res.Warnings, "CSS flexbox not supported in many email clients")
		assert.Contains(t, res.Warnings, "Missing lang attribute on html element")
	})
}

func TestCheckAccessibility(t *testing.T) {
	html := `<img src="a.png" alt=""><img src="b.png"><a href="#">{{ctaLabel}}</a><a href="#">  </a>`
	assert.Equal(t, []string{"Image missing alt attribute", "Link with empty text"}, CheckAccessibility(html))
	assert.Empty(t, CheckAccessibility(`<a href="#">Read more</a>`))
}

func TestContrastHelpers(t *testing.T) {
	assert.True(t, WhiteOnWhite(`<td style="background-color: #fff; color: #fff">`))
	assert.False(t, WhiteOnWhite(`<td style="background-color: #fff; color: #333">`))
	assert.True(t, BlackOnBlack(`<td style="background:#000;color:#000">`))
	assert.False(t, BlackOnBlack(`<td style="background-color:#000">`))
}

func TestLangNearTop(t *testing.T) {
	assert.True(t, LangNearTop(`<html lang="en">`))
	assert.False(t, LangNearTop(`<html>`))

	padding := make([]byte, LangWindow)
	for i := range padding {
		padding[i] = ' '
	}
	assert.False(t, LangNearTop(string(padding)+`<html lang="en">`))
}

func TestHead(t *testing.T) {
	assert.Equal(t, "hé", Head("héllo", 2))
	assert.Equal(t, "ab", Head("ab", 10))
	assert.Equal(t, "", Head("abc", 0))
}

func TestValidateBatch(t *testing.T) {
	docs := []document.Document{
		{Type: "good", HTML: minimalValid},
		{Type: "bad", HTML: `<html><body><div></body></html>`},
		{ID: "empty"},
	}

	summary := ValidateBatch(docs)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Passed)
	assert.Equal(t, 3, summary.Fixed)
	assert.Equal(t, 0, summary.Errored)
	require.Len(t, summary.Issues, 2)
	assert.Equal(t, "bad", summary.Issues[0].Type)
	assert.Equal(t, "empty", summary.Issues[1].Type)
	assert.Equal(t, []string{"Template has no HTML content"}, summary.Issues[1].Errors)
}

func TestValidateBatchCountsParseErrors(t *testing.T) {
	oversized := `<!DOCTYPE html><html><head><meta name="viewport"></head><body><img alt="" src="` +
		strings.Repeat("a", DefaultMaxBuf) + `"></body></html>`
	docs := []document.Document{
		{Type: "good", HTML: minimalValid},
		{Type: "oversized", HTML: oversized},
	}

	summary := ValidateBatch(docs)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Passed)
	assert.Equal(t, 1, summary.Errored)
	require.Len(t, summary.Issues, 1)
	assert.Equal(t, "oversized", summary.Issues[0].Type)
	assert.Equal(t, "HTML parsing error: "+html.ErrBufferExceeded.Error(), summary.Issues[0].Errors[0])
	assert.Contains(t, summary.Issues[0].Errors, "Unclosed tags: html, body")
}

func TestValidateBatchEmpty(t *testing.T) {
	summary := ValidateBatch(nil)
	assert.Equal(t, BatchSummary{Issues: []Issue{}}, summary)
}
