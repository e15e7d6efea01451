package autofix

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joeblew999/templateforge/pkg/document"
)

func TestFixHTML(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		applied []string
	}{
		{
			name:    "image alt",
			in:      `<img src="a.jpg">`,
			want:    `<img src="a.jpg" alt="">`,
			applied: []string{RuleImageAlt},
		},
		{
			name:    "self closed image",
			in:      `<img src="a.jpg" />`,
			want:    `<img src="a.jpg" alt="" />`,
			applied: []string{RuleImageAlt},
		},
		{
			name:    "existing alt kept",
			in:      `<img ALT="logo" src="a.jpg">`,
			want:    `<img ALT="logo" src="a.jpg">`,
			applied: nil,
		},
		{
			name:    "table role",
			in:      `<table width="600"><tr><td>x</td></tr></table><table role="presentation"></table>`,
			want:    `<table width="600" role="presentation"><tr><td>x</td></tr></table><table role="presentation"></table>`,
			applied: []string{RuleTablePresentation},
		},
		{
			name:    "html lang",
			in:      `<!DOCTYPE html><html><body></body></html>`,
			want:    `<!DOCTYPE html><html lang="en"><body></body></html>`,
			applied: []string{RuleHTMLLang},
		},
		{
			name:    "fragment gets no lang",
			in:      `<p>hi</p>`,
			want:    `<p>hi</p>`,
			applied: nil,
		},
		{
			name:    "all rules in order",
			in:      `<html><table><tr><td><img src="x"></td></tr></table></html>`,
			want:    `<html lang="en"><table role="presentation"><tr><td><img src="x" alt=""></td></tr></table></html>`,
			applied: []string{RuleImageAlt, RuleTablePresentation, RuleHTMLLang},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, applied := FixHTML(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.applied, applied)

			again, applied := FixHTML(got)
			assert.Equal(t, got, again)
			assert.Empty(t, applied)
		})
	}
}

func TestFix(t *testing.T) {
	doc := document.Document{Type: "promo", HTML: `<img src="a.jpg">`}

	fixed := Fix(doc)
	assert.Equal(t, `<img src="a.jpg" alt="">`, fixed.HTML)
	assert.True(t, fixed.AutoFixed)
	assert.Equal(t, "promo", fixed.Type)
	assert.False(t, doc.AutoFixed)

	assert.Equal(t, fixed, Fix(fixed))
}

func TestApplyEmpty(t *testing.T) {
	doc, applied := Apply(document.Document{ID: "x"})
	assert.Empty(t, applied)
	assert.Equal(t, document.Document{ID: "x"}, doc)
}
