package score

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/templateforge/pkg/autofix"
	"github.com/joeblew999/templateforge/pkg/document"
)

// plainWhite has no headline, no media queries, no DOCTYPE, no tokens and
// white text on a white background.
const plainWhite = `<html><body style="background-color: #fff"><p style="color: #fff">Hello</p></body></html>`

func TestScoreEmpty(t *testing.T) {
	rec := Score(document.Document{})
	assert.Equal(t, 0, rec.Total)
	assert.Equal(t, GradeF, rec.Grade)
	assert.Equal(t, []string{"No HTML content"}, rec.Deductions)
	assert.True(t, rec.ShouldDrop)
}

func TestScorePoorTemplate(t *testing.T) {
	rec := Score(document.Document{HTML: plainWhite})

	assert.LessOrEqual(t, rec.Hierarchy, 16)
	assert.LessOrEqual(t, rec.Responsiveness, 11)
	assert.LessOrEqual(t, rec.CodeSafety, 16)
	assert.LessOrEqual(t, rec.Contrast, 5)
	assert.LessOrEqual(t, rec.Tokenization, 5)
	assert.Equal(t, GradeF, rec.Grade)

	assert.Equal(t, 3, rec.Hierarchy)
	assert.Equal(t, 2, rec.Responsiveness)
	assert.Equal(t, 8, rec.CodeSafety)
	assert.Equal(t, 3, rec.Aesthetics)
	assert.Equal(t, 5, rec.Contrast)
	assert.Equal(t, 2, rec.Tokenization)
	assert.Equal(t, 23, rec.Total)

	assert.Contains(t, rec.Deductions, "[hierarchy] No <h1> headline")
	assert.Contains(t, rec.Deductions, "[contrast] White text on white background")
	assert.Contains(t, rec.Deductions, "[code_safety] Missing DOCTYPE")
}

func TestScoreDeductionOrder(t *testing.T) {
	rec := Score(document.Document{HTML: plainWhite})
	require.NotEmpty(t, rec.Deductions)

	last := -1
	for _, d := range rec.Deductions {
		idx := -1
		for i, dim := range Dimensions {
			if strings.HasPrefix(d, "["+dim.Name+"] ") {
				idx = i
				break
			}
		}
		require.NotEqual(t, -1, idx, d)
		assert.GreaterOrEqual(t, idx, last, d)
		last = idx
	}
}

func TestTokenizationFull(t *testing.T) {
	html := `<td style="font-family:{brandFont};color:{brandText};background:{brandBG}">` +
		`<a style="background:{brandPrimary};border-color:{brandSecondary};color:{brandAccent}" href="{{ctaUrl}}">{{ctaLabel}}</a>` +
		`<h1>{{headline}}</h1><p>{{bodyText}}</p></td>`

	points, deductions := Tokenization(html)
	assert.Equal(t, MaxTokenization, points)
	assert.Empty(t, deductions)
}

func TestTokenizationPartial(t *testing.T) {
	points, deductions := Tokenization(`<p style="color:{brandText}">{{headline}}</p>`)
	assert.Equal(t, 7, points)
	assert.Equal(t, []string{"Few brand tokens (1 of 6)", "Few content placeholders (1)"}, deductions)
}

func TestHierarchy(t *testing.T) {
	html := `<h1 style="font-size:32px;padding:8px">A</h1><h2 style="font-size:20px;padding:8px">B</h2>` +
		`<p style="padding:16px">C</p><a class="cta-button" href="#">Go</a>`
	points, deductions := Hierarchy(html)
	assert.Equal(t, MaxHierarchy, points)
	assert.Empty(t, deductions)

	points, deductions = Hierarchy(`<h1>A</h1><h1>B</h1>`)
	assert.Equal(t, 20-2-3-3-4-3, points)
	assert.Equal(t, "Multiple <h1> headlines (2)", deductions[0])
}

func TestContrast(t *testing.T) {
	t.Run("black on black", func(t *testing.T) {
		points, deductions := Contrast(`<td style="background-color:#000;color:#000">x</td>`)
		assert.Equal(t, 2, points)
		assert.Equal(t, []string{"Black text on black background", "Dark background without light text"}, deductions)
	})

	t.Run("light gray on white", func(t *testing.T) {
		points, deductions := Contrast(`<td style="background-color: #fff; color: #ccc">x</td>`)
		assert.Equal(t, 7, points)
		assert.Equal(t, []string{"Light gray text (#ccc) on white background"}, deductions)
	})

	t.Run("dark background without light text", func(t *testing.T) {
		points, _ := Contrast(`<td style="background-color: #0a0a0a; color: #333">x</td>`)
		assert.Equal(t, 7, points)
	})

	t.Run("dark background with brand tokens", func(t *testing.T) {
		points, deductions := Contrast(`<td style="background-color: #0a0a0a; color: {brandText}">x</td>`)
		assert.Equal(t, MaxContrast, points)
		assert.Empty(t, deductions)
	})
}

func TestScoreBounds(t *testing.T) {
	docs := []string{
		"x",
		"<p>",
		plainWhite,
		strings.Repeat(`<table><tr><td style="color:#123456">x</td></tr></table>`, 20),
	}
	for _, html := range docs {
		rec := Score(document.Document{HTML: html})
		assert.GreaterOrEqual(t, rec.Total, 0)
		assert.LessOrEqual(t, rec.Total, 100)

		sum := 0
		for _, dim := range Dimensions {
			points := rec.Breakdown()[dim.Name]
			assert.GreaterOrEqual(t, points, 0, dim.Name)
			assert.LessOrEqual(t, points, dim.Max, dim.Name)
			sum += points
		}
		assert.Equal(t, sum, rec.Total)
	}
}

func TestDimensionMaxima(t *testing.T) {
	total := 0
	for _, dim := range Dimensions {
		total += dim.Max
	}
	assert.Equal(t, 100, total)
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		total int
		want  Grade
	}{
		{100, GradeA}, {85, GradeA}, {84, GradeB}, {75, GradeB},
		{74, GradeC}, {65, GradeC}, {64, GradeF}, {0, GradeF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.total), "total %d", tt.total)
	}
}

func TestPolicy(t *testing.T) {
	for total := 0; total <= 100; total++ {
		pass, retry, drop := Policy(total)
		n := 0
		for _, b := range []bool{pass, retry, drop} {
			if b {
				n++
			}
		}
		assert.Equal(t, 1, n, "total %d", total)
	}

	pass, _, _ := Policy(85)
	assert.True(t, pass)
	_, retry, _ := Policy(75)
	assert.True(t, retry)
	_, _, drop := Policy(74)
	assert.True(t, drop)
}

func TestParseGrade(t *testing.T) {
	g, ok := ParseGrade("B")
	assert.True(t, ok)
	assert.Equal(t, GradeB, g)

	_, ok = ParseGrade("b")
	assert.False(t, ok)

	assert.Greater(t, GradeA.Rank(), GradeB.Rank())
	assert.Greater(t, GradeC.Rank(), GradeF.Rank())
}

func TestAutofixNeverLowersScore(t *testing.T) {
	html := `<html><body><table><tr><td><img src="a.jpg"></td></tr></table><table><tr><td>x</td></tr></table></body></html>`
	doc := document.Document{HTML: html}

	before := Score(doc)
	after := Score(autofix.Fix(doc))
	assert.GreaterOrEqual(t, after.Total, before.Total)
	assert.Greater(t, after.CodeSafety, before.CodeSafety)
}
