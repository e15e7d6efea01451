package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/templateforge/pkg/score"
)

const branded = `<body style="background-color:#ffffff;font-family:Arial, sans-serif">` +
	`<table bgcolor="#ffffff"><tr><td style="color:#333333">Hi</td></tr>` +
	`<tr><td><a class="cta" style="background-color:#ff6600;color:#ffffff" href="#">Go</a></td></tr></table>` +
	`<p style="color:#888">muted</p></body>`

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#fff", "#FFFFFF", true},
		{"#1a2B3c", "#1A2B3C", true},
		{"abc", "#AABBCC", true},
		{"#abcd", "", false},
		{"#ggg", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeHex(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 1.0, Luminance("#fff"), 1e-9)
	assert.InDelta(t, 0.0, Luminance("#000000"), 1e-9)
	assert.InDelta(t, 0.3076, Luminance("#FF6600"), 1e-3)
	assert.InDelta(t, 0.0331, Luminance("#333333"), 1e-3)
	assert.Equal(t, 0.5, Luminance("nope"))
}

func TestExtractColors(t *testing.T) {
	colors := ExtractColors(branded)
	require.Len(t, colors, 4)

	assert.Equal(t, "#FFFFFF", colors[0].Hex)
	assert.Equal(t, 3, colors[0].Count)
	assert.Equal(t, []string{ContextBackground, ContextText}, colors[0].Contexts)

	assert.Equal(t, "#FF6600", colors[1].Hex)
	assert.Equal(t, 2, colors[1].Count)
	assert.Equal(t, []string{ContextBackground, ContextButton}, colors[1].Contexts)

	assert.Equal(t, "#333333", colors[2].Hex)
	assert.Equal(t, "#888888", colors[3].Hex)
	assert.Equal(t, []string{ContextText}, colors[3].Contexts)
}

func TestMapColors(t *testing.T) {
	mapping := MapColors(ExtractColors(branded))
	assert.Equal(t, map[string]string{
		"#FFFFFF": TokenBG,
		"#FF6600": TokenAccent,
		"#333333": TokenText,
		"#888888": TokenPrimary,
	}, mapping)

	assert.Empty(t, MapColors(nil))
}

func TestMapColorsFillsRemainingSlots(t *testing.T) {
	colors := []Color{
		{Hex: "#FFFFFF", Count: 4, Contexts: []string{ContextBackground}, Luminance: 1},
		{Hex: "#010101", Count: 3, Contexts: []string{"border"}, Luminance: 0.0003},
		{Hex: "#777777", Count: 2, Contexts: []string{"border"}, Luminance: 0.18},
		{Hex: "#AAAAAA", Count: 1, Contexts: []string{"border"}, Luminance: 0.4},
	}
	assert.Equal(t, map[string]string{
		"#FFFFFF": TokenBG,
		"#777777": TokenPrimary,
		"#AAAAAA": TokenAccent,
	}, MapColors(colors))
}

func TestTokenize(t *testing.T) {
	res := Tokenize(branded)

	want := `<body style="background-color:{brandBG};font-family:{brandFont}">` +
		`<table bgcolor="{brandBG}"><tr><td style="color:{brandText}">Hi</td></tr>` +
		`<tr><td><a class="cta" style="background-color:{brandAccent};color:{brandBG}" href="#">Go</a></td></tr></table>` +
		`<p style="color:{brandPrimary}">muted</p></body>`
	assert.Equal(t, want, res.HTML)
	assert.Equal(t, []string{"Arial, sans-serif"}, res.Fonts)
	assert.Equal(t, []string{TokenAccent, TokenBG, TokenFont, TokenPrimary, TokenText}, res.TokensUsed)

	before, _ := score.Tokenization(branded)
	after, _ := score.Tokenization(res.HTML)
	assert.Equal(t, 2, before)
	assert.Equal(t, 7, after)

	again := Tokenize(res.HTML)
	assert.Equal(t, res.HTML, again.HTML)
	assert.Empty(t, again.TokensUsed)
}

func TestReplaceColorsKeepsCharacterReferences(t *testing.T) {
	got := ReplaceColors(`<p style="color:#abc">&#ABC; #AABBCC</p>`, map[string]string{"#AABBCC": TokenText})
	assert.Equal(t, `<p style="color:{brandText}">&#ABC; {brandText}</p>`, got)
}

func TestFixImages(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "sized with alt",
			in:   `<img src="https://cdn.example.com/hero.jpg" width="600" height="300" alt="Spring sale">`,
			want: `<img src="https://placehold.co/600x300/png?text=Spring+sale" width="600" height="300" alt="Spring sale">`,
		},
		{
			name: "defaults",
			in:   `<img src='a.png'>`,
			want: `<img src="https://placehold.co/300x200/png?text=Image">`,
		},
		{
			name: "capped and blank alt",
			in:   `<img alt="" width="1200" height="900" src=hero.png />`,
			want: `<img alt="" width="1200" height="900" src="https://placehold.co/640x480/png" />`,
		},
		{
			name: "long alt truncated",
			in:   `<img src="x.png" alt="An extremely long description">`,
			want: `<img src="https://placehold.co/300x200/png?text=An+extremely+long+de" alt="An extremely long description">`,
		},
		{
			name: "data uri kept",
			in:   `<img src="data:image/png;base64,AAAA">`,
			want: `<img src="data:image/png;base64,AAAA">`,
		},
		{
			name: "placeholder kept",
			in:   `<img src="https://placehold.co/10x10/png">`,
			want: `<img src="https://placehold.co/10x10/png">`,
		},
		{
			name: "max-width ignored",
			in:   `<img style="max-width:100px" src="a.png" height="50">`,
			want: `<img style="max-width:100px" src="https://placehold.co/300x50/png?text=Image" height="50">`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FixImages(tt.in))
		})
	}
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, []string{CategoryTransactional}, Categorize(`<p>Your parcel has shipped</p>`, "receipt.html"))
	assert.Equal(t, []string{CategoryWelcome, CategoryPromo}, Categorize(`<h1>Welcome! Enjoy 20% OFF</h1>`, "w.html"))
	assert.Equal(t, []string{CategoryNewsletter}, Categorize(`<p>hello</p>`, "x.html"))
}
