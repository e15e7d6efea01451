// Package tokenize rewrites the hard-coded colors and fonts of a curated
// template into brand design tokens so a skin can restyle it.
package tokenize

import (
	"cmp"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Design tokens written into tokenized markup.
const (
	TokenBG        = "{brandBG}"
	TokenText      = "{brandText}"
	TokenPrimary   = "{brandPrimary}"
	TokenSecondary = "{brandSecondary}"
	TokenAccent    = "{brandAccent}"
	TokenFont      = "{brandFont}"
)

// Color usage contexts.
const (
	ContextBackground = "background"
	ContextText       = "text"
	ContextButton     = "button"
)

var (
	bgColorRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)background[-\s]*color\s*:\s*(#[0-9a-f]{3,6})`),
		regexp.MustCompile(`(?i)background\s*:\s*(#[0-9a-f]{3,6})`),
		regexp.MustCompile(`(?i)bgcolor\s*=\s*["']?(#[0-9a-f]{3,6})`),
	}
	// A non-empty first group marks a background-color declaration, which
	// the background patterns already counted.
	textColorRe = regexp.MustCompile(`(?i)(background-)?color\s*:\s*(#[0-9a-f]{3,6})`)

	buttonColorRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<a[^>]*style\s*=\s*["'][^"']*background[-\s]*color\s*:\s*(#[0-9a-f]{3,6})`),
		regexp.MustCompile(`(?i)<a[^>]*style\s*=\s*["'][^"']*background\s*:\s*(#[0-9a-f]{3,6})`),
		regexp.MustCompile(`(?i)class\s*=\s*["'][^"']*(?:btn|button|cta)[^"']*["'][^>]*style\s*=\s*["'][^"']*(?:background|bgcolor)\s*[:\s=]\s*(#[0-9a-f]{3,6})`),
	}

	// The optional ampersand keeps numeric character references intact.
	hexRe  = regexp.MustCompile(`(?i)(&?)#[0-9a-f]{3,6}\b`)
	fontRe = regexp.MustCompile(`(?i)font-family\s*:\s*([^;}"']+)`)
)

// Color is one distinct color found in a template.
type Color struct {
	Hex       string   `json:"hex"`
	Count     int      `json:"count"`
	Contexts  []string `json:"contexts"`
	Luminance float64  `json:"luminance"`
}

// Result is a tokenized template and what was replaced.
type Result struct {
	HTML         string            `json:"-"`
	Colors       []Color           `json:"original_colors"`
	ColorMapping map[string]string `json:"color_mapping"`
	Fonts        []string          `json:"original_fonts"`
	TokensUsed   []string          `json:"tokens_used"`
}

// NormalizeHex expands a 3 or 6 digit hex color to upper-case #RRGGBB.
func NormalizeHex(s string) (string, bool) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return "", false
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return "", false
	}
	return "#" + strings.ToUpper(h), true
}

// Luminance is the WCAG relative luminance of a #RRGGBB color, 0 for
// black and 1 for white. Unparseable input is treated as mid gray.
func Luminance(hex string) float64 {
	norm, ok := NormalizeHex(hex)
	if !ok {
		return 0.5
	}
	v, _ := strconv.ParseUint(norm[1:], 16, 32)
	channel := func(c uint64) float64 {
		x := float64(c) / 255
		if x <= 0.03928 {
			return x / 12.92
		}
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return 0.2126*channel(v>>16&0xff) + 0.7152*channel(v>>8&0xff) + 0.0722*channel(v&0xff)
}

type palette struct {
	order  []string
	byCode map[string]*Color
}

func (p *palette) add(raw, context string) {
	hex, ok := NormalizeHex(raw)
	if !ok {
		return
	}
	c, seen := p.byCode[hex]
	if !seen {
		c = &Color{Hex: hex, Luminance: Luminance(hex)}
		p.byCode[hex] = c
		p.order = append(p.order, hex)
	}
	c.Count++
	if !slices.Contains(c.Contexts, context) {
		c.Contexts = append(c.Contexts, context)
	}
}

func (p *palette) colors() []Color {
	out := make([]Color, 0, len(p.order))
	for _, hex := range p.order {
		out = append(out, *p.byCode[hex])
	}
	return out
}

// ExtractColors lists every background, text and button color in html in
// first-seen order. Each pattern hit adds one to the color's count.
func ExtractColors(html string) []Color {
	p := &palette{byCode: make(map[string]*Color)}
	for _, re := range bgColorRes {
		for _, m := range re.FindAllStringSubmatch(html, -1) {
			p.add(m[1], ContextBackground)
		}
	}
	for _, m := range textColorRe.FindAllStringSubmatch(html, -1) {
		if m[1] != "" {
			continue
		}
		p.add(m[2], ContextText)
	}
	for _, re := range buttonColorRes {
		for _, m := range re.FindAllStringSubmatch(html, -1) {
			p.add(m[1], ContextButton)
		}
	}
	return p.colors()
}

func mostUsed(colors []Color, keep func(Color) bool) (Color, bool) {
	var best Color
	found := false
	for _, c := range colors {
		if keep(c) && (!found || c.Count > best.Count) {
			best, found = c, true
		}
	}
	return best, found
}

// MapColors assigns brand tokens to extracted colors. The most used
// background becomes brandBG and the most used mid-luminance button color
// brandAccent. Text colors by use go to brandText when very dark or light,
// brandSecondary when mid-luminance and brandPrimary otherwise. Left over
// slots are filled from the remaining colors, skipping near black and
// near white.
func MapColors(colors []Color) map[string]string {
	mapping := make(map[string]string)
	used := make(map[string]bool)
	assign := func(hex, token string) {
		mapping[hex] = token
		used[token] = true
	}
	has := func(ctx string) func(Color) bool {
		return func(c Color) bool { return slices.Contains(c.Contexts, ctx) }
	}

	if bg, ok := mostUsed(colors, has(ContextBackground)); ok {
		assign(bg.Hex, TokenBG)
	}

	isButton := has(ContextButton)
	accent, ok := mostUsed(colors, func(c Color) bool {
		return isButton(c) && c.Luminance > 0.1 && c.Luminance < 0.9
	})
	if ok {
		if _, taken := mapping[accent.Hex]; !taken {
			assign(accent.Hex, TokenAccent)
		}
	}

	byUse := slices.Clone(colors)
	slices.SortStableFunc(byUse, func(a, b Color) int {
		return cmp.Compare(b.Count, a.Count)
	})

	isText := has(ContextText)
	for _, c := range byUse {
		if _, taken := mapping[c.Hex]; taken || !isText(c) {
			continue
		}
		switch {
		case !used[TokenText] && (c.Luminance < 0.2 || c.Luminance > 0.8):
			assign(c.Hex, TokenText)
		case !used[TokenSecondary] && c.Luminance > 0.3 && c.Luminance < 0.7:
			assign(c.Hex, TokenSecondary)
		case !used[TokenPrimary]:
			assign(c.Hex, TokenPrimary)
		}
	}

	for _, c := range byUse {
		if _, taken := mapping[c.Hex]; taken {
			continue
		}
		if c.Luminance < 0.05 || c.Luminance > 0.95 {
			continue
		}
		switch {
		case !used[TokenAccent] && c.Luminance > 0.2 && c.Luminance < 0.8:
			assign(c.Hex, TokenAccent)
		case !used[TokenPrimary]:
			assign(c.Hex, TokenPrimary)
		case !used[TokenSecondary]:
			assign(c.Hex, TokenSecondary)
		}
	}
	return mapping
}

// ExtractFonts returns the distinct font-family values in html. Values
// that already hold a token are skipped.
func ExtractFonts(html string) []string {
	var fonts []string
	for _, m := range fontRe.FindAllStringSubmatch(html, -1) {
		f := strings.TrimSpace(m[1])
		if f == "" || strings.Contains(f, "{") || slices.Contains(fonts, f) {
			continue
		}
		fonts = append(fonts, f)
	}
	return fonts
}

// ReplaceColors swaps every hex color whose normalized form is in mapping
// for its token, so #fff and #FFFFFF both match.
func ReplaceColors(html string, mapping map[string]string) string {
	if len(mapping) == 0 {
		return html
	}
	return hexRe.ReplaceAllStringFunc(html, func(m string) string {
		if strings.HasPrefix(m, "&") {
			return m
		}
		hex, ok := NormalizeHex(m)
		if !ok {
			return m
		}
		if token, ok := mapping[hex]; ok {
			return token
		}
		return m
	})
}

// Tokenize replaces colors and fonts with brand tokens and points external
// images at sized placeholders.
func Tokenize(html string) Result {
	colors := ExtractColors(html)
	mapping := MapColors(colors)
	fonts := ExtractFonts(html)

	out := ReplaceColors(html, mapping)
	for _, f := range fonts {
		out = strings.ReplaceAll(out, f, TokenFont)
	}
	out = FixImages(out)

	tokens := make([]string, 0, len(mapping)+1)
	for _, token := range mapping {
		if !slices.Contains(tokens, token) {
			tokens = append(tokens, token)
		}
	}
	if len(fonts) > 0 {
		tokens = append(tokens, TokenFont)
	}
	slices.Sort(tokens)

	if fonts == nil {
		fonts = []string{}
	}
	return Result{
		HTML:         out,
		Colors:       colors,
		ColorMapping: mapping,
		Fonts:        fonts,
		TokensUsed:   tokens,
	}
}
