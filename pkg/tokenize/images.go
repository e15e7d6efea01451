package tokenize

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// PlaceholderBase serves sized stand-in images.
const PlaceholderBase = "https://placehold.co"

// Placeholder size defaults and caps, in pixels.
const (
	DefaultImageWidth  = 300
	DefaultImageHeight = 200
	MaxImageWidth      = 640
	MaxImageHeight     = 480
)

const maxPlaceholderText = 20

var (
	imgTagRe    = regexp.MustCompile(`(?i)<img\b[^>]*>`)
	imgSrcRe    = regexp.MustCompile(`(?i)(\s)src\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s>]+))`)
	imgWidthRe  = regexp.MustCompile(`(?i)\swidth\s*=\s*["']?(\d+)`)
	imgHeightRe = regexp.MustCompile(`(?i)\sheight\s*=\s*["']?(\d+)`)
	imgAltRe    = regexp.MustCompile(`(?i)\salt\s*=\s*["']([^"']*)["']`)
)

// PlaceholderURL builds a placehold.co URL. Empty text gives a bare box.
func PlaceholderURL(width, height int, text string) string {
	u := fmt.Sprintf("%s/%dx%d/png", PlaceholderBase, width, height)
	if text == "" {
		return u
	}
	return u + "?text=" + url.QueryEscape(text)
}

// FixImages points every <img> at a placeholder sized from its width and
// height attributes and labelled with its alt text, or "Image" when it has
// none. Data URIs and existing placeholders are left alone.
func FixImages(html string) string {
	return imgTagRe.ReplaceAllStringFunc(html, fixImage)
}

func fixImage(tag string) string {
	loc := imgSrcRe.FindStringSubmatchIndex(tag)
	if loc == nil {
		return tag
	}

	var src string
	for g := 2; g <= 4; g++ {
		if loc[2*g] >= 0 {
			src = tag[loc[2*g]:loc[2*g+1]]
			break
		}
	}
	if strings.HasPrefix(src, "data:") || strings.Contains(strings.ToLower(src), "placehold") {
		return tag
	}

	width := min(dimension(imgWidthRe, tag, DefaultImageWidth), MaxImageWidth)
	height := min(dimension(imgHeightRe, tag, DefaultImageHeight), MaxImageHeight)

	text := "Image"
	if m := imgAltRe.FindStringSubmatch(tag); m != nil {
		text = m[1]
	}
	if r := []rune(text); len(r) > maxPlaceholderText {
		text = string(r[:maxPlaceholderText])
	}

	lead := tag[loc[2]:loc[3]]
	return tag[:loc[0]] + lead + `src="` + PlaceholderURL(width, height, text) + `"` + tag[loc[1]:]
}

func dimension(re *regexp.Regexp, tag string, fallback int) int {
	m := re.FindStringSubmatch(tag)
	if m == nil {
		return fallback
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return fallback
	}
	return n
}
