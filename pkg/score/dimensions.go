package score

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/joeblew999/templateforge/pkg/htmlcheck"
)

// BrandTokens are the skin tokens substituted by a design skin.
var BrandTokens = []string{
	"{brandFont}", "{brandPrimary}", "{brandSecondary}",
	"{brandText}", "{brandAccent}", "{brandBG}",
}

// ContentPlaceholders are the copy slots filled at send time.
var ContentPlaceholders = []string{
	"{{headline}}", "{{subheadline}}", "{{bodyText}}",
	"{{ctaLabel}}", "{{ctaUrl}}", "{{preheader}}",
}

var lightGrays = []string{"#eee", "#eeeeee", "#ddd", "#dddddd", "#ccc", "#cccccc", "#e5e5e5", "#f0f0f0"}

var (
	h1Re          = regexp.MustCompile(`<h1[\s>]`)
	subheadRe     = regexp.MustCompile(`<h[23][\s>]`)
	paddingDeclRe = regexp.MustCompile(`padding\s*:`)
	paddingPxRe   = regexp.MustCompile(`padding\s*:\s*(\d+)px`)
	ctaClassRe    = regexp.MustCompile(`class\s*=\s*["'][^"']*(?:cta|button)[^"']*["']`)
	ctaAnchorRe   = regexp.MustCompile(`<a\b[^>]*style\s*=\s*["'][^"']*padding`)
	fontSizeRe    = regexp.MustCompile(`font-size\s*:\s*([^;"'}!]+)`)
	fontWeightRe  = regexp.MustCompile(`font-weight\s*:\s*([^;"'}!]+)`)
	fluidImageRe  = regexp.MustCompile(`width\s*:\s*100%|width="100%"`)
	msoRe         = regexp.MustCompile(`\[if\s[^\]]*mso`)
	tableTagRe    = regexp.MustCompile(`<table\b[^>]*>`)
	hexColorRe    = regexp.MustCompile(`color\s*:\s*#[0-9a-f]{3,8}\b`)
	darkBgRe      = regexp.MustCompile(`background-color:\s?#0`)
	lightTextRe   = regexp.MustCompile(`(?:^|[^-])color:\s?#[ef]`)
	whiteBgRe     = regexp.MustCompile(`background(?:-color)?:\s?#fff`)
	lightGrayRes  = grayPatterns(lightGrays)
)

func grayPatterns(grays []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(grays))
	for i, g := range grays {
		res[i] = regexp.MustCompile(`(?:^|[^-])color:\s?` + regexp.QuoteMeta(g) + `\b`)
	}
	return res
}

// tally accumulates deductions from a starting maximum.
type tally struct {
	points     int
	deductions []string
}

func newTally(ceiling int) *tally {
	return &tally{points: ceiling}
}

func (t *tally) deduct(points int, format string, args ...any) {
	t.points -= points
	t.deductions = append(t.deductions, fmt.Sprintf(format, args...))
}

func (t *tally) result() (int, []string) {
	return max(0, t.points), t.deductions
}

func distinctValues(re *regexp.Regexp, s string) int {
	seen := make(map[string]bool)
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		seen[strings.TrimSpace(m[1])] = true
	}
	return len(seen)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func countPresent(s string, subs []string) int {
	n := 0
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			n++
		}
	}
	return n
}

// Hierarchy scores headline structure, spacing, CTA presence and type scale.
func Hierarchy(s string) (int, []string) {
	lower := strings.ToLower(s)
	t := newTally(MaxHierarchy)

	switch h1 := len(h1Re.FindAllStringIndex(lower, -1)); {
	case h1 == 0:
		t.deduct(4, "No <h1> headline")
	case h1 > 1:
		t.deduct(2, "Multiple <h1> headlines (%d)", h1)
	}

	if !subheadRe.MatchString(lower) {
		t.deduct(3, "No <h2>/<h3> subheadings")
	}

	if n := len(paddingDeclRe.FindAllStringIndex(lower, -1)); n < 3 {
		t.deduct(3, "Too few padding declarations (%d)", n)
	}

	if !ctaClassRe.MatchString(lower) && !ctaAnchorRe.MatchString(lower) {
		t.deduct(4, "No call-to-action button found")
	}

	if n := distinctValues(fontSizeRe, lower); n < 2 {
		t.deduct(3, "Flat type scale (%d distinct font-size values)", n)
	}

	return t.result()
}

// Responsiveness scores media queries, the 640px container and fluid media.
func Responsiveness(s string) (int, []string) {
	lower := strings.ToLower(s)
	t := newTally(MaxResponsiveness)

	if !strings.Contains(lower, "@media") {
		t.deduct(6, "No @media queries")
	} else if !containsAny(lower, "600px", "480px", "375px") {
		t.deduct(2, "No standard mobile breakpoint (600px/480px/375px)")
	}

	if !containsAny(lower, "max-width: 640px", "max-width:640px") {
		t.deduct(3, "No max-width: 640px container")
	}

	if countPresent(lower, htmlcheck.MobileClasses) == 0 {
		t.deduct(3, "No mobile utility classes")
	}

	if !fluidImageRe.MatchString(lower) {
		t.deduct(3, "No fluid image widths")
	}

	if !strings.Contains(lower, "viewport") {
		t.deduct(3, "No viewport meta tag")
	}

	return t.result()
}

// CodeSafety scores email-client-safe markup conventions.
func CodeSafety(s string) (int, []string) {
	lower := strings.ToLower(s)
	t := newTally(MaxCodeSafety)

	if !strings.Contains(lower, "<!doctype") {
		t.deduct(4, "Missing DOCTYPE")
	}

	if tables, presentation := htmlcheck.TableCounts(lower); tables > presentation {
		missing := tables - presentation
		t.deduct(min(3, missing), "%d table(s) missing role=\"presentation\"", missing)
	}

	if !msoRe.MatchString(lower) {
		t.deduct(3, "No MSO conditional comments")
	}

	if n := strings.Count(lower, "style="); n < 5 {
		t.deduct(3, "Too few inline styles (%d)", n)
	}

	var noSpacing, noBorder bool
	for _, tag := range tableTagRe.FindAllString(lower, -1) {
		if !strings.Contains(tag, "cellpadding") && !strings.Contains(tag, "cellspacing") {
			noSpacing = true
		}
		if !strings.Contains(tag, `border="0"`) {
			noBorder = true
		}
	}
	if noSpacing {
		t.deduct(2, "Table without cellpadding/cellspacing")
	}
	if noBorder {
		t.deduct(2, "Table without border=\"0\"")
	}

	if htmlcheck.HasHTMLTag(lower) && !htmlcheck.LangNearTop(s) {
		t.deduct(2, "Missing lang attribute")
	}

	return t.result()
}

// Aesthetics scores spacing rhythm, typography polish and section framing.
func Aesthetics(s string) (int, []string) {
	lower := strings.ToLower(s)
	t := newTally(MaxAesthetics)

	paddings := paddingPxRe.FindAllStringSubmatch(lower, -1)
	offGrid := 0
	for _, m := range paddings {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 4 && n%4 != 0 {
			offGrid++
		}
	}
	if len(paddings) > 0 && offGrid*3 > len(paddings) {
		t.deduct(3, "Spacing off the 4px grid (%d of %d padding values)", offGrid, len(paddings))
	}

	if !strings.Contains(lower, "border-radius") {
		t.deduct(2, "No border-radius")
	}

	if !strings.Contains(lower, "line-height") {
		t.deduct(3, "No line-height")
	}

	if n := distinctValues(fontWeightRe, lower); n < 2 {
		t.deduct(2, "Flat font weights (%d distinct values)", n)
	}

	if !strings.Contains(lower, "letter-spacing") {
		t.deduct(2, "No letter-spacing")
	}

	if !containsAny(lower, "unsubscribe", "footer") {
		t.deduct(4, "No footer or unsubscribe section")
	}

	if n := countPresent(lower, []string{"<hr", "border-top", "border-bottom", "background-color"}); n < 2 {
		t.deduct(2, "Weak section separation")
	}

	if !strings.Contains(lower, "preheader") {
		t.deduct(2, "No preheader")
	}

	return t.result()
}

// Contrast is a textual heuristic over color declarations. It does not
// compute luminance.
func Contrast(s string) (int, []string) {
	lower := strings.ToLower(s)
	t := newTally(MaxContrast)

	if !hexColorRe.MatchString(lower) {
		t.deduct(3, "No explicit hex color declarations")
	}

	if htmlcheck.WhiteOnWhite(lower) {
		t.deduct(5, "White text on white background")
	}

	if htmlcheck.BlackOnBlack(lower) {
		t.deduct(5, "Black text on black background")
	}

	if whiteBgRe.MatchString(lower) {
		for i, re := range lightGrayRes {
			if re.MatchString(lower) {
				t.deduct(3, "Light gray text (%s) on white background", lightGrays[i])
				break
			}
		}
	}

	if countPresent(s, BrandTokens) == 0 && darkBgRe.MatchString(lower) && !lightTextRe.MatchString(lower) {
		t.deduct(3, "Dark background without light text")
	}

	return t.result()
}

// Tokenization scores how much of the template is driven by brand tokens
// and content placeholders instead of hardcoded values.
func Tokenization(s string) (int, []string) {
	t := newTally(MaxTokenization)

	switch n := countPresent(s, BrandTokens); {
	case n == 0:
		t.deduct(5, "No brand tokens")
	case n < 3:
		t.deduct(2, "Few brand tokens (%d of %d)", n, len(BrandTokens))
	}

	switch n := countPresent(s, ContentPlaceholders); {
	case n == 0:
		t.deduct(3, "No content placeholders")
	case n < 2:
		t.deduct(1, "Few content placeholders (%d)", n)
	}

	if n := len(hexColorRe.FindAllStringIndex(strings.ToLower(s), -1)); n > 10 {
		t.deduct(2, "Too many hardcoded hex colors (%d)", n)
	}

	return t.result()
}
