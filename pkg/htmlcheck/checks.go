package htmlcheck

import (
	"regexp"
	"strings"
)

var (
	imgTagRe = regexp.MustCompile(`(?i)<img[^>]*>`)
	linkRe   = regexp.MustCompile(`(?i)<a\b[^>]*>([^<]*)</a>`)

	whiteTextRe = textColorRe("#fff")
	blackTextRe = textColorRe("#000")
	whiteBgRe   = regexp.MustCompile(`background(?:-color)?:\s?#fff`)
	blackBgRe   = regexp.MustCompile(`background(?:-color)?:\s?#000`)
)

// textColorRe matches a foreground color declaration; background-color
// never counts as text.
func textColorRe(hex string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^-])color:\s?` + hex)
}

// MobileClasses are the class names that mark mobile-specific styling.
var MobileClasses = []string{"mobile-full", "mobile-hide", "mobile-padding"}

// WhiteOnWhite reports a white text declaration alongside a white
// background declaration anywhere in the lowercased markup. It is a
// textual co-occurrence test, not a contrast computation.
func WhiteOnWhite(lower string) bool {
	return whiteTextRe.MatchString(lower) && whiteBgRe.MatchString(lower)
}

// BlackOnBlack is the black counterpart of WhiteOnWhite.
func BlackOnBlack(lower string) bool {
	return blackTextRe.MatchString(lower) && blackBgRe.MatchString(lower)
}

// TableCounts returns the number of <table tags and role="presentation"
// attributes in the markup.
func TableCounts(lower string) (tables, presentation int) {
	return strings.Count(lower, "<table"), strings.Count(lower, `role="presentation"`)
}

// CheckAccessibility flags images without alt and links without text.
func CheckAccessibility(s string) []string {
	var issues []string

	for _, img := range imgTagRe.FindAllString(s, -1) {
		if !strings.Contains(strings.ToLower(img), "alt=") {
			issues = append(issues, "Image missing alt attribute")
		}
	}

	for _, m := range linkRe.FindAllStringSubmatch(s, -1) {
		text := m[1]
		if strings.TrimSpace(text) == "" && !strings.Contains(text, "{{") {
			issues = append(issues, "Link with empty text")
		}
	}

	return issues
}

// CheckEmailBestPractices returns must-fix issues and soft warnings.
func CheckEmailBestPractices(s string) (issues, warnings []string) {
	lower := strings.ToLower(s)

	if !strings.Contains(lower, "max-width: 640px") && !strings.Contains(lower, "max-width:640px") &&
		!strings.Contains(lower, `width="640"`) {
		warnings = append(warnings, "Template may exceed 640px max width")
	}

	if tables, presentation := TableCounts(lower); tables > presentation {
		warnings = append(warnings, "Some tables missing role='presentation'")
	}

	if !strings.Contains(lower, "<!doctype") {
		issues = append(issues, "Missing DOCTYPE declaration")
	}

	if !strings.Contains(lower, "viewport") {
		issues = append(issues, "Missing viewport meta tag")
	}

	if !strings.Contains(lower, "lang=") {
		warnings = append(warnings, "Missing lang attribute on html element")
	}

	if !strings.Contains(lower, "preheader") {
		warnings = append(warnings, "Missing preheader text")
	}

	if !strings.Contains(lower, "unsubscribe") {
		warnings = append(warnings, "Missing unsubscribe link")
	}

	return issues, warnings
}

// CheckClientCompatibility flags CSS that common email clients drop.
func CheckClientCompatibility(s string) []string {
	var warnings []string
	lower := strings.ToLower(s)

	if strings.Contains(lower, "display: flex") || strings.Contains(lower, "display:flex") {
		warnings = append(warnings, "CSS flexbox not supported in many email clients")
	}

	if strings.Contains(lower, "background-image") && !strings.Contains(lower, "mso-hide") &&
		!strings.Contains(lower, "<!--[if mso") {
		warnings = append(warnings, "Background images not supported in Outlook")
	}

	return warnings
}

// CheckColorContrast is a simplified low-contrast check.
func CheckColorContrast(s string) []string {
	var warnings []string
	lower := strings.ToLower(s)

	if WhiteOnWhite(lower) {
		warnings = append(warnings, "Potential low contrast: white on white")
	}
	if BlackOnBlack(lower) {
		warnings = append(warnings, "Potential low contrast: black on black")
	}

	return warnings
}

// CheckMobileResponsiveness flags missing media queries and mobile styling.
func CheckMobileResponsiveness(s string) []string {
	var warnings []string
	lower := strings.ToLower(s)

	if !strings.Contains(lower, "@media") {
		warnings = append(warnings, "No media queries found for mobile responsiveness")
	}

	hasMobile := strings.Contains(lower, "max-width:")
	for _, class := range MobileClasses {
		if strings.Contains(lower, class) {
			hasMobile = true
			break
		}
	}
	if !hasMobile {
		warnings = append(warnings, "Limited mobile-responsive styling detected")
	}

	return warnings
}

// LangWindow is how far into the document a lang= attribute is looked for.
const LangWindow = 500

// HasHTMLTag reports whether the lowercased markup contains an <html tag.
func HasHTMLTag(lower string) bool {
	return strings.Contains(lower, "<html")
}

// LangNearTop reports whether lang= appears within the first LangWindow
// characters of s.
func LangNearTop(s string) bool {
	return strings.Contains(strings.ToLower(Head(s, LangWindow)), "lang=")
}

// Head returns the first n characters (runes) of s.
func Head(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
