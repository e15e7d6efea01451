// Package autofix deterministically repairs a fixed set of template defects.
// Every rule re-checks its precondition, so Fix(Fix(d)) == Fix(d).
package autofix

import (
	"regexp"
	"strings"

	"github.com/joeblew999/templateforge/pkg/document"
	"github.com/joeblew999/templateforge/pkg/htmlcheck"
)

// Rule names reported by FixHTML.
const (
	RuleImageAlt          = "image_alt"
	RuleTablePresentation = "table_presentation"
	RuleHTMLLang          = "html_lang"
)

var (
	imgTagRe   = regexp.MustCompile(`(?i)<img[^>]*>`)
	tableTagRe = regexp.MustCompile(`(?i)<table[^>]*>`)
	htmlTagRe  = regexp.MustCompile(`(?i)<html([^>]*)>`)
)

// Fix returns a copy of doc with its markup repaired and AutoFixed set.
// Empty documents are returned unchanged.
func Fix(doc document.Document) document.Document {
	fixed, _ := Apply(doc)
	return fixed
}

// Apply is Fix that also reports which rules changed the markup.
func Apply(doc document.Document) (document.Document, []string) {
	if doc.HTML == "" {
		return doc, nil
	}

	html, applied := FixHTML(doc.HTML)
	for _, rule := range applied {
		fixesApplied.Inc(rule)
	}

	doc.HTML = html
	doc.AutoFixed = true
	return doc, applied
}

// FixHTML applies the rules in order and returns the repaired markup with
// the names of the rules that changed something.
func FixHTML(s string) (string, []string) {
	var applied []string

	if out := addMissingAttr(imgTagRe, s, "alt=", `alt=""`); out != s {
		applied = append(applied, RuleImageAlt)
		s = out
	}

	if out := addMissingAttr(tableTagRe, s, "role=", `role="presentation"`); out != s {
		applied = append(applied, RuleTablePresentation)
		s = out
	}

	if out := addLang(s); out != s {
		applied = append(applied, RuleHTMLLang)
		s = out
	}

	return s, applied
}

// addMissingAttr inserts attr into every tag matched by re that does not
// already mention marker.
func addMissingAttr(re *regexp.Regexp, s, marker, attr string) string {
	return re.ReplaceAllStringFunc(s, func(tag string) string {
		if strings.Contains(strings.ToLower(tag), marker) {
			return tag
		}
		return insertBeforeClose(tag, attr)
	})
}

// insertBeforeClose places attr just before the closing > of tag, or before
// /> when the tag is self-closed.
func insertBeforeClose(tag, attr string) string {
	body := strings.TrimSuffix(tag, ">")
	if trimmed := strings.TrimRight(body, " \t\r\n"); strings.HasSuffix(trimmed, "/") {
		return strings.TrimRight(strings.TrimSuffix(trimmed, "/"), " \t\r\n") + " " + attr + " />"
	}
	return body + " " + attr + ">"
}

// addLang adds lang="en" to the first <html> tag when no lang= is found
// near the top of the document or on that tag.
func addLang(s string) string {
	if !htmlcheck.HasHTMLTag(strings.ToLower(s)) || htmlcheck.LangNearTop(s) {
		return s
	}

	loc := htmlTagRe.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	attrs := s[loc[2]:loc[3]]
	if strings.Contains(strings.ToLower(attrs), "lang=") {
		return s
	}
	return s[:loc[0]] + "<html" + attrs + ` lang="en">` + s[loc[1]:]
}
