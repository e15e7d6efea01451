package curate

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// DefaultShingle is the tag window used for structural signatures.
const DefaultShingle = 4

var (
	blockOpenRe  = regexp.MustCompile(`(?is)<\s*(script|style)[^>]*>`)
	blockCloseRe = map[string]*regexp.Regexp{
		"script": regexp.MustCompile(`(?is)<\s*/\s*script\s*>`),
		"style":  regexp.MustCompile(`(?is)<\s*/\s*style\s*>`),
	}
	tagNameRe = regexp.MustCompile(`<\s*([a-zA-Z0-9]+)(?:\s|>)`)
)

// TagSequence returns the lowercase opening tag names of html in document
// order, ignoring the bodies of script and style blocks.
func TagSequence(html string) []string {
	stripped := stripBlocks(html)

	matches := tagNameRe.FindAllStringSubmatch(stripped, -1)
	seq := make([]string, 0, len(matches))
	for _, m := range matches {
		seq = append(seq, strings.ToLower(m[1]))
	}
	return seq
}

// stripBlocks blanks script and style blocks in one left-to-right pass: the
// earliest opening tag of either kind runs to the first closing tag of the
// same kind, so a block swallows any other opener inside it. An opener with
// no closing tag is left in place.
func stripBlocks(s string) string {
	var b strings.Builder
	for {
		open := blockOpenRe.FindStringSubmatchIndex(s)
		if open == nil {
			b.WriteString(s)
			return b.String()
		}

		name := strings.ToLower(s[open[2]:open[3]])
		end := blockCloseRe[name].FindStringIndex(s[open[1]:])
		if end == nil {
			b.WriteString(s[:open[1]])
			s = s[open[1]:]
			continue
		}

		b.WriteString(s[:open[0]])
		b.WriteByte(' ')
		s = s[open[1]+end[1]:]
	}
}

// StructureHash fingerprints the tag sequence of html with shingles of the
// given size. It reports false when the document has fewer tags than one
// shingle, in which case no signature exists.
func StructureHash(html string, shingle int) (string, bool) {
	if shingle <= 0 {
		shingle = DefaultShingle
	}

	seq := TagSequence(html)
	if len(seq) < shingle {
		return "", false
	}

	shingles := make([]string, 0, len(seq)-shingle+1)
	for i := 0; i+shingle <= len(seq); i++ {
		shingles = append(shingles, strings.Join(seq[i:i+shingle], "/"))
	}

	sum := sha256.Sum256([]byte(strings.Join(shingles, "|")))
	return hex.EncodeToString(sum[:]), true
}

// ContentHash is the sha256 of the raw document bytes.
func ContentHash(html string) string {
	sum := sha256.Sum256([]byte(html))
	return hex.EncodeToString(sum[:])
}
