// Package htmlcheck validates HTML email markup: tag balance, email client
// best practices, accessibility, mobile responsiveness and a textual
// contrast heuristic.
package htmlcheck

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// voidElements never get pushed onto the open-tag stack.
var voidElements = map[string]bool{
	"img": true, "br": true, "hr": true, "meta": true, "link": true,
	"input": true, "area": true, "base": true, "col": true, "embed": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Result is the outcome of validating one document. Valid is true iff
// Errors is empty; warnings never affect it.
type Result struct {
	Valid        bool     `json:"valid"`
	Errors       []string `json:"errors"`
	Warnings     []string `json:"warnings"`
	TemplateType string   `json:"template_type,omitempty"`
}

func newResult(errs, warnings []string) Result {
	if errs == nil {
		errs = []string{}
	}
	if warnings == nil {
		warnings = []string{}
	}
	return Result{Valid: len(errs) == 0, Errors: errs, Warnings: warnings}
}

// DefaultMaxBuf bounds a single token (tag, text run or comment) during
// validation. A token past it is a parse error.
const DefaultMaxBuf = 1 << 20

// StructureValidator checks tag balance with a streaming tokenizer.
type StructureValidator struct {
	// MaxBuf bounds the size of a single token. Zero means unbounded.
	MaxBuf int
}

// ValidateStructure runs a StructureValidator bounded by DefaultMaxBuf.
func ValidateStructure(s string) Result {
	return StructureValidator{MaxBuf: DefaultMaxBuf}.Validate(s)
}

// Validate never fails: parser problems become error entries and tags left
// open when parsing stops are reported as unclosed.
func (v StructureValidator) Validate(s string) Result {
	st := &tagStack{}
	if err := st.feed(s, v.MaxBuf); err != nil {
		st.errors = append(st.errors, parseErrorPrefix+": "+err.Error())
	}
	if len(st.open) > 0 {
		st.errors = append(st.errors, "Unclosed tags: "+strings.Join(st.open, ", "))
	}
	return newResult(st.errors, nil)
}

type tagStack struct {
	open   []string
	errors []string
}

func (st *tagStack) feed(s string, maxBuf int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	z := html.NewTokenizer(strings.NewReader(s))
	if maxBuf > 0 {
		z.SetMaxBuf(maxBuf)
	}
	for {
		switch z.Next() {
		case html.ErrorToken:
			if e := z.Err(); !errors.Is(e, io.EOF) {
				return e
			}
			return nil
		case html.StartTagToken:
			name, _ := z.TagName()
			st.start(string(name))
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			st.start(string(name))
			st.end(string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			st.end(string(name))
		}
	}
}

func (st *tagStack) start(tag string) {
	tag = strings.ToLower(tag)
	if voidElements[tag] {
		return
	}
	st.open = append(st.open, tag)
}

// end pops a matching tag. A closing tag buried deeper in the stack is
// reported and left alone; one that was never opened is ignored.
func (st *tagStack) end(tag string) {
	tag = strings.ToLower(tag)
	n := len(st.open)
	if n > 0 && st.open[n-1] == tag {
		st.open = st.open[:n-1]
		return
	}
	if slices.Contains(st.open, tag) {
		st.errors = append(st.errors, fmt.Sprintf("Mismatched tag: expected </%s>, got </%s>", st.open[n-1], tag))
	}
}
