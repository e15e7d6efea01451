// Package score computes the 0-100 template quality score from six
// weighted heuristic dimensions.
package score

import (
	"github.com/joeblew999/templateforge/pkg/document"
)

// Dimension maxima. They sum to 100.
const (
	MaxHierarchy      = 20
	MaxResponsiveness = 20
	MaxCodeSafety     = 20
	MaxAesthetics     = 20
	MaxContrast       = 10
	MaxTokenization   = 10
)

// Policy thresholds on the total score.
const (
	PassThreshold  = 85
	RetryThreshold = 75
)

// Dimension is one named scorer.
type Dimension struct {
	Name  string
	Max   int
	Score func(html string) (int, []string)
}

// Dimensions lists the scorers in evaluation order. Deductions in a Record
// follow this order.
var Dimensions = []Dimension{
	{Name: "hierarchy", Max: MaxHierarchy, Score: Hierarchy},
	{Name: "responsiveness", Max: MaxResponsiveness, Score: Responsiveness},
	{Name: "code_safety", Max: MaxCodeSafety, Score: CodeSafety},
	{Name: "aesthetics", Max: MaxAesthetics, Score: Aesthetics},
	{Name: "contrast", Max: MaxContrast, Score: Contrast},
	{Name: "tokenization", Max: MaxTokenization, Score: Tokenization},
}

// Record is the immutable result of scoring one document.
type Record struct {
	Total          int      `json:"total"`
	Hierarchy      int      `json:"hierarchy"`
	Responsiveness int      `json:"responsiveness"`
	CodeSafety     int      `json:"code_safety"`
	Aesthetics     int      `json:"aesthetics"`
	Contrast       int      `json:"contrast"`
	Tokenization   int      `json:"tokenization"`
	Deductions     []string `json:"deductions"`
	Grade          Grade    `json:"grade"`

	PassesThreshold bool `json:"passes_threshold"`
	NeedsRetry      bool `json:"needs_retry"`
	ShouldDrop      bool `json:"should_drop"`
}

// Score runs every dimension over the document and sums the result.
func Score(doc document.Document) Record {
	if doc.HTML == "" {
		rec := Record{Deductions: []string{"No HTML content"}}
		rec.finish()
		return rec
	}

	rec := Record{Deductions: []string{}}
	for _, dim := range Dimensions {
		points, deductions := dim.Score(doc.HTML)
		points = min(max(points, 0), dim.Max)
		rec.set(dim.Name, points)
		rec.Total += points
		for _, d := range deductions {
			rec.Deductions = append(rec.Deductions, "["+dim.Name+"] "+d)
		}
	}
	rec.finish()
	return rec
}

// Breakdown returns the per-dimension points keyed by dimension name.
func (r Record) Breakdown() map[string]int {
	return map[string]int{
		"hierarchy":      r.Hierarchy,
		"responsiveness": r.Responsiveness,
		"code_safety":    r.CodeSafety,
		"aesthetics":     r.Aesthetics,
		"contrast":       r.Contrast,
		"tokenization":   r.Tokenization,
	}
}

func (r *Record) set(name string, points int) {
	switch name {
	case "hierarchy":
		r.Hierarchy = points
	case "responsiveness":
		r.Responsiveness = points
	case "code_safety":
		r.CodeSafety = points
	case "aesthetics":
		r.Aesthetics = points
	case "contrast":
		r.Contrast = points
	case "tokenization":
		r.Tokenization = points
	}
}

func (r *Record) finish() {
	r.Grade = GradeFor(r.Total)
	r.PassesThreshold, r.NeedsRetry, r.ShouldDrop = Policy(r.Total)

	scoredDocuments.Inc(string(r.Grade))
	scoreTotal.Observe(int64(r.Total), string(r.Grade))
}

// Policy classifies a total: pass at PassThreshold and above, retry from
// RetryThreshold up to it, drop below. Exactly one result is true.
func Policy(total int) (pass, retry, drop bool) {
	pass = total >= PassThreshold
	retry = total >= RetryThreshold && !pass
	drop = total < RetryThreshold
	return pass, retry, drop
}
