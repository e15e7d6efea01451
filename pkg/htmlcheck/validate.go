package htmlcheck

import (
	"fmt"
	"strings"

	"github.com/joeblew999/templateforge/pkg/document"
	"github.com/joeblew999/templateforge/pkg/log"
)

const parseErrorPrefix = "HTML parsing error"

// Validate runs the structure validator and every extractor over one
// document. Structural errors and missing DOCTYPE/viewport are errors;
// everything else is a warning.
func Validate(doc document.Document) Result {
	if doc.HTML == "" {
		res := newResult([]string{"Template has no HTML content"}, nil)
		res.TemplateType = doc.Label()
		return res
	}

	structure := ValidateStructure(doc.HTML)
	bpIssues, bpWarnings := CheckEmailBestPractices(doc.HTML)

	errs := append(structure.Errors, bpIssues...)

	var warnings []string
	warnings = append(warnings, structure.Warnings...)
	warnings = append(warnings, CheckAccessibility(doc.HTML)...)
	warnings = append(warnings, bpWarnings...)
	warnings = append(warnings, CheckColorContrast(doc.HTML)...)
	warnings = append(warnings, CheckMobileResponsiveness(doc.HTML)...)
	warnings = append(warnings, CheckClientCompatibility(doc.HTML)...)

	res := newResult(errs, warnings)
	res.TemplateType = doc.Label()
	return res
}

// Issue describes one document that failed validation.
type Issue struct {
	Type     string   `json:"type"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// BatchSummary aggregates validation over many documents.
type BatchSummary struct {
	Total   int     `json:"total"`
	Passed  int     `json:"passed"`
	Fixed   int     `json:"fixed"`
	Errored int     `json:"errored"`
	Issues  []Issue `json:"issues"`
}

// ValidateBatch validates every document. A document that cannot be
// evaluated is counted as errored and reported as an issue; it never stops
// the batch. Every document counts as fixed because every document can go
// through the auto-fixer.
func ValidateBatch(docs []document.Document) BatchSummary {
	summary := BatchSummary{Total: len(docs), Issues: []Issue{}}

	for _, doc := range docs {
		res, err := safeValidate(doc)
		if err != nil {
			log.Warn("Validation aborted", "template", doc.Label(), "error", err)
			summary.Errored++
			summary.Issues = append(summary.Issues, Issue{
				Type:     doc.Label(),
				Errors:   []string{err.Error()},
				Warnings: []string{},
			})
			summary.Fixed++
			continue
		}

		if hasParseError(res.Errors) {
			summary.Errored++
		}
		if res.Valid {
			summary.Passed++
		} else {
			summary.Issues = append(summary.Issues, Issue{
				Type:     res.TemplateType,
				Errors:   res.Errors,
				Warnings: res.Warnings,
			})
		}
		summary.Fixed++
	}

	log.Debug("Batch validated", "total", summary.Total, "passed", summary.Passed, "errored", summary.Errored)
	return summary
}

func safeValidate(doc document.Document) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("validation failed: %v", r)
		}
	}()
	return Validate(doc), nil
}

func hasParseError(errs []string) bool {
	for _, e := range errs {
		if strings.HasPrefix(e, parseErrorPrefix) {
			return true
		}
	}
	return false
}
