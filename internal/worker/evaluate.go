package worker

import (
	"github.com/joeblew999/templateforge/internal/model"
	"github.com/joeblew999/templateforge/pkg/autofix"
	"github.com/joeblew999/templateforge/pkg/curate"
	"github.com/joeblew999/templateforge/pkg/document"
	"github.com/joeblew999/templateforge/pkg/htmlcheck"
	"github.com/joeblew999/templateforge/pkg/score"
)

// Evaluation is the full result of processing one document.
type Evaluation struct {
	Document      document.Document
	Validation    htmlcheck.Result
	AppliedFixes  []string
	Score         score.Record
	ContentHash   string
	StructureHash string
}

// Evaluate validates doc, optionally auto-fixes it, then scores the result.
// Validation always reflects the markup as submitted.
func Evaluate(doc document.Document, fix bool) Evaluation {
	ev := Evaluation{Validation: htmlcheck.Validate(doc)}

	if fix {
		doc, ev.AppliedFixes = autofix.Apply(doc)
	}
	ev.Document = doc
	ev.Score = score.Score(doc)
	ev.ContentHash = curate.ContentHash(doc.HTML)
	ev.StructureHash, _ = curate.StructureHash(doc.HTML, curate.DefaultShingle)
	return ev
}

// Row converts the evaluation to a scored_templates row.
func (ev Evaluation) Row(id, jobID string) *model.ScoredTemplates {
	rec := ev.Score
	return &model.ScoredTemplates{
		Id:             id,
		JobId:          model.NullString(jobID),
		Type:           ev.Document.Type,
		Name:           ev.Document.Name,
		Skin:           ev.Document.Skin,
		Html:           ev.Document.HTML,
		AutoFixed:      model.BoolInt(ev.Document.AutoFixed),
		AppliedFixes:   model.EncodeList(ev.AppliedFixes),
		Total:          int64(rec.Total),
		Hierarchy:      int64(rec.Hierarchy),
		Responsiveness: int64(rec.Responsiveness),
		CodeSafety:     int64(rec.CodeSafety),
		Aesthetics:     int64(rec.Aesthetics),
		Contrast:       int64(rec.Contrast),
		Tokenization:   int64(rec.Tokenization),
		Grade:          string(rec.Grade),
		Deductions:     model.EncodeList(rec.Deductions),
		Valid:          model.BoolInt(ev.Validation.Valid),
		Errors:         model.EncodeList(ev.Validation.Errors),
		Warnings:       model.EncodeList(ev.Validation.Warnings),
		ContentHash:    ev.ContentHash,
		StructureHash:  ev.StructureHash,
	}
}
