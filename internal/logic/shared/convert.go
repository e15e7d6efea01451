// Package shared converts domain results into API types.
package shared

import (
	"time"

	"github.com/joeblew999/templateforge/internal/model"
	"github.com/joeblew999/templateforge/internal/types"
	"github.com/joeblew999/templateforge/pkg/forge"
	"github.com/joeblew999/templateforge/pkg/htmlcheck"
	"github.com/joeblew999/templateforge/pkg/score"
	"github.com/joeblew999/templateforge/pkg/skin"
)

// MaxListLimit caps list endpoints.
const MaxListLimit = 500

// ScoreCard converts a score record.
func ScoreCard(rec score.Record) types.ScoreCard {
	deductions := rec.Deductions
	if deductions == nil {
		deductions = []string{}
	}
	return types.ScoreCard{
		Total:           rec.Total,
		Hierarchy:       rec.Hierarchy,
		Responsiveness:  rec.Responsiveness,
		CodeSafety:      rec.CodeSafety,
		Aesthetics:      rec.Aesthetics,
		Contrast:        rec.Contrast,
		Tokenization:    rec.Tokenization,
		Grade:           string(rec.Grade),
		Deductions:      deductions,
		PassesThreshold: rec.PassesThreshold,
		NeedsRetry:      rec.NeedsRetry,
		ShouldDrop:      rec.ShouldDrop,
	}
}

// Validation converts a validation result.
func Validation(res htmlcheck.Result) types.Validation {
	return types.Validation{
		Valid:        res.Valid,
		Errors:       orEmpty(res.Errors),
		Warnings:     orEmpty(res.Warnings),
		TemplateType: res.TemplateType,
	}
}

// Summary converts a stored row into its list form.
func Summary(row *model.ScoredTemplates) types.ScoredSummary {
	return types.ScoredSummary{
		Id:        row.Id,
		JobId:     model.NullStringValue(row.JobId),
		Type:      row.Type,
		Name:      row.Name,
		Skin:      row.Skin,
		Total:     row.Total,
		Grade:     row.Grade,
		Valid:     row.Valid == 1,
		AutoFixed: row.AutoFixed == 1,
		CreatedAt: row.CreatedAt.Format(time.RFC3339),
	}
}

// ScoredTemplate converts a stored row with its full breakdown.
func ScoredTemplate(row *model.ScoredTemplates) *types.ScoredTemplateResponse {
	rec := score.Record{
		Total:          int(row.Total),
		Hierarchy:      int(row.Hierarchy),
		Responsiveness: int(row.Responsiveness),
		CodeSafety:     int(row.CodeSafety),
		Aesthetics:     int(row.Aesthetics),
		Contrast:       int(row.Contrast),
		Tokenization:   int(row.Tokenization),
		Deductions:     model.DecodeList(row.Deductions),
		Grade:          score.Grade(row.Grade),
	}
	rec.PassesThreshold, rec.NeedsRetry, rec.ShouldDrop = score.Policy(rec.Total)

	return &types.ScoredTemplateResponse{
		ScoredSummary: Summary(row),
		Html:          row.Html,
		Score:         ScoreCard(rec),
		Validation: types.Validation{
			Valid:    row.Valid == 1,
			Errors:   model.DecodeList(row.Errors),
			Warnings: model.DecodeList(row.Warnings),
		},
		AppliedFixes:  model.DecodeList(row.AppliedFixes),
		ContentHash:   row.ContentHash,
		StructureHash: row.StructureHash,
	}
}

// TemplateType converts a registry entry.
func TemplateType(t forge.TemplateType) types.TemplateTypeInfo {
	return types.TemplateTypeInfo{
		Id:          t.ID,
		Name:        t.Name,
		Category:    t.Category,
		Description: t.Description,
		Sections:    orEmpty(t.Sections),
	}
}

// Skin converts a skin.
func Skin(s skin.Skin) types.SkinInfo {
	return types.SkinInfo{
		Id:        s.ID,
		Name:      s.Name,
		Bg:        s.BG,
		Primary:   s.Primary,
		Secondary: s.Secondary,
		Text:      s.Text,
		Accent:    s.Accent,
		Font:      s.Font,
	}
}

// Limit clamps a requested page size.
func Limit(n int) int {
	if n <= 0 {
		return 50
	}
	return min(n, MaxListLimit)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
