package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zeromicro/go-zero/core/mr"

	"github.com/joeblew999/templateforge/pkg/autofix"
	"github.com/joeblew999/templateforge/pkg/document"
	"github.com/joeblew999/templateforge/pkg/htmlcheck"
	"github.com/joeblew999/templateforge/pkg/log"
	"github.com/joeblew999/templateforge/pkg/score"
	"github.com/joeblew999/templateforge/pkg/section"
	"github.com/joeblew999/templateforge/pkg/skin"
)

// PipelineVersion is stamped into every batch.
const PipelineVersion = "1.0.0"

// Options configures a pipeline run.
type Options struct {
	BaseSkin string
	Variants []int
	Workers  int
}

// DefaultOptions renders variants 1 to 3 in the default skin.
func DefaultOptions() Options {
	return Options{
		BaseSkin: skin.DefaultSkin,
		Variants: []int{VariantTestimonial, VariantSpaced, VariantMinimal},
		Workers:  8,
	}
}

// Metadata summarizes a batch.
type Metadata struct {
	Version         string                 `json:"version"`
	PipelineVersion string                 `json:"pipeline_version"`
	GeneratedAt     time.Time              `json:"generated_at"`
	TotalTemplates  int                    `json:"total_templates"`
	SectionCount    int                    `json:"section_count"`
	DesignSkins     []string               `json:"design_skins"`
	TemplateTypes   []string               `json:"template_types"`
	Validation      htmlcheck.BatchSummary `json:"validation"`
	Passed          int                    `json:"passed_threshold"`
	NeedsRetry      int                    `json:"needs_retry"`
	Dropped         int                    `json:"should_drop"`
	Grades          map[score.Grade]int    `json:"grades"`
}

// Batch is the full pipeline output.
type Batch struct {
	Metadata   Metadata          `json:"metadata"`
	Sections   []section.Section `json:"sectionLibraryExtracted"`
	Normalized []Template        `json:"normalizedTemplates"`
	Reskinned  []Template        `json:"reskinnedTemplates"`
	Variants   []Template        `json:"layoutVariants"`
}

// All returns every template in the batch in output order.
func (b *Batch) All() []Template {
	all := make([]Template, 0, len(b.Normalized)+len(b.Reskinned)+len(b.Variants))
	all = append(all, b.Normalized...)
	all = append(all, b.Reskinned...)
	return append(all, b.Variants...)
}

// Run generates every registered type in the base skin, in every skin and
// as layout variants, then validates, auto-fixes and scores the lot.
func Run(ctx context.Context, gen *Generator, opts Options) (*Batch, error) {
	if opts.BaseSkin == "" {
		opts.BaseSkin = skin.DefaultSkin
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}

	b := &Batch{Sections: section.All()}
	for _, tt := range gen.Registry.List() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		base, err := gen.Generate(tt.ID, opts.BaseSkin)
		if err != nil {
			return nil, err
		}
		b.Normalized = append(b.Normalized, base)

		skinned, err := gen.GenerateAllSkins(tt.ID)
		if err != nil {
			return nil, err
		}
		b.Reskinned = append(b.Reskinned, skinned...)

		for _, v := range opts.Variants {
			variant, err := gen.LayoutVariant(tt.ID, v, opts.BaseSkin)
			if err != nil {
				return nil, err
			}
			b.Variants = append(b.Variants, variant)
		}
	}

	docs := make([]document.Document, 0, len(b.Normalized)+len(b.Reskinned)+len(b.Variants))
	for _, t := range b.All() {
		docs = append(docs, t.Document)
	}
	summary := htmlcheck.ValidateBatch(docs)

	for _, group := range [][]Template{b.Normalized, b.Reskinned, b.Variants} {
		if err := fixAndScore(ctx, group, opts.Workers); err != nil {
			return nil, err
		}
	}

	b.Metadata = Metadata{
		Version:         "1.0",
		PipelineVersion: PipelineVersion,
		GeneratedAt:     time.Now().UTC(),
		TotalTemplates:  len(docs),
		SectionCount:    len(b.Sections),
		DesignSkins:     gen.Skins.Names(),
		TemplateTypes:   gen.Registry.IDs(),
		Validation:      summary,
		Grades:          make(map[score.Grade]int),
	}
	for _, t := range b.All() {
		rec := t.Score
		b.Metadata.Grades[rec.Grade]++
		switch {
		case rec.PassesThreshold:
			b.Metadata.Passed++
		case rec.NeedsRetry:
			b.Metadata.NeedsRetry++
		default:
			b.Metadata.Dropped++
		}
	}

	log.Info("pipeline complete",
		"templates", b.Metadata.TotalTemplates,
		"passed", b.Metadata.Passed,
		"needs_retry", b.Metadata.NeedsRetry,
		"dropped", b.Metadata.Dropped)
	return b, nil
}

// fixAndScore auto-fixes and scores each template in place.
func fixAndScore(ctx context.Context, group []Template, workers int) error {
	if len(group) == 0 {
		return nil
	}

	mr.ForEach(func(source chan<- int) {
		for i := range group {
			source <- i
		}
	}, func(i int) {
		fixed, applied := autofix.Apply(group[i].Document)
		rec := score.Score(fixed)
		group[i].Document = fixed
		group[i].Score = &rec
		log.With("template", fixed.Label(), "skin", fixed.Skin).
			Debug("template scored", "total", rec.Total, "grade", rec.Grade, "fixes", applied)
	}, mr.WithContext(ctx), mr.WithWorkers(workers))

	return ctx.Err()
}

// WriteBatch stores b as indented JSON at path.
func WriteBatch(path string, b *Batch) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode batch: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
