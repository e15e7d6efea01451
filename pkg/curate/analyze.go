package curate

import (
	"regexp"
	"strings"

	"github.com/joeblew999/templateforge/pkg/document"
	"github.com/joeblew999/templateforge/pkg/score"
)

// Corpus size window considered safe to ship, in bytes.
const (
	MinSafeSize = 10 * 1024
	MaxSafeSize = 350 * 1024
)

var (
	ctaLabelRe = regexp.MustCompile(`<a[^>]*>(\s*(shop now|buy now|get started|learn more|view deal|view offer|subscribe|sign up)\s*)</a>`)
	ctaClassRe = regexp.MustCompile(`<a[^>]+class="[^"]*(btn|button)[^"]*"`)
	bgColorRe  = regexp.MustCompile(`background(-color)?:\s*#[0-9a-f]{3,6}`)
)

// Item is the persisted record for one corpus document.
type Item struct {
	File          string `json:"file"`
	Size          int64  `json:"size"`
	ContentHash   string `json:"content_hash"`
	StructureHash string `json:"structure_hash,omitempty"`

	Score int         `json:"score"`
	Grade score.Grade `json:"grade"`

	HasMedia    bool `json:"has_media"`
	TableCount  int  `json:"table_count"`
	HasCTA      bool `json:"has_cta"`
	HasStyle    bool `json:"has_style"`
	BgColors    int  `json:"bg_colors"`
	Unsubscribe bool `json:"unsubscribe"`
	Safe        bool `json:"safe"`
	InSize      bool `json:"in_size"`
}

// HasSignature reports whether the item can take part in dedup.
func (i Item) HasSignature() bool {
	return i.StructureHash != ""
}

// Analyze scores html and extracts the corpus metrics used for ranking.
func Analyze(file, html string, size int64) Item {
	rec := score.Score(document.Document{ID: file, HTML: html})
	low := strings.ToLower(html)

	item := Item{
		File:        file,
		Size:        size,
		ContentHash: ContentHash(html),
		Score:       rec.Total,
		Grade:       rec.Grade,
		HasMedia:    strings.Contains(low, "@media"),
		TableCount:  strings.Count(low, "<table"),
		HasCTA:      ctaLabelRe.MatchString(low) || ctaClassRe.MatchString(low),
		HasStyle:    strings.Contains(low, "<style"),
		BgColors:    len(bgColorRe.FindAllStringIndex(low, -1)),
		Unsubscribe: strings.Contains(low, "unsubscribe"),
		Safe:        !strings.Contains(low, "<script"),
		InSize:      size >= MinSafeSize && size <= MaxSafeSize,
	}
	if sig, ok := StructureHash(html, DefaultShingle); ok {
		item.StructureHash = sig
	}
	return item
}
