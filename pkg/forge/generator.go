package forge

import (
	"fmt"
	"slices"

	"github.com/joeblew999/templateforge/pkg/document"
	"github.com/joeblew999/templateforge/pkg/score"
	"github.com/joeblew999/templateforge/pkg/section"
	"github.com/joeblew999/templateforge/pkg/skin"
)

// Template is a generated document together with its composition details.
type Template struct {
	document.Document

	BaseType    string        `json:"base_type,omitempty"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	SkinName    string        `json:"skin_name"`
	Sections    []string      `json:"sections_used"`
	Score       *score.Record `json:"score,omitempty"`
}

// Generator renders template types in a skin. It holds no global state.
type Generator struct {
	Registry *Registry
	Skins    *skin.Set
}

// NewGenerator creates a generator. Nil arguments take the built-in sets.
func NewGenerator(reg *Registry, skins *skin.Set) *Generator {
	if reg == nil {
		reg = Builtin()
	}
	if skins == nil {
		skins = skin.Builtin()
	}
	return &Generator{Registry: reg, Skins: skins}
}

// Generate renders one template type in the named skin. Unknown skins fall
// back to skin.DefaultSkin.
func (g *Generator) Generate(typeID, skinID string) (Template, error) {
	tt, ok := g.Registry.Get(typeID)
	if !ok {
		return Template{}, fmt.Errorf("%w: %s", ErrUnknownType, typeID)
	}

	sk := g.Skins.Lookup(skinID)
	return Template{
		Document: document.Document{
			ID:   tt.ID + "/" + sk.ID,
			Type: tt.ID,
			Name: tt.Name,
			Skin: sk.ID,
			HTML: render(tt.Sections, sk),
		},
		Category:    tt.Category,
		Description: tt.Description,
		SkinName:    sk.Name,
		Sections:    tt.Sections,
	}, nil
}

// GenerateAllSkins renders typeID once per skin in the set.
func (g *Generator) GenerateAllSkins(typeID string) ([]Template, error) {
	out := make([]Template, 0, g.Skins.Len())
	for _, id := range g.Skins.Names() {
		t, err := g.Generate(typeID, id)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Layout variants.
const (
	VariantTestimonial = 1
	VariantSpaced      = 2
	VariantMinimal     = 3
)

var minimalSections = []string{"header_nav", "hero", "1col_text", "cta_band", "footer_simple"}

// LayoutVariant renders a rearranged version of typeID. Variant 1 adds a
// testimonial before each CTA band, variant 2 adds spacers after major
// sections and any other number keeps only the minimal sections.
func (g *Generator) LayoutVariant(typeID string, variant int, skinID string) (Template, error) {
	tt, ok := g.Registry.Get(typeID)
	if !ok {
		return Template{}, fmt.Errorf("%w: %s", ErrUnknownType, typeID)
	}

	sections, desc := variantSections(tt.Sections, variant)
	sk := g.Skins.Lookup(skinID)
	id := fmt.Sprintf("%s_variant_%d", tt.ID, variant)

	return Template{
		Document: document.Document{
			ID:   id + "/" + sk.ID,
			Type: id,
			Name: fmt.Sprintf("%s - Variant %d", tt.Name, variant),
			Skin: sk.ID,
			HTML: render(sections, sk),
		},
		BaseType:    tt.ID,
		Category:    tt.Category,
		Description: desc,
		SkinName:    sk.Name,
		Sections:    sections,
	}, nil
}

func variantSections(base []string, variant int) ([]string, string) {
	var out []string
	switch variant {
	case VariantTestimonial:
		for _, s := range base {
			if s == "cta_band" {
				out = append(out, "testimonial")
			}
			out = append(out, s)
		}
		return out, "Added testimonial before CTA"
	case VariantSpaced:
		for i, s := range base {
			out = append(out, s)
			if (s == "hero" || s == "story_block" || s == "product_grid") && i < len(base)-2 {
				out = append(out, "spacer")
			}
		}
		return out, "Added spacing between major sections"
	default:
		for _, s := range base {
			if slices.Contains(minimalSections, s) {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			out = []string{"header_nav", "hero", "cta_band", "footer_simple"}
		}
		return out, "Minimal streamlined version"
	}
}

func render(sectionTypes []string, sk skin.Skin) string {
	rows := make([]string, 0, len(sectionTypes))
	for _, st := range sectionTypes {
		s, ok := section.Get(st)
		if !ok {
			continue
		}
		rows = append(rows, sectionRow(s.HTML))
	}
	return skin.Apply(wrapDocument(rows), sk)
}
