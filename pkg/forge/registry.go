// Package forge composes section fragments into complete skinned email
// templates and runs the generate, validate, fix and score pipeline.
package forge

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/joeblew999/templateforge/pkg/section"
)

var ErrUnknownType = errors.New("unknown template type")

// TemplateType describes which sections a template is built from.
type TemplateType struct {
	ID          string   `json:"type" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Sections    []string `json:"sections" yaml:"sections"`
}

// Validate reports an error when t is unnamed or references an unknown
// section.
func (t TemplateType) Validate() error {
	if t.ID == "" {
		return errors.New("template type has no id")
	}
	if len(t.Sections) == 0 {
		return fmt.Errorf("template type %s has no sections", t.ID)
	}
	for _, s := range t.Sections {
		if _, ok := section.Get(s); !ok {
			return fmt.Errorf("template type %s: unknown section %q", t.ID, s)
		}
	}
	return nil
}

// Registry is an immutable, ordered set of template types. Derive returns
// a new registry instead of changing the receiver.
type Registry struct {
	order []string
	types map[string]TemplateType
}

// NewRegistry builds a registry. A later type replaces an earlier one with
// the same ID but keeps its position.
func NewRegistry(types ...TemplateType) *Registry {
	r := &Registry{types: make(map[string]TemplateType, len(types))}
	for _, t := range types {
		r.put(t)
	}
	return r
}

func (r *Registry) put(t TemplateType) {
	if _, exists := r.types[t.ID]; !exists {
		r.order = append(r.order, t.ID)
	}
	t.Sections = slices.Clone(t.Sections)
	r.types[t.ID] = t
}

// Derive returns a registry holding the receiver's types plus derived.
func (r *Registry) Derive(derived ...TemplateType) *Registry {
	next := NewRegistry(r.List()...)
	for _, t := range derived {
		next.put(t)
	}
	return next
}

// Get returns the template type with the given ID.
func (r *Registry) Get(id string) (TemplateType, bool) {
	t, ok := r.types[id]
	if !ok {
		return TemplateType{}, false
	}
	t.Sections = slices.Clone(t.Sections)
	return t, true
}

// List returns every type in registration order.
func (r *Registry) List() []TemplateType {
	out := make([]TemplateType, 0, len(r.order))
	for _, id := range r.order {
		t, _ := r.Get(id)
		out = append(out, t)
	}
	return out
}

// IDs returns every type ID in registration order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.order)
}

// Len is the number of registered types.
func (r *Registry) Len() int {
	return len(r.order)
}

// Builtin returns the stock template types.
func Builtin() *Registry {
	return NewRegistry(builtinTypes...)
}

var builtinTypes = []TemplateType{
	{
		ID: "welcome", Name: "Welcome Email", Category: "Welcome",
		Description: "Standard welcome email with hero, copy and CTA",
		Sections:    []string{"header_nav", "hero", "1col_text", "cta_band", "footer_simple"},
	},
	{
		ID: "welcome_minimal", Name: "Welcome Minimal", Category: "Welcome",
		Description: "Minimal welcome email with essential content only",
		Sections:    []string{"header_nav", "hero", "1col_text", "footer_simple"},
	},
	{
		ID: "saas_feature_announcement", Name: "Feature Announcement", Category: "SaaS",
		Description: "New feature announcement for SaaS products",
		Sections:    []string{"header_nav", "subhero", "1col_text", "cta_band", "footer_simple"},
	},
	{
		ID: "ecommerce_promo", Name: "E-commerce Promo", Category: "Ecommerce",
		Description: "Promotional email with product showcase",
		Sections:    []string{"offer_banner", "header_nav", "hero", "product_grid", "cta_band", "social_icons", "footer_simple"},
	},
	{
		ID: "newsletter", Name: "Newsletter", Category: "Newsletter",
		Description: "Newsletter with multiple story blocks",
		Sections:    []string{"header_nav", "hero", "story_block", "divider", "story_block", "cta_band", "social_icons", "footer_simple"},
	},
	{
		ID: "sale_announcement", Name: "Sale Announcement", Category: "Promo",
		Description: "Sale announcement with product grid",
		Sections:    []string{"offer_banner", "header_nav", "hero", "product_grid", "product_grid", "cta_band", "footer_simple"},
	},
	{
		ID: "flash_sale", Name: "Flash Sale", Category: "Promo",
		Description: "Urgent flash sale with multiple CTAs",
		Sections:    []string{"offer_banner", "hero", "cta_band", "product_grid", "cta_band", "footer_simple"},
	},
	{
		ID: "product_launch", Name: "Product Launch", Category: "Product",
		Description: "Launch announcement with social proof",
		Sections:    []string{"header_nav", "hero", "subhero", "testimonial", "cta_band", "footer_simple"},
	},
	{
		ID: "review_request", Name: "Review Request", Category: "Engagement",
		Description: "Post-purchase review request",
		Sections:    []string{"header_nav", "subhero", "testimonial", "cta_band", "footer_simple"},
	},
	{
		ID: "company_update", Name: "Company Update", Category: "Newsletter",
		Description: "Company news with a featured story",
		Sections:    []string{"header_nav", "1col_text", "divider", "story_block", "spacer", "footer_simple"},
	},
}

type typesFile struct {
	Types []TemplateType `yaml:"types"`
}

// LoadTypesFile reads derived template types from a YAML file.
func LoadTypesFile(path string) ([]TemplateType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template types: %w", err)
	}

	var f typesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse template types %s: %w", path, err)
	}
	for _, t := range f.Types {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Types, nil
}
