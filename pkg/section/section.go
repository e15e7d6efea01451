// Package section is the library of table-based HTML fragments that
// templates are composed from. Fragments carry brand tokens such as
// {brandAccent} and copy placeholders such as {{headline}}.
package section

import "slices"

// Section is one reusable fragment.
type Section struct {
	Type string `json:"type"`
	Name string `json:"name"`
	HTML string `json:"html"`
}

// Image placeholder URLs.
const (
	heroImage    = "https://via.placeholder.com/640x320"
	productImage = "https://via.placeholder.com/300"
	iconImage    = "https://via.placeholder.com/64"
	logoImage    = "https://via.placeholder.com/150x50"
	avatarImage  = "https://via.placeholder.com/80"
)

var library = []Section{
	{Type: "header_nav", Name: "Header with Navigation", HTML: headerNav},
	{Type: "offer_banner", Name: "Offer Banner", HTML: offerBanner},
	{Type: "hero", Name: "Hero Section", HTML: hero},
	{Type: "subhero", Name: "Sub-Hero Section", HTML: subhero},
	{Type: "1col_text", Name: "Single Column Text", HTML: oneColText},
	{Type: "story_block", Name: "Story Block", HTML: storyBlock},
	{Type: "product_grid", Name: "Product Grid", HTML: productGrid},
	{Type: "testimonial", Name: "Testimonial", HTML: testimonial},
	{Type: "cta_band", Name: "CTA Band", HTML: ctaBand},
	{Type: "social_icons", Name: "Social Icons", HTML: socialIcons},
	{Type: "divider", Name: "Divider", HTML: divider},
	{Type: "spacer", Name: "Spacer", HTML: spacer},
	{Type: "footer_simple", Name: "Simple Footer", HTML: footerSimple},
}

var byType = func() map[string]Section {
	m := make(map[string]Section, len(library))
	for _, s := range library {
		m[s.Type] = s
	}
	return m
}()

// Get returns the section of the given type.
func Get(sectionType string) (Section, bool) {
	s, ok := byType[sectionType]
	return s, ok
}

// Names lists the section types in library order.
func Names() []string {
	names := make([]string, 0, len(library))
	for _, s := range library {
		names = append(names, s.Type)
	}
	return names
}

// All returns a copy of the library.
func All() []Section {
	return slices.Clone(library)
}
