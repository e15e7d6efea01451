// Package document defines the template document passed between the
// validator, scorer, auto-fixer and curation stages.
package document

// Document is one complete email template.
type Document struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type,omitempty"`
	Name string `json:"name,omitempty"`
	Skin string `json:"skin,omitempty"`
	HTML string `json:"html"`

	// AutoFixed is set once the document has been through autofix.Fix.
	AutoFixed bool `json:"auto_fixed,omitempty"`
}

// Label returns the identifier used when attributing errors to this document.
func (d Document) Label() string {
	switch {
	case d.Type != "":
		return d.Type
	case d.ID != "":
		return d.ID
	default:
		return "unknown"
	}
}
