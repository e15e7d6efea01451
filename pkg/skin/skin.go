// Package skin holds the named brand token sets substituted into section
// templates.
package skin

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSkin is used whenever a requested skin is unknown.
const DefaultSkin = "apple_light"

//go:embed skins.yaml
var builtinYAML []byte

// Skin is one set of brand token values.
type Skin struct {
	ID           string `yaml:"id" json:"id"`
	Name         string `yaml:"name" json:"name"`
	BG           string `yaml:"brandBG" json:"brandBG"`
	Primary      string `yaml:"brandPrimary" json:"brandPrimary"`
	Secondary    string `yaml:"brandSecondary" json:"brandSecondary"`
	Text         string `yaml:"brandText" json:"brandText"`
	Accent       string `yaml:"brandAccent" json:"brandAccent"`
	Font         string `yaml:"brandFont" json:"brandFont"`
	BorderRadius string `yaml:"borderRadius" json:"borderRadius"`
	ButtonStyle  string `yaml:"buttonStyle" json:"buttonStyle"`
}

// Tokens maps each brand token name to this skin's value.
func (s Skin) Tokens() map[string]string {
	return map[string]string{
		"brandBG":        s.BG,
		"brandPrimary":   s.Primary,
		"brandSecondary": s.Secondary,
		"brandText":      s.Text,
		"brandAccent":    s.Accent,
		"brandFont":      s.Font,
	}
}

// Apply substitutes every {{token}} and {token} brand placeholder in html.
func Apply(html string, s Skin) string {
	tokens := s.Tokens()
	pairs := make([]string, 0, len(tokens)*4)
	for name, value := range tokens {
		pairs = append(pairs, "{{"+name+"}}", value)
	}
	for name, value := range tokens {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(html)
}

// Set is an ordered collection of skins.
type Set struct {
	order []string
	byID  map[string]Skin
}

type skinFile struct {
	Skins []Skin `yaml:"skins"`
}

// NewSet builds a set. Later skins replace earlier ones with the same ID.
func NewSet(skins ...Skin) *Set {
	s := &Set{byID: make(map[string]Skin)}
	for _, sk := range skins {
		s.put(sk)
	}
	return s
}

// Builtin returns the five stock skins.
func Builtin() *Set {
	skins, err := parse(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("load skins.yaml: %v", err))
	}
	return NewSet(skins...)
}

// LoadFile merges the skins in a YAML file over base and returns the result.
// base is left unchanged.
func LoadFile(path string, base *Set) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skins file: %w", err)
	}
	skins, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse skins file %s: %w", path, err)
	}
	return base.Merge(skins...), nil
}

func parse(data []byte) ([]Skin, error) {
	var f skinFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	for i, sk := range f.Skins {
		if sk.ID == "" {
			return nil, fmt.Errorf("skin %d has no id", i)
		}
	}
	return f.Skins, nil
}

func (s *Set) put(sk Skin) {
	if _, exists := s.byID[sk.ID]; !exists {
		s.order = append(s.order, sk.ID)
	}
	s.byID[sk.ID] = sk
}

// Merge returns a new set with extra added after the current skins.
func (s *Set) Merge(extra ...Skin) *Set {
	merged := NewSet(s.All()...)
	for _, sk := range extra {
		merged.put(sk)
	}
	return merged
}

// Get returns the skin with the given ID.
func (s *Set) Get(id string) (Skin, bool) {
	sk, ok := s.byID[id]
	return sk, ok
}

// Lookup returns the named skin, falling back to DefaultSkin.
func (s *Set) Lookup(id string) Skin {
	if sk, ok := s.byID[id]; ok {
		return sk
	}
	return s.byID[DefaultSkin]
}

// Names lists skin IDs in definition order.
func (s *Set) Names() []string {
	return append([]string(nil), s.order...)
}

// All lists skins in definition order.
func (s *Set) All() []Skin {
	out := make([]Skin, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len is the number of skins in the set.
func (s *Set) Len() int {
	return len(s.order)
}
