package skin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	set := Builtin()
	assert.Equal(t, []string{"linear_dark", "apple_light", "dtc_pastel", "editorial_serif", "brutalist_bold"}, set.Names())

	sk, ok := set.Get("linear_dark")
	require.True(t, ok)
	assert.Equal(t, "#0a0a0a", sk.BG)
	assert.Equal(t, "#5c6bc0", sk.Accent)
}

func TestLookupFallback(t *testing.T) {
	set := Builtin()
	assert.Equal(t, DefaultSkin, set.Lookup("does_not_exist").ID)
	assert.Equal(t, "dtc_pastel", set.Lookup("dtc_pastel").ID)
}

func TestApply(t *testing.T) {
	sk := Builtin().Lookup("brutalist_bold")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single brace", `color: {brandPrimary};`, `color: #000000;`},
		{"double brace", `color: {{brandAccent}};`, `color: #ff0000;`},
		{"font", `font-family: {brandFont};`, `font-family: 'Impact', 'Arial Black', sans-serif;`},
		{"copy placeholders untouched", `{{headline}} {{ctaUrl}}`, `{{headline}} {{ctaUrl}}`},
		{"suffix kept", `{brandSecondary}20`, `#33333320`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.in, sk))
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skins.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`skins:
  - id: ocean
    name: Ocean
    brandBG: "#e0f7fa"
    brandPrimary: "#01579b"
    brandSecondary: "#4f83cc"
    brandText: "#102027"
    brandAccent: "#00acc1"
    brandFont: "Arial, sans-serif"
  - id: apple_light
    name: Apple Override
    brandBG: "#fafafa"
`), 0o644))

	base := Builtin()
	merged, err := LoadFile(path, base)
	require.NoError(t, err)

	assert.Equal(t, 6, merged.Len())
	assert.Equal(t, "ocean", merged.Names()[5])
	assert.Equal(t, "#fafafa", merged.Lookup("apple_light").BG)
	assert.Equal(t, "#ffffff", base.Lookup("apple_light").BG, "base set must not change")
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"), Builtin())
	assert.Error(t, err)

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skins:\n  - name: no id\n"), 0o644))
	_, err = LoadFile(path, Builtin())
	assert.ErrorContains(t, err, "has no id")
}
