package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	scenarios := Builtin()

	require.Len(t, scenarios, 10)

	seen := make(map[string]bool)
	for _, sc := range scenarios {
		assert.NotEmpty(t, sc.ID)
		assert.NotEmpty(t, sc.Product)
		assert.NotEmpty(t, sc.Context)
		assert.GreaterOrEqual(t, sc.Series.Len(), 8, "scenario %s series too short", sc.ID)
		assert.False(t, seen[sc.ID], "duplicate scenario id %s", sc.ID)
		seen[sc.ID] = true
	}
}

func TestBuiltinReturnsCopies(t *testing.T) {
	first := Builtin()
	first[0].Series.Values[0] = -999

	second := Builtin()
	assert.NotEqual(t, -999.0, second[0].Series.Values[0],
		"Mutating one call's scenarios must not affect later calls")
}

func TestParse(t *testing.T) {
	data := []byte(`
scenarios:
  - id: X01
    product: Garden Hoses
    context: Spring demand ramp
    demand: [10, 12, 14, 16, 18, 21]
  - product: Space Heaters
    context: Cold snap
    demand: [30, 28, 27, 25]
`)

	scenarios, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	assert.Equal(t, "X01", scenarios[0].ID)
	assert.Equal(t, "Garden Hoses", scenarios[0].Product)
	assert.Equal(t, 6, scenarios[0].Series.Len())

	// Missing id gets a positional default
	assert.Equal(t, "S02", scenarios[1].ID)
}

func TestParseInvalid(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty file", ""},
		{"no scenarios", "scenarios: []"},
		{"missing product", "scenarios:\n  - context: x\n    demand: [1, 2]"},
		{"empty demand", "scenarios:\n  - product: Widgets\n    demand: []"},
		{"bad yaml", "scenarios: ["},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")

	data := `
scenarios:
  - id: F01
    product: Rain Boots
    context: Wet season
    demand: [40, 42, 45, 47, 50, 52, 55, 58]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	scenarios, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
	assert.Equal(t, "Rain Boots", scenarios[0].Product)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
