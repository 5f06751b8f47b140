package hexcolor

import (
	"image/color"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestHSLToHexPrimaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		h    float64
		s    float64
		l    float64
		want string
	}{
		{"red", 0, 100, 50, "#ff0000"},
		{"green", 120, 100, 50, "#00ff00"},
		{"blue", 240, 100, 50, "#0000ff"},
		{"yellow", 60, 100, 50, "#ffff00"},
		{"cyan", 180, 100, 50, "#00ffff"},
		{"magenta", 300, 100, 50, "#ff00ff"},
		{"maroon", 0, 100, 25, "#800000"},
		{"orange", 30, 100, 50, "#ff8000"},
		{"gray", 0, 0, 50, "#808080"},
		{"black", 0, 100, 0, "#000000"},
		{"white", 0, 100, 100, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, HSLToHex(tt.h, tt.s, tt.l))
		})
	}
}

func TestHueToHexUsesDefaults(t *testing.T) {
	assert.Equal(t, HSLToHex(240, 100, 50), HueToHex(240))
	assert.Equal(t, "#0000ff", HueToHex(240))
}

func TestHSLToHexWrapsHue(t *testing.T) {
	assert.Equal(t, HueToHex(0), HueToHex(360))
	assert.Equal(t, HueToHex(240), HueToHex(-120))
	assert.Equal(t, HueToHex(30), HueToHex(750))
}

func TestHSLToHexIsTotal(t *testing.T) {
	// Out-of-range inputs saturate rather than failing.
	assert.Equal(t, "#ffffff", HSLToHex(0, 0, 200))
	assert.Equal(t, "#000000", HSLToHex(0, 100, -50))

	for _, h := range []float64{-720, -1, 0, 359.9, 1e6} {
		assert.Regexp(t, hexPattern, HSLToHex(h, 100, 50))
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	c, err := Parse("#1976D2")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x19, G: 0x76, B: 0xD2, A: 255}, c)

	c, err = Parse("ff0000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c)

	for _, bad := range []string{"", "#fff", "#12345", "not-a-color", "#gggggg"} {
		_, err := Parse(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize("#1976d2")
	require.NoError(t, err)
	assert.Equal(t, "#1976D2", got)

	got, err = Normalize("AbCdEf")
	require.NoError(t, err)
	assert.Equal(t, "#ABCDEF", got)

	_, err = Normalize("nope")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "#19a7d2", Format(color.RGBA{R: 0x19, G: 0xA7, B: 0xD2, A: 255}))
}

func TestLuminance(t *testing.T) {
	white, err := Luminance("#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, white, 0.001)

	black, err := Luminance("#000000")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, black, 0.001)

	assert.True(t, IsLight("#ffffff"))
	assert.False(t, IsLight("#000000"))
	assert.False(t, IsLight("not-a-color"))
}
