package palette

import (
	"image/color"
	"math"

	"cogentcore.org/core/colors/cam/hct"
)

// Material tonal-spot chroma weights. The tertiary palette sits 60
// degrees around the hue circle from the seed.
const (
	primaryChroma        = 36
	secondaryChroma      = 16
	tertiaryChroma       = 24
	neutralChroma        = 6
	neutralVariantChroma = 8

	tertiaryHueOffset = 60

	errorHue    = 25
	errorChroma = 84
)

// Tonal is a tonal palette: a fixed hue/chroma pair from which colors
// at any tone can be resolved.
type Tonal struct {
	base   hct.HCT
	hue    float32
	chroma float32
}

// NewTonal builds a tonal palette anchored at the given hue and chroma.
func NewTonal(base hct.HCT, hue, chroma float32) Tonal {
	return Tonal{base: base, hue: hue, chroma: chroma}
}

// Tone resolves the palette color at the given tone (0 = black,
// 100 = white). Chroma is reduced by the color system where the
// requested tone cannot carry it.
func (p Tonal) Tone(tone float64) color.RGBA {
	return p.base.WithHue(p.hue).WithChroma(p.chroma).WithTone(float32(tone)).AsRGBA()
}

// Params holds the six tonal palettes derived from one seed color.
type Params struct {
	Primary        Tonal
	Secondary      Tonal
	Tertiary       Tonal
	Error          Tonal
	Neutral        Tonal
	NeutralVariant Tonal
}

// NewParams derives the tonal palettes for a seed. All palettes except
// error share the seed's hue at fixed chroma weights; error is pinned
// to the Material red regardless of seed.
func NewParams(seed color.RGBA) Params {
	base := hct.FromColor(seed)
	hue := base.Hue

	return Params{
		Primary:        NewTonal(base, hue, primaryChroma),
		Secondary:      NewTonal(base, hue, secondaryChroma),
		Tertiary:       NewTonal(base, sanitizeHue(hue+tertiaryHueOffset), tertiaryChroma),
		Error:          NewTonal(base, errorHue, errorChroma),
		Neutral:        NewTonal(base, hue, neutralChroma),
		NeutralVariant: NewTonal(base, hue, neutralVariantChroma),
	}
}

func (p Params) palette(ref paletteRef) Tonal {
	switch ref {
	case secondaryPalette:
		return p.Secondary
	case tertiaryPalette:
		return p.Tertiary
	case errorPalette:
		return p.Error
	case neutralPalette:
		return p.Neutral
	case neutralVariantPalette:
		return p.NeutralVariant
	default:
		return p.Primary
	}
}

// sanitizeHue reduces a hue in degrees into [0, 360).
func sanitizeHue(h float32) float32 {
	reduced := float32(math.Mod(float64(h), 360))
	if reduced < 0 {
		reduced += 360
	}
	return reduced
}
