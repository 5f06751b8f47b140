// Package palette derives Material Design 3 color tokens from a seed
// color. The perceptual color math (HCT) comes from the external
// cogentcore color library; this package owns the tonal-palette
// parameters, the token table, and the contrast handling around it.
package palette

import (
	"image/color"

	"github.com/seedtheme/seedtheme/internal/hexcolor"
)

// TokenColor is a single derived token: a fixed token name and its hex
// value for one brightness mode.
type TokenColor struct {
	Name string
	Hex  string
}

// Engine derives the full token set for one brightness mode. It is the
// only seam to the underlying color-science implementation, so the
// orchestration layer can be tested against a fake.
type Engine interface {
	Derive(seed color.RGBA, contrast float64, dark bool) []TokenColor
}

// HCTEngine derives tokens through the HCT perceptual color space.
type HCTEngine struct{}

// NewHCTEngine returns the default token deriver.
func NewHCTEngine() *HCTEngine {
	return &HCTEngine{}
}

// Derive resolves every token in the fixed table against tonal palettes
// built from the seed. The contrast level shifts tones along each
// token's contrast curve; brightness selects the light or dark curve.
func (e *HCTEngine) Derive(seed color.RGBA, contrast float64, dark bool) []TokenColor {
	params := NewParams(seed)

	out := make([]TokenColor, 0, len(tokenTable))
	for _, spec := range tokenTable {
		curve := spec.light
		if dark {
			curve = spec.dark
		}
		tone := clampTone(curve.Get(contrast))
		rgba := params.palette(spec.palette).Tone(tone)
		out = append(out, TokenColor{Name: spec.name, Hex: hexcolor.Format(rgba)})
	}
	return out
}

func clampTone(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 100 {
		return 100
	}
	return t
}

var _ Engine = (*HCTEngine)(nil)
