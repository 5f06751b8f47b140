// Package scheme turns a seed color and a contrast level into the pair
// of light and dark theme token sets.
package scheme

import (
	"context"

	"github.com/seedtheme/seedtheme/internal/hexcolor"
	"github.com/seedtheme/seedtheme/internal/palette"
	schemeerrors "github.com/seedtheme/seedtheme/pkg/errors"
)

// Brightness names one of the two theme modes.
type Brightness string

const (
	Light Brightness = "light"
	Dark  Brightness = "dark"
)

// ColorPair binds a token name to its hex value.
type ColorPair struct {
	Name string
	Hex  string
}

// Theme is the token set for one brightness mode. Themes are created
// fresh on every generation and never mutated afterwards.
type Theme struct {
	Brightness Brightness
	Colors     []ColorPair
}

// Scheme is the ordered light/dark theme pair. Light always comes
// first.
type Scheme []Theme

// Generator produces schemes through a token-deriving engine.
type Generator struct {
	engine palette.Engine
}

// NewGenerator returns a Generator backed by the given engine. A nil
// engine falls back to the default HCT implementation.
func NewGenerator(engine palette.Engine) *Generator {
	if engine == nil {
		engine = palette.NewHCTEngine()
	}
	return &Generator{engine: engine}
}

// Generate derives the light and dark themes for a seed color at the
// given contrast level. The seed must be a 6-digit hex color; the
// contrast level is passed through to the engine uninterpreted. The
// computation is pure and deterministic; an unparseable seed is the
// only failure mode.
func (g *Generator) Generate(ctx context.Context, seedColor string, contrastLevel float64) (Scheme, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed, err := hexcolor.Parse(seedColor)
	if err != nil {
		return nil, schemeerrors.NewInvalidSeedError(seedColor, err)
	}

	result := make(Scheme, 0, 2)
	for _, brightness := range []Brightness{Light, Dark} {
		tokens := g.engine.Derive(seed, contrastLevel, brightness == Dark)

		colors := make([]ColorPair, len(tokens))
		for i, tok := range tokens {
			colors[i] = ColorPair{Name: tok.Name, Hex: tok.Hex}
		}
		result = append(result, Theme{Brightness: brightness, Colors: colors})
	}

	return result, nil
}
