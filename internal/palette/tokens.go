package palette

type paletteRef int

const (
	primaryPalette paletteRef = iota
	secondaryPalette
	tertiaryPalette
	errorPalette
	neutralPalette
	neutralVariantPalette
)

type tokenSpec struct {
	name    string
	palette paletteRef
	light   ContrastCurve
	dark    ContrastCurve
}

// tokenTable fixes the token set and its order. Every theme carries
// exactly these tokens in exactly this order, light and dark alike.
// Tones follow the Material Design 3 dynamic scheme; foreground tokens
// carry contrast curves, surfaces and containers stay put. The *Fixed
// token families use the same tones in both brightness modes.
var tokenTable = []tokenSpec{
	{"primary", primaryPalette, flat(40), flat(80)},
	{"surfaceTint", primaryPalette, flat(40), flat(80)},
	{"onPrimary", primaryPalette, flat(100), flat(20)},
	{"primaryContainer", primaryPalette, flat(90), flat(30)},
	{"onPrimaryContainer", primaryPalette, curve(30, 10, 5, 0), curve(80, 90, 95, 100)},
	{"secondary", secondaryPalette, flat(40), flat(80)},
	{"onSecondary", secondaryPalette, flat(100), flat(20)},
	{"secondaryContainer", secondaryPalette, flat(90), flat(30)},
	{"onSecondaryContainer", secondaryPalette, curve(30, 10, 5, 0), curve(80, 90, 95, 100)},
	{"tertiary", tertiaryPalette, flat(40), flat(80)},
	{"onTertiary", tertiaryPalette, flat(100), flat(20)},
	{"tertiaryContainer", tertiaryPalette, flat(90), flat(30)},
	{"onTertiaryContainer", tertiaryPalette, curve(30, 10, 5, 0), curve(80, 90, 95, 100)},
	{"error", errorPalette, flat(40), flat(80)},
	{"onError", errorPalette, flat(100), flat(20)},
	{"errorContainer", errorPalette, flat(90), flat(30)},
	{"onErrorContainer", errorPalette, curve(30, 10, 5, 0), curve(80, 90, 95, 100)},
	{"background", neutralPalette, flat(98), flat(6)},
	{"onBackground", neutralPalette, curve(20, 10, 5, 0), curve(80, 90, 95, 100)},
	{"surface", neutralPalette, flat(98), flat(6)},
	{"onSurface", neutralPalette, curve(20, 10, 5, 0), curve(80, 90, 95, 100)},
	{"surfaceVariant", neutralVariantPalette, flat(90), flat(30)},
	{"onSurfaceVariant", neutralVariantPalette, curve(40, 30, 20, 10), curve(70, 80, 90, 95)},
	{"outline", neutralVariantPalette, curve(60, 50, 40, 30), curve(50, 60, 70, 80)},
	{"outlineVariant", neutralVariantPalette, curve(85, 80, 70, 60), curve(25, 30, 40, 50)},
	{"shadow", neutralPalette, flat(0), flat(0)},
	{"scrim", neutralPalette, flat(0), flat(0)},
	{"inverseSurface", neutralPalette, flat(20), flat(90)},
	{"inverseOnSurface", neutralPalette, curve(90, 95, 98, 100), curve(30, 20, 10, 0)},
	{"inversePrimary", primaryPalette, flat(80), flat(40)},
	{"primaryFixed", primaryPalette, flat(90), flat(90)},
	{"onPrimaryFixed", primaryPalette, flat(10), flat(10)},
	{"primaryFixedDim", primaryPalette, flat(80), flat(80)},
	{"onPrimaryFixedVariant", primaryPalette, flat(30), flat(30)},
	{"secondaryFixed", secondaryPalette, flat(90), flat(90)},
	{"onSecondaryFixed", secondaryPalette, flat(10), flat(10)},
	{"secondaryFixedDim", secondaryPalette, flat(80), flat(80)},
	{"onSecondaryFixedVariant", secondaryPalette, flat(30), flat(30)},
	{"tertiaryFixed", tertiaryPalette, flat(90), flat(90)},
	{"onTertiaryFixed", tertiaryPalette, flat(10), flat(10)},
	{"tertiaryFixedDim", tertiaryPalette, flat(80), flat(80)},
	{"onTertiaryFixedVariant", tertiaryPalette, flat(30), flat(30)},
	{"surfaceDim", neutralPalette, flat(87), flat(6)},
	{"surfaceBright", neutralPalette, flat(98), flat(24)},
	{"surfaceContainerLowest", neutralPalette, flat(100), flat(4)},
	{"surfaceContainerLow", neutralPalette, flat(96), flat(10)},
	{"surfaceContainer", neutralPalette, flat(94), flat(12)},
	{"surfaceContainerHigh", neutralPalette, flat(92), flat(17)},
	{"surfaceContainerHighest", neutralPalette, flat(90), flat(22)},
}

// TokenCount is the number of tokens in each theme.
const TokenCount = 49

// TokenNames returns the fixed token list in scheme order.
func TokenNames() []string {
	names := make([]string, len(tokenTable))
	for i, spec := range tokenTable {
		names[i] = spec.name
	}
	return names
}
