package hexcolor

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSLToHex converts an HSL triple into a 6-digit lowercase hex color
// string. Hue is in degrees and does not need to be pre-normalized;
// saturation and lightness are percentages. The function is total over
// all real inputs: out-of-range values saturate to black or white.
func HSLToHex(h, s, l float64) string {
	s /= 100
	l /= 100

	a := s * math.Min(l, 1-l)

	channel := func(n float64) uint8 {
		k := math.Mod(n+h/30, 12)
		if k < 0 {
			k += 12
		}
		v := l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		scaled := math.Round(255 * v)
		if scaled < 0 {
			scaled = 0
		}
		if scaled > 255 {
			scaled = 255
		}
		return uint8(scaled)
	}

	return fmt.Sprintf("#%02x%02x%02x", channel(0), channel(8), channel(4))
}

// HueToHex converts a hue into a fully saturated, half-lightness hex
// color. It is the single-argument form of HSLToHex.
func HueToHex(h float64) string {
	return HSLToHex(h, 100, 50)
}

// Parse parses a hex color string like "#1976D2" into a color.RGBA.
// The leading "#" is optional; both cases are accepted.
func Parse(s string) (color.RGBA, error) {
	trimmed := strings.TrimPrefix(s, "#")
	if len(trimmed) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(trimmed), "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// IsValid reports whether s parses as a 6-digit hex color.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Normalize returns the canonical seed-color form of s: uppercase hex
// digits with a leading "#".
func Normalize(s string) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B), nil
}

// Format renders a color.RGBA as a lowercase "#rrggbb" string. Alpha is
// discarded; generated token values are always opaque.
func Format(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luminance returns the WCAG relative luminance of a hex color.
func Luminance(s string) (float64, error) {
	normalized, err := Normalize(s)
	if err != nil {
		return 0, err
	}
	c, err := colorful.Hex(strings.ToLower(normalized))
	if err != nil {
		return 0, err
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// IsLight reports whether a hex color sits in the light half of the
// relative luminance scale. Unparseable input counts as dark.
func IsLight(s string) bool {
	lum, err := Luminance(s)
	if err != nil {
		return false
	}
	return lum > 0.5
}
