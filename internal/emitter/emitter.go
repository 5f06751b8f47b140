// Package emitter renders a generated scheme as a complete stylesheet
// suitable for file export.
package emitter

import (
	"fmt"
	"strings"
	"time"

	"github.com/seedtheme/seedtheme/internal/cssvars"
	"github.com/seedtheme/seedtheme/internal/scheme"
)

// supplementaryVariables are fixed declarations appended after the
// generated tokens. The link colors alias an external blue scale; the
// form colors deliberately cross-reference the opposite brightness
// mode's surface tokens — a separate color subsystem for form controls
// that must be kept exactly as is.
var supplementaryVariables = []cssvars.Variable{
	{Name: "--color-light-link", Value: "var(--color-blue-700)"},
	{Name: "--color-dark-link", Value: "var(--color-blue-300)"},
	{Name: "--color-light-form", Value: "var(--color-dark-surface-container-lowest)"},
	{Name: "--color-light-on-form", Value: "var(--color-dark-on-surface)"},
	{Name: "--color-dark-form", Value: "var(--color-light-on-surface)"},
	{Name: "--color-dark-on-form", Value: "var(--color-dark-on-surface)"},
}

// Emitter renders stylesheets. Now is injectable so tests can pin the
// generation timestamp; a nil Now falls back to time.Now.
type Emitter struct {
	Now func() time.Time
}

// New returns an Emitter using the wall clock.
func New() *Emitter {
	return &Emitter{Now: time.Now}
}

// ThemeCSS renders the full stylesheet: a metadata header, the @theme
// block with every converted variable, and the fixed supplementary
// declarations. Pure string production; the only failure mode is a
// malformed scheme.
func (e *Emitter) ThemeCSS(s scheme.Scheme, seedColor string, contrastLevel float64) (string, error) {
	variables, err := cssvars.Convert(s)
	if err != nil {
		return "", err
	}

	now := time.Now
	if e != nil && e.Now != nil {
		now = e.Now
	}

	var sb strings.Builder
	sb.WriteString("/*\n")
	sb.WriteString(" * seedtheme generated stylesheet\n")
	fmt.Fprintf(&sb, " * Generated at: %s\n", now().Format(time.RFC3339))
	fmt.Fprintf(&sb, " * Seed color  : %s\n", seedColor)
	fmt.Fprintf(&sb, " * Contrast    : %.2f\n", contrastLevel)
	sb.WriteString(" */\n\n")

	sb.WriteString("@theme {\n")
	for _, v := range variables {
		fmt.Fprintf(&sb, "  %s: %s;\n", v.Name, v.Value)
	}
	sb.WriteString("\n")
	for _, v := range supplementaryVariables {
		fmt.Fprintf(&sb, "  %s: %s;\n", v.Name, v.Value)
	}
	sb.WriteString("}\n")

	return sb.String(), nil
}
