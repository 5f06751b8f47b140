// Package cssvars flattens a generated scheme into CSS custom property
// declarations.
package cssvars

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/seedtheme/seedtheme/internal/scheme"
	schemeerrors "github.com/seedtheme/seedtheme/pkg/errors"
)

// Variable is one CSS custom property: a "--color-{mode}-{token}" name
// and its hex value.
type Variable struct {
	Name  string
	Value string
}

var (
	camelBoundary = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	upperRunTail  = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// Kebab converts a camelCase token name to kebab-case. A hyphen is
// inserted before each uppercase run, so already-kebab input passes
// through unchanged.
func Kebab(name string) string {
	out := camelBoundary.ReplaceAllString(name, "${1}-${2}")
	out = upperRunTail.ReplaceAllString(out, "${1}-${2}")
	return strings.ToLower(out)
}

// VariableName builds the custom property name for a token in the
// given brightness mode.
func VariableName(brightness scheme.Brightness, token string) string {
	return fmt.Sprintf("--color-%s-%s", brightness, Kebab(token))
}

// Convert flattens both themes into the ordered variable list: the
// light theme's tokens first, then the dark theme's. A structurally
// incomplete scheme fails outright; downstream consumers rely on the
// full set being present.
func Convert(s scheme.Scheme) ([]Variable, error) {
	if len(s) == 0 {
		return nil, schemeerrors.NewSchemeError("", "scheme is empty")
	}

	variables := make([]Variable, 0, len(s)*len(s[0].Colors))
	for i, theme := range s {
		if theme.Brightness == "" {
			return nil, schemeerrors.NewSchemeError(fmt.Sprintf("themes[%d].brightness", i), "must not be empty")
		}
		if len(theme.Colors) == 0 {
			return nil, schemeerrors.NewSchemeError(fmt.Sprintf("themes[%d].colors", i), "must not be empty")
		}
		for j, pair := range theme.Colors {
			if pair.Name == "" || pair.Hex == "" {
				return nil, schemeerrors.NewSchemeError(
					fmt.Sprintf("themes[%d].colors[%d]", i, j), "token name and value are required")
			}
			variables = append(variables, Variable{
				Name:  VariableName(theme.Brightness, pair.Name),
				Value: pair.Hex,
			})
		}
	}

	return variables, nil
}
