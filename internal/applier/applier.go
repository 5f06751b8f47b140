// Package applier pushes a generated scheme's variables into a style
// sink.
package applier

import (
	"fmt"

	"github.com/seedtheme/seedtheme/internal/cssvars"
	"github.com/seedtheme/seedtheme/internal/scheme"
)

// StyleSink receives CSS custom properties one at a time. The sink is
// the single shared mutable surface of an application's presentation;
// last writer wins per property.
type StyleSink interface {
	SetProperty(name, value string) error
}

// Apply converts the scheme and sets every resulting variable on the
// sink. There are no transaction semantics: a failure partway through
// leaves the sink partially updated.
func Apply(s scheme.Scheme, sink StyleSink) error {
	variables, err := cssvars.Convert(s)
	if err != nil {
		return err
	}

	for _, v := range variables {
		if err := sink.SetProperty(v.Name, v.Value); err != nil {
			return fmt.Errorf("set %s: %w", v.Name, err)
		}
	}
	return nil
}
