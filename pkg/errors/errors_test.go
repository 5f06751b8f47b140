package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidSeedError(t *testing.T) {
	inner := errors.New("not hex")
	err := NewInvalidSeedError("not-a-color", inner)

	assert.Contains(t, err.Error(), `"not-a-color"`)
	assert.Contains(t, err.Error(), "not hex")

	var seedErr *InvalidSeedError
	require.True(t, errors.As(err, &seedErr))
	assert.Equal(t, "not-a-color", seedErr.Seed)
	assert.True(t, errors.Is(err, inner))
}

func TestInvalidSeedErrorWithoutCause(t *testing.T) {
	err := NewInvalidSeedError("zzz", nil)
	assert.Equal(t, `invalid seed color "zzz"`, err.Error())
}

func TestSchemeError(t *testing.T) {
	err := NewSchemeError("themes[0].colors", "must not be empty")
	assert.Equal(t, "malformed scheme: themes[0].colors: must not be empty", err.Error())

	err = NewSchemeError("", "scheme is empty")
	assert.Equal(t, "malformed scheme: scheme is empty", err.Error())
}

func TestParseErrorIncludesLine(t *testing.T) {
	inner := errors.New("bad yaml")
	err := NewParseError("theme.yaml", 7, inner)
	assert.Equal(t, "parse error: theme.yaml:7: bad yaml", err.Error())
	assert.True(t, errors.Is(err, inner))

	err = NewParseError("theme.yaml", 0, inner)
	assert.Equal(t, "parse error: theme.yaml: bad yaml", err.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("contrast", "must be between -1 and 1", nil)
	assert.Equal(t, "validation error: contrast: must be between -1 and 1", err.Error())

	wrapped := fmt.Errorf("load config: %w", err)
	var valErr *ValidationError
	assert.True(t, errors.As(wrapped, &valErr))
}
