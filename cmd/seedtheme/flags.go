package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seedtheme/seedtheme/internal/hexcolor"
)

func validateSeedFlag(seed string) error {
	if strings.TrimSpace(seed) == "" {
		return fmt.Errorf("seed color is required")
	}
	if !hexcolor.IsValid(seed) {
		return fmt.Errorf("seed color %q is not a hex color like #1976D2", seed)
	}
	return nil
}

func validateContrastFlag(contrast float64) error {
	if contrast < -1 || contrast > 1 {
		return fmt.Errorf("contrast %.2f is outside [-1, 1]", contrast)
	}
	return nil
}

func validateConfigFlag(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}
