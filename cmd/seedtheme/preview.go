package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/seedtheme/seedtheme/internal/tui"
)

type previewOptions struct {
	Hue      float64
	Contrast float64
}

func newPreviewCmd() *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse generated palettes interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateContrastFlag(opts.Contrast); err != nil {
				return err
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("preview needs an interactive terminal, use generate for plain output")
			}

			program := tea.NewProgram(tui.NewModel(opts.Hue, opts.Contrast))
			_, err := program.Run()
			return err
		},
	}

	cmd.Flags().Float64Var(&opts.Hue, "hue", 210, "Starting hue in degrees")
	cmd.Flags().Float64Var(&opts.Contrast, "contrast", 0, "Contrast level in [-1, 1]")

	return cmd
}
