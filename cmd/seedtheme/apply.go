package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/seedtheme/seedtheme/internal/applier"
	"github.com/seedtheme/seedtheme/internal/regen"
)

type applyOptions struct {
	Seed     string
	Contrast float64
	Output   string
	Verbose  bool
}

var applyCmdRunner = runApply

func newApplyCmd(root *rootFlags) *cobra.Command {
	opts := applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a generated theme into a stylesheet's managed block",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateSeedFlag(opts.Seed); err != nil {
				return err
			}
			if err := validateContrastFlag(opts.Contrast); err != nil {
				return err
			}

			return applyCmdRunner(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Seed, "seed", "s", "", "Seed color as #RRGGBB")
	cmd.Flags().Float64Var(&opts.Contrast, "contrast", 0, "Contrast level in [-1, 1]")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "theme.css", "Stylesheet to apply variables into")

	return cmd
}

func runApply(opts applyOptions) error {
	log, err := newLogger(&rootFlags{verbose: opts.Verbose})
	if err != nil {
		return err
	}

	sink, err := applier.NewFileSink(opts.Output)
	if err != nil {
		return err
	}

	coordinator := regen.NewCoordinator(nil)
	applied, err := coordinator.Run(context.Background(), opts.Seed, opts.Contrast, sink)
	if err != nil {
		return err
	}

	if applied {
		log.WithFields(map[string]any{"seed": opts.Seed, "output": sink.Path()}).Info("theme applied")
	}
	return nil
}
