package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/seedtheme/seedtheme/internal/emitter"
	"github.com/seedtheme/seedtheme/internal/scheme"
)

type generateOptions struct {
	Seed     string
	Contrast float64
	Output   string
	Verbose  bool
}

var generateCmdRunner = runGenerate

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate theme CSS for a seed color",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateSeedFlag(opts.Seed); err != nil {
				return err
			}
			if err := validateContrastFlag(opts.Contrast); err != nil {
				return err
			}

			return generateCmdRunner(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.Seed, "seed", "s", "", "Seed color as #RRGGBB")
	cmd.Flags().Float64Var(&opts.Contrast, "contrast", 0, "Contrast level in [-1, 1]")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write CSS to this file instead of stdout")
	cmd.MarkFlagRequired("seed") //nolint:errcheck

	return cmd
}

func runGenerate(opts generateOptions, stdout io.Writer) error {
	log, err := newLogger(&rootFlags{verbose: opts.Verbose})
	if err != nil {
		return err
	}

	generator := scheme.NewGenerator(nil)
	result, err := generator.Generate(context.Background(), opts.Seed, opts.Contrast)
	if err != nil {
		return err
	}

	css, err := emitter.New().ThemeCSS(result, opts.Seed, opts.Contrast)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err = fmt.Fprint(stdout, css)
		return err
	}

	if err := os.WriteFile(opts.Output, []byte(css), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.Output, err)
	}

	log.WithFields(map[string]any{"seed": opts.Seed, "output": opts.Output}).Info("theme written")
	return nil
}
