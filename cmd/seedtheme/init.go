package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/seedtheme/seedtheme/internal/config"
)

type initOptions struct {
	Path  string
	Force bool
}

func newInitCmd() *cobra.Command {
	opts := initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Path, "config", "c", "seedtheme.yaml", "Where to write the configuration file")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing configuration file")

	return cmd
}

func runInit(opts initOptions) error {
	if !opts.Force {
		if _, err := os.Stat(opts.Path); err == nil {
			return fmt.Errorf("%s already exists, pass --force to overwrite", opts.Path)
		}
	}

	cfg := config.Config{
		Seed:   "#1976D2",
		Output: config.DefaultOutput,
		Serve:  config.Serve{Listen: config.DefaultListen},
	}
	contrast := "0"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Seed color").
				Description("Hex color the whole theme is derived from").
				Placeholder("#1976D2").
				Validate(validateSeedFlag).
				Value(&cfg.Seed),
			huh.NewSelect[string]().
				Title("Contrast").
				Description("How strongly tones are pushed apart").
				Options(
					huh.NewOption("Reduced (-1)", "-1"),
					huh.NewOption("Standard (0)", "0"),
					huh.NewOption("Medium (0.5)", "0.5"),
					huh.NewOption("High (1)", "1"),
				).
				Value(&contrast),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Output stylesheet").
				Placeholder(config.DefaultOutput).
				Value(&cfg.Output),
			huh.NewInput().
				Title("Serve address").
				Description("host:port for the live preview server").
				Placeholder(config.DefaultListen).
				Value(&cfg.Serve.Listen),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if _, err := fmt.Sscanf(contrast, "%g", &cfg.Contrast); err != nil {
		return fmt.Errorf("parse contrast %q: %w", contrast, err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.Path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.Path, err)
	}

	fmt.Printf("wrote %s\n", opts.Path)
	return nil
}
