package main

import (
	"context"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/seedtheme/seedtheme/internal/applier"
	"github.com/seedtheme/seedtheme/internal/config"
	"github.com/seedtheme/seedtheme/internal/logger"
	"github.com/seedtheme/seedtheme/internal/regen"
)

type watchOptions struct {
	ConfigPath string
	Verbose    bool
}

func newWatchCmd(root *rootFlags) *cobra.Command {
	opts := watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the stylesheet whenever the config file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateConfigFlag(opts.ConfigPath); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "seedtheme.yaml", "Path to configuration file")

	return cmd
}

func runWatch(ctx context.Context, opts watchOptions) error {
	log, err := newLogger(&rootFlags{verbose: opts.Verbose})
	if err != nil {
		return err
	}

	coordinator := regen.NewCoordinator(nil)

	// Apply once up front so the stylesheet reflects the config before
	// the first edit.
	if err := regenerate(ctx, coordinator, opts.ConfigPath, log); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save,
	// which would silently detach a file-level watch.
	configDir := filepath.Dir(opts.ConfigPath)
	if err := watcher.Add(configDir); err != nil {
		return err
	}
	configName := filepath.Base(opts.ConfigPath)

	log.WithFields(map[string]any{"config": opts.ConfigPath}).Info("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != configName {
				continue
			}
			if event.Op&fsnotify.Write != fsnotify.Write && event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}

			if err := regenerate(ctx, coordinator, opts.ConfigPath, log); err != nil {
				log.Error(err, "regeneration failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "watch error")
		}
	}
}

func regenerate(ctx context.Context, coordinator *regen.Coordinator, configPath string, log *logger.Logger) error {
	cfg, err := config.ParseConfig(configPath)
	if err != nil {
		return err
	}

	sink, err := applier.NewFileSink(cfg.Output)
	if err != nil {
		return err
	}

	applied, err := coordinator.Run(ctx, cfg.Seed, cfg.Contrast, sink)
	if err != nil {
		return err
	}

	if applied {
		log.WithFields(map[string]any{
			"seed":     cfg.Seed,
			"contrast": cfg.Contrast,
			"output":   cfg.Output,
		}).Info("theme regenerated")
	}
	return nil
}
