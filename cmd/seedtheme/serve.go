package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/seedtheme/seedtheme/internal/config"
	"github.com/seedtheme/seedtheme/internal/server"
)

type serveOptions struct {
	ConfigPath string
	Seed       string
	Contrast   float64
	Listen     string
	Verbose    bool
}

func newServeCmd(root *rootFlags) *cobra.Command {
	opts := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the theme over HTTP with live reload",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if opts.ConfigPath != "" {
				if err := validateConfigFlag(opts.ConfigPath); err != nil {
					return err
				}
				cfg, err := config.ParseConfig(opts.ConfigPath)
				if err != nil {
					return err
				}
				if opts.Seed == "" {
					opts.Seed = cfg.Seed
					opts.Contrast = cfg.Contrast
				}
				if opts.Listen == "" {
					opts.Listen = cfg.Serve.Listen
				}
			}
			if opts.Listen == "" {
				opts.Listen = config.DefaultListen
			}

			if err := validateSeedFlag(opts.Seed); err != nil {
				return err
			}
			if err := validateContrastFlag(opts.Contrast); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&opts.Seed, "seed", "s", "", "Seed color as #RRGGBB")
	cmd.Flags().Float64Var(&opts.Contrast, "contrast", 0, "Contrast level in [-1, 1]")
	cmd.Flags().StringVarP(&opts.Listen, "listen", "l", "", "Listen address, host:port")

	return cmd
}

func runServe(ctx context.Context, opts serveOptions) error {
	log, err := newLogger(&rootFlags{verbose: opts.Verbose})
	if err != nil {
		return err
	}

	srv, err := server.New(ctx, opts.Seed, opts.Contrast, log)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              opts.Listen,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	log.WithFields(map[string]any{"listen": opts.Listen, "seed": opts.Seed}).Info("serving theme")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)

	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
