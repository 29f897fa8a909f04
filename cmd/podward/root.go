// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/podward/podward/internal/config"
	"github.com/podward/podward/internal/fetch"
	"github.com/podward/podward/internal/logging"
	"github.com/podward/podward/internal/observability"
	"github.com/podward/podward/internal/xdg"
	"github.com/podward/podward/pkg/access"
)

// Global flags available to all subcommands.
var (
	configFile   string
	outputFormat string
)

// errIndeterminate marks results where access state cannot be
// determined: ungoverned resources, unreadable authorization documents,
// or policies shared outside the ACR.
var errIndeterminate = errors.New("access state could not be determined")

// NewRootCmd creates the root command for the podward CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "podward",
		Short: "Podward - Solid Pod access control client",
		Long: `Podward reads and modifies access-control state on Solid Pods,
handling both the ACP and WAC authorization schemes transparently.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (default: XDG config dir)")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format: text, json or yaml")

	// Dotted flags override the matching configuration keys.
	cmd.PersistentFlags().String("logging.level", "", "log level: debug, info, warn or error")
	cmd.PersistentFlags().String("logging.format", "", "log format: json or text")
	cmd.PersistentFlags().String("auth.token", "", "bearer token for pod requests")
	cmd.PersistentFlags().Int("http.retries", 0, "retries for idempotent requests")
	cmd.PersistentFlags().Bool("metrics.enabled", false, "serve Prometheus metrics while running")

	cmd.AddCommand(NewInspectCmd())
	cmd.AddCommand(NewGrantCmd())
	cmd.AddCommand(NewRevokeCmd())

	return cmd
}

// setup loads configuration, installs logging, and builds the access
// client. The returned cleanup stops the metrics server when one was
// started.
func setup(cmd *cobra.Command) (*access.Client, func(), error) {
	path := configFile
	if path == "" {
		path = xdg.ConfigFile()
	}
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	logging.SetDefault("podward", version, logging.Options{
		Format: cfg.Logging.Format,
		Level:  cfg.Logging.Level,
	})

	allow, err := config.CompileAllowlist(cfg.Origins.Allow)
	if err != nil {
		return nil, nil, err
	}
	token, err := cfg.BearerToken()
	if err != nil {
		return nil, nil, err
	}

	fetcher := fetch.New(
		fetch.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second}),
		fetch.WithStaticToken(token),
		fetch.WithRetries(cfg.HTTP.Retries),
		fetch.WithConcurrency(cfg.HTTP.Concurrency),
		fetch.WithAllowlist(allow),
	)
	client := access.NewClient(access.WithFetcher(fetcher))

	cleanup := func() {}
	if cfg.Metrics.Enabled {
		server := observability.NewServer(cfg.Metrics.Listen)
		if _, err := server.Start(); err != nil {
			return nil, nil, err
		}
		cleanup = func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Stop(ctx)
		}
	}
	return client, cleanup, nil
}
