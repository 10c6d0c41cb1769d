// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/ssl-checker/src/config"
	"github.com/H0llyW00dzZ/ssl-checker/src/internal/x509/inspect"
	"github.com/H0llyW00dzZ/ssl-checker/src/logger"
)

// app carries the state shared by the commands of one root command.
type app struct {
	version    string
	log        logger.Logger
	configFile string
	config     *config.Config
	// extra options appended after the configured ones
	inspectorOpts []inspect.Option
}

// Execute builds the root command and runs it with the process arguments.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(ctx, version, log).Execute()
}

// NewRootCommand builds the ssl-checker command tree. opts are applied to
// every inspector the commands create, after the configured settings.
func NewRootCommand(ctx context.Context, version string, log logger.Logger, opts ...inspect.Option) *cobra.Command {
	if log == nil {
		log = logger.NewCLILogger()
	}
	a := &app{
		version:       version,
		log:           log,
		inspectorOpts: opts,
	}

	rootCmd := &cobra.Command{
		Use:           "ssl-checker",
		Short:         "Inspect the TLS certificate a host presents",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configFile)
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			a.config = cfg
			return nil
		},
	}
	rootCmd.SetContext(ctx)

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "",
		"path to a JSON or YAML config file (default: $"+config.EnvConfigFile+")")

	rootCmd.AddCommand(
		a.checkCommand(),
		a.inspectCommand(),
		a.serveCommand(),
		a.mcpCommand(),
	)

	return rootCmd
}

// inspector builds an inspector from the configuration, then overrides.
func (a *app) inspector(overrides ...inspect.Option) *inspect.Inspector {
	opts := []inspect.Option{
		inspect.WithPort(a.config.Inspector.Port),
		inspect.WithConnectTimeout(a.config.ConnectTimeout()),
		inspect.WithHandshakeTimeout(a.config.HandshakeTimeout()),
	}
	opts = append(opts, overrides...)
	opts = append(opts, a.inspectorOpts...)
	return inspect.New(opts...)
}

// serviceLogger returns the logger for the HTTP API, following the logging
// section of the configuration. Text output keeps the caller's logger.
func (a *app) serviceLogger() logger.Logger {
	if a.config.Logging.Format == "json" || a.config.Logging.Silent {
		return logger.New(a.config.Logging.Format, a.config.Logging.Silent)
	}
	return a.log
}
