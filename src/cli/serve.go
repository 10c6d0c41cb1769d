// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	httpserver "github.com/H0llyW00dzZ/ssl-checker/src/http-server"
	"github.com/H0llyW00dzZ/ssl-checker/src/internal/analytics"
	"github.com/H0llyW00dzZ/ssl-checker/src/logger"
	mcpserver "github.com/H0llyW00dzZ/ssl-checker/src/mcp-server"
)

func (a *app) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.config.Server.Address
			}

			srv, err := httpserver.New(a.inspector(), httpserver.Options{
				Address:             addr,
				ReadTimeout:         a.config.ReadTimeout(),
				WriteTimeout:        a.config.WriteTimeout(),
				IdleTimeout:         a.config.IdleTimeout(),
				MaxConcurrentChecks: a.config.Server.MaxConcurrentChecks,
				AllowedOrigins:      a.config.Server.AllowedOrigins,
				Logger:              a.serviceLogger(),
				Analytics:           analytics.Default,
			})
			if err != nil {
				return err
			}

			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default: from config, 127.0.0.1:8080)")

	return cmd
}

func (a *app) mcpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := a.inspector()

			s, err := mcpserver.NewServerBuilder().
				WithConfig(a.config).
				WithVersion(a.version).
				WithChecker(in).
				WithEvaluator(in.Evaluator()).
				WithClock(in.Now).
				WithAnalytics(analytics.Default).
				WithDefaultTools().
				WithDefaultResources().
				Build()
			if err != nil {
				return fmt.Errorf("failed to build MCP server: %w", err)
			}

			// stdout carries the protocol, so logs stay quiet unless JSON
			// logging was asked for.
			silent := a.config.Logging.Silent || a.config.Logging.Format != "json"
			log := logger.NewJSONLogger(cmd.ErrOrStderr(), silent)

			return mcpserver.Serve(cmd.Context(), s, cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}
}
