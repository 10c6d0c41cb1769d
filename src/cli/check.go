// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/ssl-checker/src/internal/analytics"
	"github.com/H0llyW00dzZ/ssl-checker/src/internal/x509/inspect"
)

func (a *app) checkCommand() *cobra.Command {
	var (
		output  string
		port    int
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "check DOMAIN",
		Short: "Connect to DOMAIN and report on its certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var overrides []inspect.Option
			if port > 0 {
				overrides = append(overrides, inspect.WithPort(port))
			}
			if timeout > 0 {
				overrides = append(overrides, inspect.WithHandshakeTimeout(timeout))
			}

			start := time.Now()
			report, err := a.inspector(overrides...).Inspect(cmd.Context(), args[0])
			analytics.Default.Record(report, err, time.Since(start))
			if err != nil {
				return describe(err)
			}

			return printReport(cmd, report, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", inspect.FormatJSON, "output format: json or table")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "remote port (default: from config, 443)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "TLS handshake timeout (default: from config, 10s)")

	return cmd
}

func (a *app) inspectCommand() *cobra.Command {
	var (
		output string
		domain string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Evaluate a PEM, DER or PKCS#7 certificate file against a hostname",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("error reading input file: %w", err)
			}

			in := a.inspector()
			if all {
				reports, err := in.Evaluator().EvaluateBundle(data, domain, in.Now())
				if err != nil {
					return describe(err)
				}
				return printReports(cmd, reports, output)
			}

			report, err := in.Evaluator().EvaluateEncoded(data, domain, in.Now())
			if err != nil {
				return describe(err)
			}

			return printReport(cmd, report, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", inspect.FormatJSON, "output format: json or table")
	cmd.Flags().StringVarP(&domain, "domain", "d", "", "hostname to match against the certificate")
	cmd.Flags().BoolVar(&all, "all", false, "report on every certificate in the file, not only the first")
	_ = cmd.MarkFlagRequired("domain")

	return cmd
}

func printReport(cmd *cobra.Command, report *inspect.Report, format string) error {
	out, err := inspect.Render(report, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func printReports(cmd *cobra.Command, reports []*inspect.Report, format string) error {
	out, err := inspect.RenderAll(reports, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

// describedError presents a pipeline failure with its user-facing message
// while keeping the underlying error reachable through errors.Is and As.
type describedError struct{ err error }

func (e *describedError) Error() string { return inspect.Describe(e.err) }

func (e *describedError) Unwrap() error { return e.err }

func describe(err error) error { return &describedError{err: err} }
