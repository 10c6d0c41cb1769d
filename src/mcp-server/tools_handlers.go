// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/ssl-checker/src/internal/x509/inspect"
)

// handleCheckCertificate runs a live inspection of the requested domain.
// Pipeline failures become tool errors carrying the stage message.
func handleCheckCertificate(ctx context.Context, request mcp.CallToolRequest, deps *ServerDependencies) (*mcp.CallToolResult, error) {
	domain, err := request.RequireString("domain")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("domain parameter required: %v", err)), nil
	}
	format := request.GetString("format", inspect.FormatJSON)

	start := time.Now()
	report, err := deps.Checker.Inspect(ctx, domain)
	deps.Analytics.Record(report, err, time.Since(start))
	if err != nil {
		return mcp.NewToolResultError(inspect.Describe(err)), nil
	}

	return renderReport(report, format)
}

// handleInspectCertificateFile evaluates a certificate supplied by the
// caller. The input is tried as a file path first, then as base64.
func handleInspectCertificateFile(ctx context.Context, request mcp.CallToolRequest, deps *ServerDependencies) (*mcp.CallToolResult, error) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}
	domain, err := request.RequireString("domain")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("domain parameter required: %v", err)), nil
	}
	format := request.GetString("format", inspect.FormatJSON)

	certData, err := readCertificateInput(certInput)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, err := deps.Evaluator.EvaluateEncoded(certData, domain, deps.Clock())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s: %v", inspect.Describe(err), err)), nil
	}

	return renderReport(report, format)
}

// handleGetAnalytics returns the analytics totals as JSON.
func handleGetAnalytics(ctx context.Context, request mcp.CallToolRequest, deps *ServerDependencies) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(deps.Analytics.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analytics: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// readCertificateInput reads input as a file path, falling back to base64.
func readCertificateInput(input string) ([]byte, error) {
	if data, err := os.ReadFile(input); err == nil {
		return data, nil
	}
	if decoded, err := base64.StdEncoding.DecodeString(input); err == nil {
		return decoded, nil
	}
	return nil, fmt.Errorf("failed to read certificate: not a valid file path or base64 data")
}

func renderReport(report *inspect.Report, format string) (*mcp.CallToolResult, error) {
	out, err := inspect.Render(report, format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}
