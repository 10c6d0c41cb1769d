// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/ssl-checker/src/internal/x509/inspect"
)

// Tool names.
const (
	toolCheckCertificate       = "check_certificate"
	toolInspectCertificateFile = "inspect_certificate_file"
	toolGetAnalytics           = "get_analytics"
)

// createTools returns the tool definitions served by default.
func createTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool(toolCheckCertificate,
				mcp.WithDescription("Connect to a domain over TLS, verify its certificate chain and report on the leaf certificate"),
				mcp.WithString("domain",
					mcp.Required(),
					mcp.Description("Bare hostname such as example.com (no scheme, port or path)"),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'json' or 'table' (default: json)"),
					mcp.DefaultString(inspect.FormatJSON),
					mcp.Enum(inspect.FormatJSON, inspect.FormatTable),
				),
			),
			Handler: handleCheckCertificate,
			Role:    "checker",
		},
		{
			Tool: mcp.NewTool(toolInspectCertificateFile,
				mcp.WithDescription("Evaluate a certificate given as a file path or base64 data (PEM, DER or PKCS#7) against a hostname, without network access"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path or base64-encoded certificate data"),
				),
				mcp.WithString("domain",
					mcp.Required(),
					mcp.Description("Hostname to match against the certificate"),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'json' or 'table' (default: json)"),
					mcp.DefaultString(inspect.FormatJSON),
					mcp.Enum(inspect.FormatJSON, inspect.FormatTable),
				),
			),
			Handler: handleInspectCertificateFile,
			Role:    "fileInspector",
		},
		{
			Tool: mcp.NewTool(toolGetAnalytics,
				mcp.WithDescription("Get the number of completed checks and how many found invalid, self-signed or revoked certificates"),
			),
			Handler: handleGetAnalytics,
			Role:    "analytics",
		},
	}
}
