// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/ssl-checker/src/mcp-server/templates"
)

const reportFieldsURI = "docs://report-fields"

// createResources returns the resources served by default.
func createResources() []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(reportFieldsURI, "Certificate Report Fields",
				mcp.WithResourceDescription("Meaning of every certificate report field and failure message"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleReportFieldsResource,
		},
	}
}

// handleReportFieldsResource serves templates/report-fields.md.
func handleReportFieldsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := templates.MagicEmbed.ReadFile("report-fields.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read report fields documentation: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      reportFieldsURI,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}
