// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/H0llyW00dzZ/ssl-checker/src/mcp-server/templates"
)

const instructionsTemplate = "ssl_checker_instructions.md"

// instructionData holds the data used to populate the instructions template.
type instructionData struct {
	Port      int
	Tools     []toolInfo
	ToolRoles map[string]string // Maps tool roles to tool names
}

type toolInfo struct {
	Name        string
	Description string
}

// loadInstructions renders the server instructions from the registered
// tools, so the text never names a tool the server does not have.
func loadInstructions(fs templates.EmbedFS, tools []ToolDefinition, port int) (string, error) {
	templateBytes, err := fs.ReadFile(instructionsTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	data := instructionData{
		Port:      port,
		ToolRoles: make(map[string]string, len(tools)),
	}
	for _, tool := range tools {
		data.Tools = append(data.Tools, toolInfo{
			Name:        tool.Tool.Name,
			Description: tool.Tool.Description,
		})
		if tool.Role != "" {
			data.ToolRoles[tool.Role] = tool.Tool.Name
		}
	}

	tmpl, err := template.New("instructions").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}
	return buf.String(), nil
}
