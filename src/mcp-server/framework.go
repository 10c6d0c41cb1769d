// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/ssl-checker/src/config"
	"github.com/H0llyW00dzZ/ssl-checker/src/internal/analytics"
	"github.com/H0llyW00dzZ/ssl-checker/src/internal/x509/inspect"
	"github.com/H0llyW00dzZ/ssl-checker/src/mcp-server/templates"
)

// serverName is the name announced during the MCP initialization handshake.
const serverName = "SSL Checker"

// Checker runs one live inspection. [*inspect.Inspector] implements it.
type Checker interface {
	Inspect(ctx context.Context, domain string) (*inspect.Report, error)
}

// ToolHandler implements one tool with access to the server dependencies.
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest, deps *ServerDependencies) (*mcp.CallToolResult, error)

// ToolDefinition pairs an MCP tool definition with its handler.
//
// Role names the part the tool plays in the instructions template, so the
// template does not hard-code tool names.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ServerDependencies holds everything the tool handlers need.
type ServerDependencies struct {
	Version   string
	Config    *config.Config
	Checker   Checker
	Evaluator *inspect.Evaluator
	Analytics *analytics.Recorder
	Clock     func() time.Time
	Embed     templates.EmbedFS
	Tools     []ToolDefinition
	Resources []server.ServerResource
}

// ServerBuilder constructs the [MCP] server using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(cfg).
//	    WithVersion(version.Version).
//	    WithChecker(inspector).
//	    WithDefaultTools().
//	    WithDefaultResources().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a builder with no dependencies configured.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the configuration. A nil config means the defaults.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithVersion sets the version announced to clients.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithChecker sets the live inspection backend.
func (b *ServerBuilder) WithChecker(c Checker) *ServerBuilder {
	b.deps.Checker = c
	return b
}

// WithEvaluator sets the evaluator used for certificate files.
func (b *ServerBuilder) WithEvaluator(e *inspect.Evaluator) *ServerBuilder {
	b.deps.Evaluator = e
	return b
}

// WithAnalytics sets the recorder fed by check_certificate and read by
// get_analytics.
func (b *ServerBuilder) WithAnalytics(r *analytics.Recorder) *ServerBuilder {
	b.deps.Analytics = r
	return b
}

// WithClock sets the time source used when evaluating certificate files.
func (b *ServerBuilder) WithClock(now func() time.Time) *ServerBuilder {
	b.deps.Clock = now
	return b
}

// WithEmbed sets the template filesystem.
func (b *ServerBuilder) WithEmbed(fs templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = fs
	return b
}

// WithTools adds tool definitions.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithDefaultTools adds check_certificate, inspect_certificate_file and
// get_analytics.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	return b.WithTools(createTools()...)
}

// WithResources adds resources.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithDefaultResources adds the report field documentation.
func (b *ServerBuilder) WithDefaultResources() *ServerBuilder {
	return b.WithResources(createResources()...)
}

// resolve fills unset dependencies with their defaults.
func (b *ServerBuilder) resolve() error {
	if b.deps.Checker == nil {
		return errors.New("mcpserver: checker is required")
	}
	if b.deps.Config == nil {
		b.deps.Config = config.Default()
	}
	if b.deps.Evaluator == nil {
		b.deps.Evaluator = inspect.NewEvaluator(nil)
	}
	if b.deps.Analytics == nil {
		b.deps.Analytics = analytics.Default
	}
	if b.deps.Clock == nil {
		b.deps.Clock = time.Now
	}
	if b.deps.Embed == nil {
		b.deps.Embed = templates.MagicEmbed
	}
	return nil
}

// ServerTools binds every tool definition to the builder's dependencies.
func (b *ServerBuilder) ServerTools() ([]server.ServerTool, error) {
	if err := b.resolve(); err != nil {
		return nil, err
	}

	deps := &b.deps
	tools := make([]server.ServerTool, 0, len(deps.Tools))
	for _, def := range deps.Tools {
		handler := def.Handler
		tools = append(tools, server.ServerTool{
			Tool: def.Tool,
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, request, deps)
			},
		})
	}
	return tools, nil
}

// Build creates the [MCP] server with all configured dependencies.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	tools, err := b.ServerTools()
	if err != nil {
		return nil, err
	}

	instructions, err := loadInstructions(b.deps.Embed, b.deps.Tools, b.deps.Config.Inspector.Port)
	if err != nil {
		return nil, fmt.Errorf("failed to load instructions: %w", err)
	}

	s := server.NewMCPServer(
		serverName,
		b.deps.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions(instructions),
	)

	s.AddTools(tools...)
	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	return s, nil
}
