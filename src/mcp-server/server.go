// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/ssl-checker/src/logger"
)

// Serve runs the MCP server on the given streams until ctx is done or the
// input ends. Cancellation through ctx is a clean shutdown and returns nil.
//
// stdout carries the protocol, so log output must go elsewhere; l receives
// lifecycle messages and the transport's own errors.
func Serve(ctx context.Context, s *server.MCPServer, stdin io.Reader, stdout io.Writer, l logger.Logger) error {
	stdioServer := server.NewStdioServer(s)
	stdioServer.SetErrorLogger(log.New(loggerWriter{l}, "", 0))

	l.Printf("SSL Checker MCP server started")

	err := stdioServer.Listen(ctx, stdin, stdout)
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.Is(err, io.EOF):
		l.Printf("SSL Checker MCP server stopped")
		return nil
	default:
		return fmt.Errorf("mcp server: %w", err)
	}
}

// loggerWriter adapts a Logger to the io.Writer the stdio transport logs to.
type loggerWriter struct{ l logger.Logger }

func (w loggerWriter) Write(p []byte) (int, error) {
	w.l.Printf("%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
