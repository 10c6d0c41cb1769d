// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Command ssl-checker inspects the TLS certificate a host presents.
//
// Usage:
//
//	ssl-checker check example.com --output table
//	ssl-checker inspect ./cert.pem --domain example.com
//	ssl-checker serve --addr 127.0.0.1:8080
//	ssl-checker mcp
//
// Build with a version string:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/ssl-checker
package main
