// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes the certificate inspection pipeline as an [MCP]
// server over stdio.
//
// Tools:
//   - check_certificate: connect to a domain and report on its certificate
//   - inspect_certificate_file: evaluate a certificate given as a file path
//     or base64 data, without network access
//   - get_analytics: totals of completed checks
//
// Resources:
//   - docs://report-fields: meaning of every report field and failure message
//
// Failures are returned as tool errors whose text starts with the short
// message of the failed stage, for example "TCP connect error".
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
