// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package httpserver exposes the certificate inspection pipeline over HTTP.
//
// Routes:
//
//	POST /check_certificate   {"domain": "example.com"} -> certificate report
//	GET  /analytics           totals of completed inspections
//	GET  /metrics             Prometheus exposition
//	GET  /healthz             liveness check
//
// Pipeline failures answer 500 with a short plain-text message naming the
// failed stage, for example "TLS connect error: x509: certificate signed by
// unknown authority". A request body that is not a JSON object with a
// non-empty "domain" string answers 400 "Invalid request body".
package httpserver
