// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the ssl-checker configuration.
//
// Example YAML configuration:
//
//	server:
//	  address: 127.0.0.1:8080
//	  readTimeoutSeconds: 15
//	  writeTimeoutSeconds: 30
//	  idleTimeoutSeconds: 60
//	  maxConcurrentChecks: 64
//	  allowedOrigins: ["*"]
//	inspector:
//	  port: 443
//	  connectTimeoutSeconds: 5
//	  handshakeTimeoutSeconds: 10
//	logging:
//	  format: json
//	  silent: false
package config
