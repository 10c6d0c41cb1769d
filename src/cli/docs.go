// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface of ssl-checker.
//
// It implements a Cobra-based CLI with four commands:
//
//	ssl-checker check DOMAIN [--output json|table] [--port N] [--timeout D]
//	ssl-checker inspect FILE --domain HOST [--all] [--output json|table]
//	ssl-checker serve [--addr ADDR]
//	ssl-checker mcp
//
// Every command honours the persistent --config flag, which names a JSON or
// YAML configuration file (see package config).
package cli
