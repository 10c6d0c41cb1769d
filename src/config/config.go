// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable consulted when no
// configuration path is given explicitly.
const EnvConfigFile = "SSL_CHECKER_CONFIG_FILE"

// Default values applied before a configuration file is read.
const (
	DefaultAddress                 = "127.0.0.1:8080"
	DefaultReadTimeoutSeconds      = 15
	DefaultWriteTimeoutSeconds     = 30
	DefaultIdleTimeoutSeconds      = 60
	DefaultMaxConcurrentChecks     = 64
	DefaultPort                    = 443
	DefaultConnectTimeoutSeconds   = 5
	DefaultHandshakeTimeoutSeconds = 10
	DefaultLogFormat               = "text"
)

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config is the configuration shared by the CLI, the HTTP API and the MCP
// server.
//
// It can be loaded from a JSON or YAML file named by --config or by the
// SSL_CHECKER_CONFIG_FILE environment variable, with defaults applied for
// any missing values. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Server: HTTP API settings
	Server struct {
		// Address: listen address of the HTTP API
		Address string `json:"address" yaml:"address"`
		// ReadTimeout: seconds allowed for reading a request
		ReadTimeout int `json:"readTimeoutSeconds" yaml:"readTimeoutSeconds"`
		// WriteTimeout: seconds allowed for writing a response
		WriteTimeout int `json:"writeTimeoutSeconds" yaml:"writeTimeoutSeconds"`
		// IdleTimeout: seconds a keep-alive connection may stay idle
		IdleTimeout int `json:"idleTimeoutSeconds" yaml:"idleTimeoutSeconds"`
		// MaxConcurrentChecks: upper bound on inspections running at once
		MaxConcurrentChecks int `json:"maxConcurrentChecks" yaml:"maxConcurrentChecks"`
		// AllowedOrigins: CORS origins; "*" allows any origin
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
	} `json:"server" yaml:"server"`

	// Inspector: settings of the inspection pipeline
	Inspector struct {
		// Port: remote port to connect to
		Port int `json:"port" yaml:"port"`
		// ConnectTimeout: seconds allowed for the TCP connect
		ConnectTimeout int `json:"connectTimeoutSeconds" yaml:"connectTimeoutSeconds"`
		// HandshakeTimeout: seconds allowed for the TLS handshake
		HandshakeTimeout int `json:"handshakeTimeoutSeconds" yaml:"handshakeTimeoutSeconds"`
	} `json:"inspector" yaml:"inspector"`

	// Logging: log output settings
	Logging struct {
		// Format: "text" or "json"
		Format string `json:"format" yaml:"format"`
		// Silent: suppress all log output
		Silent bool `json:"silent" yaml:"silent"`
	} `json:"logging" yaml:"logging"`
}

// Default returns a Config holding only the default values.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// applyDefaults resets every unset or non-positive value to its default.
func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = DefaultAddress
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = DefaultReadTimeoutSeconds
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = DefaultWriteTimeoutSeconds
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = DefaultIdleTimeoutSeconds
	}
	if c.Server.MaxConcurrentChecks <= 0 {
		c.Server.MaxConcurrentChecks = DefaultMaxConcurrentChecks
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if c.Inspector.Port <= 0 || c.Inspector.Port > 65535 {
		c.Inspector.Port = DefaultPort
	}
	if c.Inspector.ConnectTimeout <= 0 {
		c.Inspector.ConnectTimeout = DefaultConnectTimeoutSeconds
	}
	if c.Inspector.HandshakeTimeout <= 0 {
		c.Inspector.HandshakeTimeout = DefaultHandshakeTimeoutSeconds
	}
	if c.Logging.Format != "json" {
		c.Logging.Format = DefaultLogFormat
	}
}

// ReadTimeout returns the server read timeout as a duration.
func (c *Config) ReadTimeout() time.Duration { return seconds(c.Server.ReadTimeout) }

// WriteTimeout returns the server write timeout as a duration.
func (c *Config) WriteTimeout() time.Duration { return seconds(c.Server.WriteTimeout) }

// IdleTimeout returns the server idle timeout as a duration.
func (c *Config) IdleTimeout() time.Duration { return seconds(c.Server.IdleTimeout) }

// ConnectTimeout returns the inspector connect timeout as a duration.
func (c *Config) ConnectTimeout() time.Duration { return seconds(c.Inspector.ConnectTimeout) }

// HandshakeTimeout returns the inspector handshake timeout as a duration.
func (c *Config) HandshakeTimeout() time.Duration { return seconds(c.Inspector.HandshakeTimeout) }

func seconds(n int) time.Duration { return time.Duration(n) * time.Second }

// detectFormat determines the configuration file format based on file extension.
// The match is case-insensitive; anything that is not YAML is read as JSON.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// unmarshal decodes data into config according to f.
func unmarshal(data []byte, config *Config, f format) error {
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load loads the configuration from a JSON or YAML file or applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. SSL_CHECKER_CONFIG_FILE is checked if path is empty
//  3. Config file values override defaults (if a path is known)
//  4. Non-positive or unknown values fall back to their defaults
//
// A path that cannot be read or parsed is an error; no path at all is not.
func Load(path string) (*Config, error) {
	config := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := unmarshal(data, config, detectFormat(path)); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return config, nil
}
