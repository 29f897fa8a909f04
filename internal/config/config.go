// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

// Package config loads and validates the podward configuration: YAML
// file layered under command-line flags, checked against a generated
// JSON Schema before use.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Config is the full podward configuration.
type Config struct {
	Auth    AuthConfig    `koanf:"auth" json:"auth,omitempty"`
	HTTP    HTTPConfig    `koanf:"http" json:"http,omitempty"`
	Logging LoggingConfig `koanf:"logging" json:"logging,omitempty"`
	Origins OriginsConfig `koanf:"origins" json:"origins,omitempty"`
	Metrics MetricsConfig `koanf:"metrics" json:"metrics,omitempty"`
}

// AuthConfig carries the credentials presented to pod servers.
type AuthConfig struct {
	// Token is a bearer token sent on every request. Prefer TokenFile
	// so the token stays out of the config file.
	Token string `koanf:"token" json:"token,omitempty"`

	// TokenFile points at a file whose trimmed contents are the token.
	TokenFile string `koanf:"token_file" json:"token_file,omitempty"`
}

// HTTPConfig tunes the pod HTTP client.
type HTTPConfig struct {
	// TimeoutSeconds bounds a single request, zero means no timeout.
	TimeoutSeconds int `koanf:"timeout_seconds" json:"timeout_seconds,omitempty" jsonschema:"minimum=0"`

	// Retries is how many times idempotent requests are retried on
	// transport errors and 5xx responses.
	Retries int `koanf:"retries" json:"retries,omitempty" jsonschema:"minimum=0"`

	// Concurrency caps parallel fetches when resolving policy bundles.
	Concurrency int `koanf:"concurrency" json:"concurrency,omitempty" jsonschema:"minimum=1"`
}

// LoggingConfig selects log output format and verbosity.
type LoggingConfig struct {
	Format string `koanf:"format" json:"format,omitempty" jsonschema:"enum=json,enum=text"`
	Level  string `koanf:"level" json:"level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
}

// OriginsConfig restricts which pod origins the client will talk to.
type OriginsConfig struct {
	// Allow is a list of glob patterns matched against request origins,
	// e.g. "https://*.pod.example". Empty allows every origin.
	Allow []string `koanf:"allow" json:"allow,omitempty"`
}

// MetricsConfig controls the optional Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled" json:"enabled,omitempty"`
	Listen  string `koanf:"listen" json:"listen,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			TimeoutSeconds: 30,
			Retries:        3,
			Concurrency:    8,
		},
		Logging: LoggingConfig{
			Format: "json",
			Level:  "info",
		},
		Metrics: MetricsConfig{
			Listen: "localhost:9464",
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file
// at path (skipped when path is empty or the file does not exist), then
// flag overrides. The file is schema-validated before it is applied.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No config file is fine; defaults and flags apply.
		case err != nil:
			return cfg, oops.In("config").
				Code("CONFIG_READ").
				With("path", path).
				Wrapf(err, "reading config file %s", path)
		default:
			if err := ValidateYAML(data); err != nil {
				return cfg, oops.In("config").
					Code("CONFIG_INVALID").
					With("path", path).
					Wrapf(err, "config file %s failed validation", path)
			}
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, oops.In("config").
					Code("CONFIG_PARSE").
					With("path", path).
					Wrapf(err, "parsing config file %s", path)
			}
		}
	}

	if flags != nil {
		// Only explicitly set flags override; an untouched flag's zero
		// default must not clobber the built-in or file value.
		changed := pflag.NewFlagSet("overrides", pflag.ContinueOnError)
		flags.Visit(changed.AddFlag)
		if err := k.Load(posflag.Provider(changed, ".", k), nil); err != nil {
			return cfg, oops.In("config").
				Code("CONFIG_FLAGS").
				Wrapf(err, "applying flag overrides")
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, oops.In("config").
			Code("CONFIG_DECODE").
			Wrapf(err, "decoding configuration")
	}
	return cfg, nil
}

// BearerToken resolves the configured token, reading TokenFile when set.
func (c Config) BearerToken() (string, error) {
	if c.Auth.TokenFile != "" {
		data, err := os.ReadFile(c.Auth.TokenFile)
		if err != nil {
			return "", oops.In("config").
				Code("TOKEN_READ").
				With("path", c.Auth.TokenFile).
				Wrapf(err, "reading token file %s", c.Auth.TokenFile)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return c.Auth.Token, nil
}
