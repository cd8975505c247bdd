// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config decodes TOML and YAML configuration files into
//              typed structs, discovers which file to use and applies .env
//              files and prefixed environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed decoding, struct tag env overrides

/*
Package config provides the building blocks for typed application configuration.

Formats:

The format follows the file extension: .yaml and .yml are YAML, everything
else is TOML. Unknown keys are rejected in both formats.

	var cfg AppConfig
	if err := config.DecodeFile("app.toml", &cfg); err != nil {
		return err
	}

Discovery:

FindConfigFile checks an explicit path first, then the environment variable
named in DiscoveryOptions.EnvVar, then each candidate location. Finding
nothing among the candidates is not an error.

	opts := config.DefaultDiscoveryOptions("textio")
	opts.Explicit = flagValue
	path, err := config.FindConfigFile(opts)

Environment:

LoadEnvFile reads a .env file without overwriting variables that are
already set. ApplyEnv then binds fields tagged `env:"NAME"` from
PREFIX_NAME variables:

	type General struct {
		LogLevel string `toml:"log_level" yaml:"log_level" env:"LOG_LEVEL"`
	}

	config.ApplyEnv(&cfg, "textio", nil) // reads TEXTIO_LOG_LEVEL

Errors carry codes from the core error package: CONFIG_NOT_FOUND,
INVALID_FORMAT and INVALID_CONFIG.
*/
package config
