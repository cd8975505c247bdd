// File: discovery.go
// Title: Configuration File Discovery and Environment Overrides
// Description: Locates configuration files from an explicit path, an
//              environment variable or a list of candidate locations, loads
//              optional .env files and applies prefixed environment
//              variable overrides to typed configuration structs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with discovery and env support
// - 2026-10-19 v0.2.0: Struct tag based env overrides, .env loading

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	tioerror "github.com/JoyPoint/textio/foundation/core/error"
	tioerrors "github.com/JoyPoint/textio/foundation/core/errors"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Explicit   string   // Path given on the command line; wins when set
	EnvVar     string   // Environment variable holding a config path
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
}

// DefaultDiscoveryOptions returns discovery options for an application name:
// $<NAME>_CONFIG, then ./<name>.toml, ./<name>.yaml and ./<name>.yml.
func DefaultDiscoveryOptions(name string) DiscoveryOptions {
	return DiscoveryOptions{
		EnvVar:     envName(name) + "_CONFIG",
		Paths:      []string{"."},
		Filenames:  []string{name},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// FindConfigFile resolves the configuration file to use.
//
// An explicit path or one taken from the environment variable must exist;
// otherwise a CONFIG_NOT_FOUND error is returned. When neither is set the
// candidate locations are searched in order and "" is returned if none
// exists, meaning built-in defaults apply.
func FindConfigFile(options DiscoveryOptions) (string, error) {
	explicit := options.Explicit
	if explicit == "" && options.EnvVar != "" {
		explicit = os.Getenv(options.EnvVar)
	}
	if explicit != "" {
		if info, err := os.Stat(explicit); err != nil || info.IsDir() {
			return "", tioerrors.ConfigNotFound(explicit)
		}
		return explicit, nil
	}

	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}
	return "", nil
}

// ListPossibleConfigFiles returns a list of all possible configuration file paths
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}

// LoadEnvFile loads dir/.env into the process environment when it exists.
// Variables already set in the environment are not overwritten. It reports
// whether a file was loaded.
func LoadEnvFile(dir string) (bool, error) {
	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); err != nil {
		return false, nil
	}
	if err := godotenv.Load(envPath); err != nil {
		return false, tioerror.Wrap(err, "failed to load "+envPath).
			WithCode(tioerror.CodeInvalidFormat).
			WithOperation("config.LoadEnvFile").
			WithDetail("path", envPath)
	}
	return true, nil
}

// ApplyEnv overrides fields of target tagged with `env:"NAME"` from the
// variables PREFIX_NAME. Unset variables leave the field untouched. A nil
// environ reads the process environment.
func ApplyEnv(target interface{}, prefix string, environ map[string]string) error {
	opts := env.Options{Prefix: envName(prefix) + "_"}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return tioerror.Wrap(err, "invalid environment override").
			WithCode(tioerror.CodeInvalidConfig).
			WithOperation("config.ApplyEnv").
			WithDetail("prefix", opts.Prefix)
	}
	return nil
}

var envReplacer = strings.NewReplacer("-", "_", ".", "_")

func envName(name string) string {
	return strings.ToUpper(envReplacer.Replace(name))
}
