// ============================================================================
// textio - Text data file toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the textio tool and libraries
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Build information, overridden at link time:
//
//	go build -ldflags "-X github.com/JoyPoint/textio/pkg/core/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Component versions
const (
	// Library packages under foundation/
	Foundation = "0.3.0"

	// Configuration file schema
	ConfigSchema = "1"
)

// Info describes the running binary
type Info struct {
	Version      string `json:"version"`
	GitCommit    string `json:"git_commit"`
	BuildDate    string `json:"build_date"`
	Foundation   string `json:"foundation"`
	ConfigSchema string `json:"config_schema"`
	GoVersion    string `json:"go_version"`
	Platform     string `json:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:      Version,
		GitCommit:    GitCommit,
		BuildDate:    BuildDate,
		Foundation:   Foundation,
		ConfigSchema: ConfigSchema,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns the one-line form, e.g. "textio v0.1.0 (development)"
func (i Info) String() string {
	return fmt.Sprintf("textio v%s (%s)", i.Version, i.GitCommit)
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "foundation":
		return Foundation
	case "config":
		return ConfigSchema
	default:
		return Version
	}
}
