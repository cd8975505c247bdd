// File: config.go
// Title: Core Configuration Decoding
// Description: Detects the configuration file format from its extension and
//              decodes TOML or YAML content into typed configuration
//              structs, reporting failures as structured errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed struct decoding replaces the map based accessors

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tioerror "github.com/JoyPoint/textio/foundation/core/error"
	tioerrors "github.com/JoyPoint/textio/foundation/core/errors"
	tiostringx "github.com/JoyPoint/textio/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DetectFormat determines the configuration format from file extension.
// Unknown extensions are treated as TOML.
func DetectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// DecodeFile reads filePath and decodes it into target, which must be a
// pointer to a struct carrying toml and yaml tags. The format is taken
// from the file extension.
func DecodeFile(filePath string, target interface{}) error {
	if tiostringx.IsBlank(filePath) {
		return tioerror.New("config file path cannot be empty").
			WithCode(tioerror.CodeValidationFailed).
			WithOperation("config.DecodeFile")
	}

	content, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return tioerrors.ConfigNotFound(filePath)
	}
	if err != nil {
		return tioerrors.FileRead("DecodeFile", filePath, err)
	}

	if err := Decode(content, DetectFormat(filePath), target); err != nil {
		return tioerror.Wrap(err, fmt.Sprintf("failed to parse config file %s", filePath)).
			WithDetail("filePath", filePath)
	}
	return nil
}

// Decode decodes content in the given format into target. Unknown keys are
// rejected so that typos in configuration files surface as errors.
func Decode(content []byte, format Format, target interface{}) error {
	if format == FormatAuto {
		format = FormatTOML
	}

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), target)
		if err != nil {
			return parseError(err, format)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}
			return tioerror.New(fmt.Sprintf("unknown config keys: %s", strings.Join(keys, ", "))).
				WithCode(tioerror.CodeInvalidFormat).
				WithOperation("config.Decode").
				WithDetail("format", format.String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
			return parseError(err, format)
		}
	default:
		return tioerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(tioerror.CodeInvalidFormat).
			WithOperation("config.Decode").
			WithDetail("format", format.String())
	}

	return nil
}

func parseError(err error, format Format) error {
	return tioerror.Wrap(err, strings.ToUpper(format.String())+" parse error").
		WithCode(tioerror.CodeInvalidFormat).
		WithOperation("config.Decode").
		WithDetail("format", format.String())
}
