// Package source produces raw trees for the caster from encoded documents.
//
// Every producer yields the same shape: map[string]any for mappings, []any
// for sequences and string for every scalar, which is what a .glyphs
// (OpenStep property list) file decodes to. JSON and YAML inputs are
// normalised to that shape so the same schema applies to all of them.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	glyphscast "github.com/reoring/glyphscast"
	"github.com/reoring/glyphscast/i18n"
)

// Format names an input encoding.
type Format string

const (
	FormatPlist Format = "plist"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glyphs", ".plist":
		return FormatPlist, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("source: unsupported file extension %q", filepath.Ext(path))
}

// Load reads and decodes the file at path.
func Load(path string) (map[string]any, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	return Decode(format, b)
}

// Decode decodes b with the given format. The root must be a mapping.
func Decode(format Format, b []byte) (map[string]any, error) {
	var (
		root any
		err  error
	)
	switch format {
	case FormatPlist:
		root, err = decodePlist(b)
	case FormatJSON:
		root, err = decodeJSON(b)
	case FormatYAML:
		root, err = decodeYAML(b)
	default:
		return nil, fmt.Errorf("source: unknown format %q", format)
	}
	if err != nil {
		return nil, parseError(format, err)
	}
	m, ok := root.(map[string]any)
	if !ok {
		return nil, glyphscast.TypeMismatch(glyphscast.Root(), "mapping at document root")
	}
	return m, nil
}

func parseError(format Format, err error) error {
	return glyphscast.Issues{{
		Path:    "/",
		Code:    glyphscast.CodeParseError,
		Message: i18n.T(glyphscast.CodeParseError, nil),
		Hint:    string(format),
		Cause:   err,
	}}
}
