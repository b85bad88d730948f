// Package formats provides the level file encodings: glyph text, JSON
// array-of-arrays and YAML with metadata.
package formats

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-willy/internal/games/willy/core"
)

// Format identifies a level file encoding.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

// String returns the string representation of a format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Level is a parsed level file. Grid is the authored grid, marker included.
type Level struct {
	ID       string
	Name     string
	Grid     *core.Grid
	Metadata map[string]string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".lvl", ".json", ".yaml", ".yml"}
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".lvl":
		return FormatText, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported extension: %q", ext)
	}
}

// Parse decodes data in the given format.
func Parse(data []byte, f Format) (Level, error) {
	switch f {
	case FormatText:
		return ParseText(data)
	case FormatJSON:
		return ParseJSON(data)
	case FormatYAML:
		return ParseYAML(data)
	default:
		return Level{}, fmt.Errorf("unsupported format: %s", f)
	}
}

// Encode serializes a level in the given format.
func Encode(l Level, f Format) ([]byte, error) {
	switch f {
	case FormatText:
		return EncodeText(l), nil
	case FormatJSON:
		return EncodeJSON(l)
	case FormatYAML:
		return EncodeYAML(l)
	default:
		return nil, fmt.Errorf("unsupported format: %s", f)
	}
}
