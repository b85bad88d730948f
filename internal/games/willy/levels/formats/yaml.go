package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-willy/internal/games/willy/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	g, err := core.DecodeRows(yl.Rows)
	if err != nil {
		return Level{}, err
	}

	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Grid:     g,
		Metadata: yl.Metadata,
	}, nil
}

// EncodeYAML writes a level file with its id, name and metadata.
func EncodeYAML(l Level) ([]byte, error) {
	return yaml.Marshal(YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Rows:     l.Grid.EncodeRows(),
		Metadata: l.Metadata,
	})
}
