// Package levels provides level loading and saving.
// This package depends on core but core does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-willy/internal/games/willy/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels/formats"
)

// BuiltinID is the id of the level compiled into the binary.
const BuiltinID = "default"

// ErrNotFound is returned when no level has the requested id.
var ErrNotFound = errors.New("level not found")

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Grid     *core.Grid // Authored form, marker included
	Metadata map[string]string
	FilePath string
}

// Builtin returns the default level.
func Builtin() Level {
	return Level{
		ID:   BuiltinID,
		Name: "Willy's First Climb",
		Grid: core.DefaultLevel(),
	}
}

// Playable validates the level for play and splits off the spawn point.
func (l Level) Playable() (core.Level, error) {
	if err := core.ValidatePlayable(l.Grid); err != nil {
		return core.Level{}, err
	}
	return core.NewLevel(l.Grid)
}

// Title returns the name, falling back to the id.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	logger *log.Logger
}

// NewLoader creates a new level loader. A nil logger discards output.
func NewLoader(root string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Root: root, logger: logger}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		level, err := LoadFile(path)
		if err != nil {
			l.logger.Warn("skipping level file", "path", path, "error", err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadByID loads a specific level by ID. The built-in level is always available.
func (l *Loader) LoadByID(id string) (Level, error) {
	if id == BuiltinID {
		return Builtin(), nil
	}

	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns the ids LoadByID accepts: the built-in level first,
// then the directory's levels by id. A file reusing the built-in id is
// listed once.
func (l *Loader) ListIDs() ([]string, error) {
	found, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := []string{BuiltinID}
	for _, lvl := range found {
		if lvl.ID != BuiltinID {
			ids = append(ids, lvl.ID)
		}
	}
	return ids, nil
}

// LoadFile loads a single level file. Files without an id use their base name.
func LoadFile(path string) (Level, error) {
	f, err := formats.FormatForPath(path)
	if err != nil {
		return Level{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	parsed, err := formats.Parse(data, f)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	id := parsed.ID
	if id == "" {
		base := filepath.Base(path)
		id = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return Level{
		ID:       id,
		Name:     parsed.Name,
		Grid:     parsed.Grid,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// SaveFile writes a level in the format implied by the path extension.
func SaveFile(path string, lvl Level) error {
	f, err := formats.FormatForPath(path)
	if err != nil {
		return err
	}

	data, err := formats.Encode(formats.Level{
		ID:       lvl.ID,
		Name:     lvl.Name,
		Grid:     lvl.Grid,
		Metadata: lvl.Metadata,
	}, f)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
