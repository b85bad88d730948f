package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned for coordinates outside the grid.
// Callers that clamp their inputs never see it.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// ErrInvalidLevel matches every *LevelError via errors.Is.
var ErrInvalidLevel = errors.New("invalid level")

// Level error codes.
const (
	CodeBadDimensions   = "BAD_DIMENSIONS"
	CodeUnknownTile     = "UNKNOWN_TILE"
	CodeMultipleMarkers = "MULTIPLE_MARKERS"
	CodeMissingMarker   = "MISSING_MARKER"
	CodeMissingGoal     = "MISSING_GOAL"
)

// LevelError describes why an authored grid was rejected.
type LevelError struct {
	Code    string
	Message string
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("invalid level [%s]: %s", e.Code, e.Message)
}

// Is makes errors.Is(err, ErrInvalidLevel) true for any LevelError.
func (e *LevelError) Is(target error) bool {
	return target == ErrInvalidLevel
}

func levelErrorf(code, format string, args ...any) *LevelError {
	return &LevelError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func outOfBounds(x, y int) error {
	return fmt.Errorf("tile (%d,%d) outside %dx%d grid: %w", x, y, Width, Height, ErrOutOfBounds)
}
