package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 30,
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score         int
	Bonus         int
	Lives         int
	GameOver      bool // Out of lives
	LevelComplete bool // Goal reached
	Paused        bool
	Started       bool // False until the player starts the run
}

// Finished reports a run that has ended either way.
func (s GameState) Finished() bool {
	return s.GameOver || s.LevelComplete
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	Event string // Short notice for the status line, empty if nothing happened
}
