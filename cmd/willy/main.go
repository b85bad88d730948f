// willy is Willy the Worm for the terminal: a grid platformer with a
// level editor, per-level high scores and an SSH server for remote play.
//
// Usage:
//
//	willy play [level-file]    - Play the built-in level or a level file
//	willy edit --in f --out f  - Edit a level
//	willy check <file>         - Validate a level file
//	willy convert <in> <out>   - Convert between .txt, .json and .yaml
//	willy levels [dir]         - List the levels in a directory
//	willy scores [level]       - Show high scores
//	willy menu                 - Start the interactive menu
//	willy serve                - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--db <path>          - Set database path (default: ~/.willy/scores.db)
//	--config <path>      - Gameplay config YAML
//	--difficulty <name>  - easy, normal or hard
//	--levels <dir>       - Level directory (default: ~/.willy/levels)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-willy/internal/config"
	"github.com/vovakirdan/tui-willy/internal/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLogLevel   string
	flagLogFile    string
)

// annotationInteractive marks commands that take over the terminal; their
// logs must not go to stderr.
const annotationInteractive = "interactive"

var (
	logger    = log.New(io.Discard)
	logOutput io.Writer = io.Discard
	logFile   *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "willy",
	Short: "Willy the Worm - a platformer for your terminal",
	Long: `Willy the Worm is a grid platformer played in the terminal.
Guide Willy over platforms and up ladders, collect presents, avoid
the balls and ring the bell before the bonus runs out.

Available commands:
  play     - Play a level
  edit     - Build or change a level
  check    - Validate a level file
  convert  - Convert a level to another format
  levels   - List levels in a directory
  scores   - View high scores
  menu     - Interactive menu
  serve    - Start SSH server for remote play

Examples:
  willy play
  willy play levels/tower.yaml --difficulty hard
  willy edit --out levels/mine.txt
  willy serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.willy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "~/.willy/levels", "Directory with level files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup configures logging and the game settings shared by all commands.
func setup(cmd *cobra.Command, _ []string) error {
	if err := setupLogger(cmd.Annotations[annotationInteractive] == "true"); err != nil {
		return err
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}

	// Surface config problems before a full-screen program hides them
	if _, err := config.LoadWilly(flagConfig); err != nil {
		logger.Warn("using default gameplay config", "error", err)
	}

	willy.SetConfigPath(flagConfig)
	willy.SetDifficultyPreset(preset)
	return nil
}

// setupLogger picks the log destination: the log file when given,
// otherwise stderr for plain commands and nowhere for full-screen ones.
func setupLogger(interactive bool) error {
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(expandHome(flagLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logFile = f
		logOutput = f
	case interactive:
		logOutput = io.Discard
	default:
		logOutput = os.Stderr
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger = log.NewWithOptions(logOutput, log.Options{
		ReportTimestamp: true,
		Prefix:          "willy",
		Level:           level,
	})
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// playerName is the name scores are saved under.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
