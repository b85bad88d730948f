// Package willy adapts the Willy the Worm core to the platform's Game
// interface: input frames in, a rendered board out, and a bonus clock the
// platform runs next to the frame tick.
package willy

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-willy/internal/config"
	"github.com/vovakirdan/tui-willy/internal/core"
	wcore "github.com/vovakirdan/tui-willy/internal/games/willy/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels"
	"github.com/vovakirdan/tui-willy/internal/registry"
)

// GameID is the registry id and the score table key.
const GameID = "willy"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// selectedLevel is the level new games start on.
var selectedLevel = levels.Builtin()

// SetConfigPath sets the custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLevel selects the level for games created through the registry.
func SetLevel(lvl levels.Level) {
	selectedLevel = lvl
}

// Game implements registry.Game and registry.Clocked.
type Game struct {
	source   levels.Level
	rules    wcore.Rules
	interval time.Duration
	session  *wcore.Session
	started  bool
	event    string
	loadErr  error

	screenW int
	screenH int
}

// New creates a game on the selected level with the configured rules.
func New() *Game {
	return &Game{source: selectedLevel}
}

// NewWithLevel creates a game on a specific level, for test play from the editor.
func NewWithLevel(lvl levels.Level) *Game {
	return &Game{source: lvl}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Willy the Worm"
}

// LevelID returns the id of the level being played.
func (g *Game) LevelID() string {
	return g.source.ID
}

// LevelTitle returns the display name of the level being played.
func (g *Game) LevelTitle() string {
	return g.source.Title()
}

// Reset loads the configuration and prepares the level. The run starts on
// the first confirm.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.started = false
	g.event = ""

	gameCfg := loadConfig()
	g.rules = RulesFromConfig(gameCfg)
	g.interval = gameCfg.BonusInterval()

	playable, err := g.source.Playable()
	if err != nil {
		g.loadErr = err
		g.session = nil
		return
	}
	g.loadErr = nil
	g.session = wcore.NewSession(playable, g.rules)
}

// loadConfig reads the gameplay config and applies the difficulty preset.
func loadConfig() config.WillyConfig {
	gameCfg, err := config.LoadWilly(configPath)
	if err != nil {
		gameCfg = config.DefaultWillyConfig()
	}
	if difficultyPreset != "" {
		config.ApplyWillyPreset(&gameCfg, difficultyPreset)
	}
	return gameCfg
}

// CurrentRules returns the rules new games will play with.
func CurrentRules() wcore.Rules {
	return RulesFromConfig(loadConfig())
}

// RulesFromConfig converts the YAML gameplay section to core rules.
func RulesFromConfig(cfg config.WillyConfig) wcore.Rules {
	return wcore.Rules{
		Lives:        cfg.Gameplay.Lives,
		InitialBonus: cfg.Gameplay.InitialBonus,
		BonusStep:    cfg.Gameplay.BonusStep,
		HazardPolicy: wcore.HazardPolicy(cfg.Gameplay.HazardPolicy),
	}
}

// Resize adapts the layout to a new terminal size without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// LoadErr reports why the level could not be played, if it could not.
func (g *Game) LoadErr() error {
	return g.loadErr
}

// Step applies the input collected during one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.session == nil || input.Empty() {
		return core.StepResult{State: g.State()}
	}
	g.event = ""

	st := g.session.State()
	switch {
	case !g.started:
		if input.Has(core.ActionConfirm) || input.Has(core.ActionJump) {
			g.session.Start()
			g.started = true
		}
		return g.result()

	case st.Terminal():
		if input.Has(core.ActionRestart) || input.Has(core.ActionConfirm) {
			g.session.Reset()
		}
		return g.result()
	}

	if input.Has(core.ActionPause) {
		g.session.TogglePause()
		return g.result()
	}

	for _, a := range input.Actions() {
		dir, ok := directionFor(a)
		if !ok {
			continue
		}
		out := g.session.Move(dir)
		g.noteOutcome(out)
		if !g.session.TimerActive() {
			break
		}
	}

	return g.result()
}

// noteOutcome turns a movement outcome into a status line message.
func (g *Game) noteOutcome(out wcore.Outcome) {
	switch {
	case out.Completed:
		g.event = fmt.Sprintf("Ding! Level complete, bonus %d added", g.session.State().Bonus)
	case out.HazardHit && g.session.Rules().HazardPolicy == wcore.HazardLoseLife:
		g.event = "Ouch! Willy lost a worm"
	case out.HazardHit:
		g.event = "Careful, a ball"
	case out.Collected:
		g.event = fmt.Sprintf("Present! +%d", out.ScoreDelta)
	}
}

func directionFor(a core.Action) (wcore.Direction, bool) {
	switch a {
	case core.ActionLeft:
		return wcore.DirLeft, true
	case core.ActionRight:
		return wcore.DirRight, true
	case core.ActionUp:
		return wcore.DirUp, true
	case core.ActionDown:
		return wcore.DirDown, true
	case core.ActionJump:
		return wcore.DirJump, true
	default:
		return wcore.DirNone, false
	}
}

// ClockInterval returns the bonus timer period.
func (g *Game) ClockInterval() time.Duration {
	return g.interval
}

// ClockRunning reports whether the bonus timer should be scheduled.
func (g *Game) ClockRunning() bool {
	return g.session != nil && g.started && g.session.TimerActive()
}

// ClockTick applies one bonus timer period.
func (g *Game) ClockTick() core.StepResult {
	if !g.ClockRunning() {
		return core.StepResult{State: g.State()}
	}
	if g.session.Tick() {
		if g.session.State().Over {
			g.event = "Out of time and out of worms"
		} else {
			g.event = "Out of time! Willy lost a worm"
		}
	}
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Event: g.event}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	return core.GameState{
		Score:         st.Score,
		Bonus:         st.Bonus,
		Lives:         st.Lives,
		GameOver:      st.Over,
		LevelComplete: st.LevelComplete,
		Paused:        g.started && g.session.Paused(),
		Started:       g.started,
	}
}
