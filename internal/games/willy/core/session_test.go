package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-willy/internal/games/willy/core"
)

func newSession(t *testing.T, g *core.Grid, rules core.Rules) *core.Session {
	t.Helper()
	lvl, err := core.NewLevel(g)
	if err != nil {
		t.Fatalf("NewLevel failed: %v", err)
	}
	return core.NewSession(lvl, rules)
}

func TestSessionInputsIgnoredBeforeStart(t *testing.T) {
	s := newSession(t, core.DefaultLevel(), core.DefaultRules())

	out := s.Move(core.DirRight)

	if out.Moved(s.Spawn()) || s.Pos() != s.Spawn() {
		t.Errorf("move before start should be ignored, got %v", s.Pos())
	}
	if s.TimerActive() {
		t.Error("timer should not run before start")
	}
	if s.Tick() {
		t.Error("tick before start should do nothing")
	}
	if st := s.State(); st.Bonus != 1000 || st.Lives != 3 {
		t.Errorf("unexpected initial state %+v", st)
	}
}

func TestSessionCollectAndComplete(t *testing.T) {
	g := floorGrid(t, 23)
	mustSet(t, g, 3, 22, core.TileActor)
	mustSet(t, g, 4, 22, core.TileCollectible)
	mustSet(t, g, 6, 22, core.TileGoal)

	s := newSession(t, g, core.DefaultRules())
	s.Start()

	s.Move(core.DirRight)
	if got := s.State().Score; got != 100 {
		t.Fatalf("expected score 100 after pickup, got %d", got)
	}

	s.Tick()
	s.Move(core.DirRight)
	out := s.Move(core.DirRight)
	if !out.Completed {
		t.Fatalf("expected completion, got %+v", out)
	}

	st := s.State()
	if !st.LevelComplete || st.Score != 100+990 {
		t.Errorf("expected score %d on completion, got %+v", 100+990, st)
	}

	if s.Tick() || s.State() != st {
		t.Error("tick after completion should do nothing")
	}
	if s.Move(core.DirLeft).Moved(s.Pos()) {
		t.Error("move after completion should be ignored")
	}
}

func TestSessionResetRestoresLevel(t *testing.T) {
	g := floorGrid(t, 23)
	mustSet(t, g, 3, 22, core.TileActor)
	mustSet(t, g, 4, 22, core.TileCollectible)
	mustSet(t, g, 5, 22, core.TileGoal)

	s := newSession(t, g, core.DefaultRules())
	s.Start()
	s.Move(core.DirRight)
	s.Move(core.DirRight)

	scored := s.State().Score
	s.Reset()

	st := s.State()
	if st.Score != scored {
		t.Errorf("reset should keep the score: expected %d, got %d", scored, st.Score)
	}
	if st.Bonus != 1000 || !st.Running || st.LevelComplete {
		t.Errorf("unexpected state after reset: %+v", st)
	}
	if s.Pos() != core.P(3, 22) {
		t.Errorf("expected respawn at (3,22), got %v", s.Pos())
	}
	if tile, _ := s.Grid().TileAt(4, 22); tile != core.TileCollectible {
		t.Errorf("reset should restore collectibles, got %v", tile)
	}
}

func TestSessionHazardPolicy(t *testing.T) {
	g := floorGrid(t, 23)
	mustSet(t, g, 3, 22, core.TileActor)
	mustSet(t, g, 4, 22, core.TileEmpty)
	mustSet(t, g, 5, 22, core.TileHazard)

	testCases := []struct {
		policy    core.HazardPolicy
		wantLives int
	}{
		{core.HazardLoseLife, 2},
		{core.HazardIgnore, 3},
	}

	for _, tc := range testCases {
		t.Run(string(tc.policy), func(t *testing.T) {
			rules := core.DefaultRules()
			rules.HazardPolicy = tc.policy

			s := newSession(t, g, rules)
			s.Start()
			s.Move(core.DirRight)
			out := s.Move(core.DirRight)

			if !out.HazardHit {
				t.Fatal("expected hazard contact")
			}
			if got := s.State().Lives; got != tc.wantLives {
				t.Errorf("expected %d lives, got %d", tc.wantLives, got)
			}
			if tc.policy == core.HazardLoseLife && s.Pos() != s.Spawn() {
				t.Errorf("expected respawn, got %v", s.Pos())
			}
		})
	}
}

func TestSessionPause(t *testing.T) {
	s := newSession(t, core.DefaultLevel(), core.DefaultRules())
	s.Start()

	s.TogglePause()
	if !s.Paused() || s.TimerActive() {
		t.Fatal("expected paused session")
	}

	before := s.State()
	s.Tick()
	s.Move(core.DirRight)
	if s.State() != before || s.Pos() != s.Spawn() {
		t.Error("paused session should not change")
	}

	s.TogglePause()
	if s.Paused() || !s.TimerActive() {
		t.Error("expected running session")
	}
}

func TestSessionBonusOutReturnsToSpawn(t *testing.T) {
	g := floorGrid(t, 23)
	mustSet(t, g, 3, 22, core.TileActor)
	mustSet(t, g, 10, 22, core.TileGoal)

	rules := core.Rules{Lives: 2, InitialBonus: 10, BonusStep: 10, HazardPolicy: core.HazardLoseLife}
	s := newSession(t, g, rules)
	s.Start()

	s.Move(core.DirRight)
	if s.Pos() == s.Spawn() {
		t.Fatal("actor should have left the spawn")
	}

	if !s.Tick() {
		t.Fatal("expected life loss when the bonus runs out")
	}
	if s.Pos() != s.Spawn() {
		t.Errorf("actor should be back at %v, got %v", s.Spawn(), s.Pos())
	}
	st := s.State()
	if st.Lives != 1 || st.Bonus != 10 || st.Over {
		t.Errorf("expected 1 life, full bonus and a live run, got %+v", st)
	}
	if !s.TimerActive() {
		t.Error("timer should keep running with lives left")
	}
}

func TestSessionGameOverAndReset(t *testing.T) {
	rules := core.Rules{Lives: 1, InitialBonus: 10, BonusStep: 10, HazardPolicy: core.HazardLoseLife}
	s := newSession(t, core.DefaultLevel(), rules)
	s.Start()

	if !s.Tick() {
		t.Fatal("expected life loss")
	}
	if st := s.State(); !st.Over || st.Running {
		t.Fatalf("expected game over, got %+v", st)
	}

	s.Reset()
	if st := s.State(); st.Lives != 1 || st.Over || !st.Running {
		t.Errorf("reset after game over should refill lives, got %+v", st)
	}
}
