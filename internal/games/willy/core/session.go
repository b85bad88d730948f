package core

// Session owns everything one play-through mutates: the live grid, the
// actor position and the run state. All mutation goes through its methods,
// so the caller only has to guarantee that calls are not concurrent.
type Session struct {
	rules Rules
	level Level // Pristine copy, used on reset
	grid  *Grid
	pos   Pos
	state RunState
}

// NewSession prepares a session for level. It does not start the run.
// A level without a marker starts at DefaultSpawn.
func NewSession(level Level, rules Rules) *Session {
	s := &Session{
		rules: rules,
		level: level.Clone(),
	}
	s.restoreLevel()
	s.state = RunState{Bonus: rules.InitialBonus, Lives: rules.Lives}
	return s
}

// restoreLevel copies the pristine grid back and respawns the actor.
func (s *Session) restoreLevel() {
	s.grid = s.level.Grid.Clone()
	s.pos = s.level.Spawn
}

// Start begins a new run: score 0, full bonus and lives.
func (s *Session) Start() {
	s.restoreLevel()
	s.state = NewRunState(s.rules)
}

// Reset replays the level after a game over or completion, keeping score
// and lives. A run that ended with no lives left gets a fresh set.
func (s *Session) Reset() {
	s.restoreLevel()
	lives := s.state.Lives
	if lives <= 0 {
		lives = s.rules.Lives
	}
	s.state = RunState{
		Score:   s.state.Score,
		Bonus:   s.rules.InitialBonus,
		Lives:   lives,
		Running: true,
	}
}

// Move resolves one input. Inputs are ignored unless the run is active.
func (s *Session) Move(dir Direction) Outcome {
	if !s.state.TimerActive() {
		return Outcome{Pos: s.pos}
	}

	out := Step(s.grid, s.pos, dir)
	s.pos = out.Pos
	s.state.Score += out.ScoreDelta

	if out.Completed {
		s.state = Complete(s.state)
		return out
	}

	if out.HazardHit && s.rules.HazardPolicy == HazardLoseLife {
		s.state = loseLife(s.state, s.rules)
		s.pos = s.level.Spawn
		out.Pos = s.pos
	}
	return out
}

// Tick applies one bonus timer period. Returns true if a life was lost.
func (s *Session) Tick() bool {
	next, lost := Decay(s.state, s.rules)
	s.state = next
	if lost && !next.Over {
		s.pos = s.level.Spawn
	}
	return lost
}

// Pause stops the run without ending it.
func (s *Session) Pause() {
	if !s.state.Terminal() {
		s.state.Running = false
	}
}

// Resume continues a paused run.
func (s *Session) Resume() {
	if !s.state.Terminal() {
		s.state.Running = true
	}
}

// TogglePause flips between paused and running.
func (s *Session) TogglePause() {
	if s.state.Running {
		s.Pause()
	} else {
		s.Resume()
	}
}

// Paused reports a run that is stopped but not over.
func (s *Session) Paused() bool {
	return !s.state.Running && !s.state.Terminal()
}

// State returns a copy of the run state.
func (s *Session) State() RunState {
	return s.state
}

// Pos returns the actor position.
func (s *Session) Pos() Pos {
	return s.pos
}

// Spawn returns where the actor starts.
func (s *Session) Spawn() Pos {
	return s.level.Spawn
}

// Grid returns the live grid. Callers must treat it as read-only.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Rules returns the rules the session was created with.
func (s *Session) Rules() Rules {
	return s.rules
}

// TimerActive reports whether the bonus timer should be running.
func (s *Session) TimerActive() bool {
	return s.state.TimerActive()
}
