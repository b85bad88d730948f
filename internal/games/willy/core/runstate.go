package core

// HazardPolicy decides what touching a hazard costs.
type HazardPolicy string

const (
	HazardLoseLife HazardPolicy = "lose_life" // Lose a life and respawn
	HazardIgnore   HazardPolicy = "ignore"    // Report only
)

// Rules are the tunable numbers of a run.
type Rules struct {
	Lives        int
	InitialBonus int
	BonusStep    int
	HazardPolicy HazardPolicy
}

// DefaultRules returns the classic arcade values.
func DefaultRules() Rules {
	return Rules{
		Lives:        3,
		InitialBonus: 1000,
		BonusStep:    10,
		HazardPolicy: HazardLoseLife,
	}
}

// RunState is the score/bonus/lives bookkeeping of one play session.
// Over and LevelComplete are terminal until the next reset.
type RunState struct {
	Score         int
	Bonus         int
	Lives         int
	Running       bool
	Over          bool
	LevelComplete bool
}

// NewRunState returns a fresh, running state.
func NewRunState(r Rules) RunState {
	return RunState{
		Score:   0,
		Bonus:   r.InitialBonus,
		Lives:   r.Lives,
		Running: true,
	}
}

// Terminal reports whether the run has ended.
func (s RunState) Terminal() bool {
	return s.Over || s.LevelComplete
}

// TimerActive reports whether the bonus timer should be ticking.
func (s RunState) TimerActive() bool {
	return s.Running && !s.Terminal()
}

// Decay applies one bonus timer tick. The bonus drops by BonusStep,
// floored at zero. Hitting zero costs a life and refills the bonus;
// losing the last life ends the run. lifeLost reports the second case.
func Decay(s RunState, r Rules) (next RunState, lifeLost bool) {
	if !s.TimerActive() {
		return s, false
	}

	s.Bonus = max(0, s.Bonus-r.BonusStep)
	if s.Bonus > 0 {
		return s, false
	}

	return loseLife(s, r), true
}

// loseLife takes one life away, ending the run on the last one.
func loseLife(s RunState, r Rules) RunState {
	s.Lives = max(0, s.Lives-1)
	if s.Lives == 0 {
		s.Over = true
		s.Running = false
		return s
	}
	s.Bonus = r.InitialBonus
	return s
}

// Complete credits the remaining bonus and marks the level done.
func Complete(s RunState) RunState {
	s.Score += s.Bonus
	s.LevelComplete = true
	s.Running = false
	return s
}
