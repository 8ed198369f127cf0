package pong

import (
	"strconv"

	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/logger"
)

// Options configure a new match.
type Options struct {
	Geometry Geometry
	Tuning   Tuning
	MaxScore int
	Env      Env

	// Resources to store the match in. A fresh store is used when nil, so
	// pass one only when other schedulers share it.
	Resources *engine.Resources
}

// NewWorld stores the match resources and returns a scheduler that runs the
// update systems in tick order. Call Once on it for every display refresh.
func NewWorld(opts Options) *engine.Scheduler {
	resources := opts.Resources
	if resources == nil {
		resources = engine.NewResources()
	}
	env := opts.Env.withDefaults()

	engine.Insert(resources, opts.Geometry)
	engine.Insert(resources, opts.Tuning)
	engine.Insert(resources, env)
	state := engine.Insert(resources, NewState(opts.Geometry, opts.Tuning, opts.MaxScore, env.Random))

	publishScores(env, state)
	env.Logger.Info("match started",
		logger.F("match_id", state.MatchID),
		logger.F("max_score", state.MaxScore),
	)

	scheduler := engine.NewScheduler(resources)
	RegisterSystems(scheduler)
	return scheduler
}

// RegisterSystems registers the update systems in tick order.
func RegisterSystems(scheduler *engine.Scheduler) {
	scheduler.Register(&InputSystem{})
	scheduler.Register(&BallSystem{})
	scheduler.Register(&WallSystem{})
	scheduler.Register(&PaddleSystem{})
	scheduler.Register(&ScoringSystem{})
	scheduler.Register(&OpponentSystem{})
}

// Restart begins a new match with the same max score. A notification still
// pending from the previous match is dropped when it fires.
func Restart(resources *engine.Resources) {
	geo := *engine.Get[Geometry](resources)
	tun := *engine.Get[Tuning](resources)
	env := engine.Get[Env](resources)
	state := engine.Get[State](resources)

	*state = NewState(geo, tun, state.MaxScore, env.Random)
	publishScores(*env, state)
	env.Logger.Info("match restarted",
		logger.F("match_id", state.MatchID),
		logger.F("max_score", state.MaxScore),
	)
}

func publishScores(env Env, state *State) {
	env.PlayerScore.SetText(strconv.Itoa(state.PlayerScore))
	env.AIScore.SetText(strconv.Itoa(state.AIScore))
}
