package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/logger"
	"github.com/plus3/pong/pong"
)

const (
	tickRate = 1.0 / 60.0

	// maxTicksPerMatch bounds a match that never ends.
	maxTicksPerMatch = 1_000_000
)

type SoakOptions struct {
	Matches  int
	MaxScore int
	Seed     uint64
	Miss     float64
	Logger   logger.Logger
}

// trackingPointer plays the human side by aiming near the ball.
type trackingPointer struct {
	state *pong.State
	rng   *rand.Rand
	miss  float64
}

func (p *trackingPointer) PointerY() (float64, bool) {
	if p.state == nil {
		return 0, false
	}
	return p.state.BallY + (p.rng.Float64()-0.5)*2*p.miss, true
}

// Soak plays matches back to back, headless, and checks the state
// invariants after every tick.
func Soak(ctx context.Context, opts SoakOptions) *Report {
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}

	report := &Report{
		Matches:  opts.Matches,
		MaxScore: opts.MaxScore,
		Seed:     opts.Seed,
	}

	notified := 0
	pointer := &trackingPointer{
		rng:  rand.New(rand.NewPCG(opts.Seed, opts.Seed+1)),
		miss: opts.Miss,
	}

	resources := engine.NewResources()
	geo := pong.DefaultGeometry()
	world := pong.NewWorld(pong.Options{
		Geometry:  geo,
		Tuning:    pong.DefaultTuning(),
		MaxScore:  opts.MaxScore,
		Resources: resources,
		Env: pong.Env{
			Random:   rand.New(rand.NewPCG(opts.Seed, opts.Seed)),
			Pointer:  pointer,
			Notifier: pong.NotifierFunc(func(string) { notified++ }),
			Logger:   opts.Logger,
		},
	})
	state := engine.Get[pong.State](resources)
	pointer.state = state

	start := time.Now()

Loop:
	for match := 0; match < opts.Matches; match++ {
		if match > 0 {
			pong.Restart(resources)
		}
		before := notified

		ticks := 0
		for ; ticks < maxTicksPerMatch; ticks++ {
			select {
			case <-ctx.Done():
				report.TimedOut = true
				break Loop
			default:
			}

			updateStart := time.Now()
			world.Once(tickRate)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalTicks++

			report.Violations += checkInvariants(state, geo)

			if state.Over && notified > before {
				break
			}
		}

		if ticks == maxTicksPerMatch {
			report.Stalled++
			continue
		}
		if notified-before != 1 {
			report.Violations++
		}

		report.Completed++
		report.Hits += int64(state.Hits)
		switch state.Winner {
		case pong.SidePlayer:
			report.PlayerWins++
		case pong.SideAI:
			report.AIWins++
		}
	}

	// Let a late duplicate show up if there is one.
	extra := notified
	for i := 0; i < 30; i++ {
		world.Once(tickRate)
	}
	if notified != extra {
		report.Violations += notified - extra
	}

	report.Notifications = notified
	report.TotalTime = time.Since(start)
	report.UpdateTime.Finalize()
	return report
}

func checkInvariants(s *pong.State, geo pong.Geometry) int {
	violations := 0
	for _, y := range []float64{s.PlayerPaddleY, s.AIPaddleY} {
		if y < 0 || y > geo.MaxPaddleY() {
			violations++
		}
	}
	if s.BallY < geo.BallRadius || s.BallY > geo.Height-geo.BallRadius {
		violations++
	}
	if s.PlayerScore > s.MaxScore || s.AIScore > s.MaxScore {
		violations++
	}
	return violations
}
