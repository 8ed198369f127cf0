package engine_test

import (
	"fmt"
	"time"

	"github.com/plus3/pong/engine"
)

type Score struct {
	Points int
}

type ScoreSystem struct {
	Score engine.Singleton[Score]
}

func (s *ScoreSystem) Execute(frame *engine.UpdateFrame) {
	score := s.Score.Get()
	score.Points++
	if score.Points == 2 {
		frame.Commands.DeferAfter(50*time.Millisecond, func() {
			fmt.Printf("announced at %d points\n", score.Points)
		})
	}
}

// ExampleScheduler builds a loop with one system that announces a milestone
// after a short delay measured in frame time.
func ExampleScheduler() {
	resources := engine.NewResources()
	engine.NewSingleton(resources, Score{})

	scheduler := engine.NewScheduler(resources)
	scheduler.Register(&ScoreSystem{})

	for i := 0; i < 5; i++ {
		scheduler.Once(0.025)
	}

	fmt.Printf("final score %d\n", engine.Get[Score](resources).Points)

	// Output:
	// announced at 3 points
	// final score 5
}
