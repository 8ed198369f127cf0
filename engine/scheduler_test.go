package engine_test

import (
	"testing"
	"time"

	"github.com/plus3/pong/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type IncrementSystem struct {
	Counter      engine.Singleton[Counter]
	ExecuteCount int
}

func (s *IncrementSystem) Execute(frame *engine.UpdateFrame) {
	s.ExecuteCount++
	s.Counter.Get().Value++
}

type RecordSystem struct {
	Counter engine.Singleton[Counter]
	Seen    []int
}

func (s *RecordSystem) Execute(frame *engine.UpdateFrame) {
	s.Seen = append(s.Seen, s.Counter.Get().Value)
}

type DeferSystem struct {
	Label engine.Singleton[Label]
	Text  string
}

func (s *DeferSystem) Execute(frame *engine.UpdateFrame) {
	label := s.Label.Get()
	frame.Commands.Defer(func() {
		label.Text = s.Text
	})
}

type DelaySystem struct {
	Counter engine.Singleton[Counter]
	Delay   time.Duration
	once    bool
}

func (s *DelaySystem) Execute(frame *engine.UpdateFrame) {
	if s.once {
		return
	}
	s.once = true
	counter := s.Counter.Get()
	frame.Commands.DeferAfter(s.Delay, func() {
		counter.Value += 100
	})
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order and singleton binding", func(t *testing.T) {
		resources := engine.NewResources()
		engine.Insert(resources, Counter{})
		scheduler := engine.NewScheduler(resources)

		increment := &IncrementSystem{}
		record := &RecordSystem{}
		scheduler.Register(increment)
		scheduler.Register(record)

		scheduler.Once(1.0 / 60.0)
		scheduler.Once(1.0 / 60.0)

		assert.Equal(t, 2, increment.ExecuteCount)
		assert.Equal(t, []int{1, 2}, record.Seen)
		assert.Same(t, resources, scheduler.Resources())
	})

	t.Run("deferred commands run after all systems", func(t *testing.T) {
		resources := engine.NewResources()
		engine.Insert(resources, Label{Text: "before"})
		scheduler := engine.NewScheduler(resources)

		scheduler.Register(&DeferSystem{Text: "after"})
		observed := &labelObserver{}
		scheduler.Register(observed)

		scheduler.Once(0)

		assert.Equal(t, "before", observed.text)
		assert.Equal(t, "after", engine.Get[Label](resources).Text)
	})

	t.Run("delayed task fires once after its delay", func(t *testing.T) {
		resources := engine.NewResources()
		engine.Insert(resources, Counter{})
		scheduler := engine.NewScheduler(resources)
		scheduler.Register(&DelaySystem{Delay: 100 * time.Millisecond})

		scheduler.Once(0.05)
		assert.Equal(t, 1, scheduler.Pending())
		assert.Equal(t, 0, engine.Get[Counter](resources).Value)

		scheduler.Once(0.05)
		assert.Equal(t, 0, engine.Get[Counter](resources).Value)

		scheduler.Once(0.05)
		assert.Equal(t, 100, engine.Get[Counter](resources).Value)
		assert.Equal(t, 0, scheduler.Pending())

		for i := 0; i < 10; i++ {
			scheduler.Once(0.05)
		}
		assert.Equal(t, 100, engine.Get[Counter](resources).Value)
	})

	t.Run("zero delay fires on the next frame", func(t *testing.T) {
		resources := engine.NewResources()
		engine.Insert(resources, Counter{})
		scheduler := engine.NewScheduler(resources)
		scheduler.Register(&DelaySystem{})

		scheduler.Once(0)
		assert.Equal(t, 0, engine.Get[Counter](resources).Value)

		scheduler.Once(0)
		assert.Equal(t, 100, engine.Get[Counter](resources).Value)
	})

	t.Run("stats", func(t *testing.T) {
		resources := engine.NewResources()
		engine.Insert(resources, Counter{})
		scheduler := engine.NewScheduler(resources)
		scheduler.Register(&IncrementSystem{})
		scheduler.Register(&RecordSystem{})

		for i := 0; i < 3; i++ {
			scheduler.Once(1.0 / 60.0)
		}

		stats := scheduler.GetStats()
		require.Len(t, stats.Systems, 2)
		assert.Equal(t, 2, stats.SystemCount)
		assert.Equal(t, int64(6), stats.TotalExecutions)
		assert.Equal(t, int64(3), stats.Frames)
		assert.Equal(t, "IncrementSystem", stats.Systems[0].Name)
		assert.Equal(t, "RecordSystem", stats.Systems[1].Name)
		assert.Equal(t, int64(3), stats.Systems[0].ExecutionCount)
		assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)
	})
}

type labelObserver struct {
	Label engine.Singleton[Label]
	text  string
}

func (s *labelObserver) Execute(frame *engine.UpdateFrame) {
	s.text = s.Label.Get().Text
}
