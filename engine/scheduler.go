package engine

import (
	"reflect"
	"sort"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	PendingTasks    int
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type pendingTask struct {
	due time.Duration
	seq uint64
	fn  func()
}

// binder is implemented by system fields the scheduler binds on Register.
type binder interface {
	Init(resources *Resources)
}

// Scheduler manages and executes systems in order.
type Scheduler struct {
	resources   *Resources
	systems     []System
	systemStats []*systemStatsInternal

	clock   time.Duration
	frames  int64
	seq     uint64
	pending []pendingTask
}

// NewScheduler creates a new scheduler for the given resources.
func NewScheduler(resources *Resources) *Scheduler {
	return &Scheduler{
		resources: resources,
		systems:   make([]System, 0),
	}
}

// Resources returns the resource store the scheduler's systems run against.
func (s *Scheduler) Resources() *Resources {
	return s.resources
}

// Register adds a system to the scheduler and binds its Singleton fields.
func (s *Scheduler) Register(system System) {
	s.bindFields(system)
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

func (s *Scheduler) bindFields(system System) {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		if b, ok := field.Addr().Interface().(binder); ok {
			b.Init(s.resources)
		}
	}
}

// Once advances the frame clock by dt, fires delayed tasks that have come
// due, then executes all registered systems once.
func (s *Scheduler) Once(dt float64) {
	s.clock += time.Duration(dt * float64(time.Second))
	s.frames++
	s.fireDue()

	frame := newUpdateFrame(dt, s.resources)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	for _, cmd := range frame.Commands.flush() {
		s.seq++
		s.pending = append(s.pending, pendingTask{
			due: s.clock + cmd.delay,
			seq: s.seq,
			fn:  cmd.fn,
		})
	}
}

func (s *Scheduler) fireDue() {
	if len(s.pending) == 0 {
		return
	}

	sort.Slice(s.pending, func(i, j int) bool {
		if s.pending[i].due == s.pending[j].due {
			return s.pending[i].seq < s.pending[j].seq
		}
		return s.pending[i].due < s.pending[j].due
	})

	fired := 0
	for _, task := range s.pending {
		if task.due > s.clock {
			break
		}
		task.fn()
		fired++
	}
	s.pending = append(s.pending[:0], s.pending[fired:]...)
}

// Pending returns the number of delayed tasks that have not fired yet.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:  len(s.systems),
		Frames:       s.frames,
		PendingTasks: len(s.pending),
		Systems:      make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
