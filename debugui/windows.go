package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/pong"
)

// SchedulerWindow shows per-system timings and a frame time graph.
type SchedulerWindow struct {
	title     string
	scheduler *engine.Scheduler

	history   []float32
	index     int
	lastFrame time.Time
}

func NewSchedulerWindow(title string, scheduler *engine.Scheduler, historyFrames int) *SchedulerWindow {
	return &SchedulerWindow{
		title:     title,
		scheduler: scheduler,
		history:   make([]float32, historyFrames),
	}
}

// Sample records the time since the previous call in the frame history.
func (w *SchedulerWindow) Sample(now time.Time) {
	if !w.lastFrame.IsZero() {
		w.history[w.index] = float32(now.Sub(w.lastFrame).Seconds() * 1000)
		w.index = (w.index + 1) % len(w.history)
	}
	w.lastFrame = now
}

// AverageFrameTime is the mean of the recorded frame times in milliseconds.
func (w *SchedulerWindow) AverageFrameTime() float32 {
	var sum float32
	for _, ft := range w.history {
		sum += ft
	}
	return sum / float32(len(w.history))
}

func (w *SchedulerWindow) Render() {
	w.Sample(time.Now())

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 260), imgui.CondOnce)

	if !imgui.BeginV(w.title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := w.scheduler.GetStats()
	avg := w.AverageFrameTime()
	fps := float32(0)
	if avg > 0 {
		fps = 1000 / avg
	}

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))
	imgui.Text(fmt.Sprintf("Pending Tasks: %d", stats.PendingTasks))
	imgui.PlotLinesFloatPtr("##frametime", &w.history[0], int32(len(w.history)))

	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStats", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, row := range StatsRows(stats) {
			imgui.TableNextRow()
			for _, cell := range row {
				imgui.TableNextColumn()
				imgui.Text(cell)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}

// StatsRows formats scheduler stats as table rows:
// name, executions, last, average and max duration.
func StatsRows(stats *engine.SchedulerStats) [][]string {
	rows := make([][]string, 0, len(stats.Systems))
	for _, s := range stats.Systems {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%d", s.ExecutionCount),
			formatDuration(s.LastDuration),
			formatDuration(s.AvgDuration),
			formatDuration(s.MaxDuration),
		})
	}
	return rows
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1f us", float64(d)/float64(time.Microsecond))
}

// MatchWindow shows the live match state and exposes a few tuning knobs.
type MatchWindow struct {
	resources *engine.Resources
	onRestart func()
}

func NewMatchWindow(resources *engine.Resources, onRestart func()) *MatchWindow {
	return &MatchWindow{resources: resources, onRestart: onRestart}
}

func (w *MatchWindow) Render() {
	state := engine.Get[pong.State](w.resources)
	tuning := engine.Get[pong.Tuning](w.resources)
	if state == nil || tuning == nil {
		return
	}

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 260), imgui.CondOnce)

	if !imgui.BeginV("Match", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, line := range MatchLines(state) {
		imgui.Text(line)
	}

	imgui.Separator()

	aiSpeed := float32(tuning.AISpeed)
	if imgui.InputFloat("AI speed", &aiSpeed) {
		tuning.AISpeed = float64(aiSpeed)
	}
	deadZone := float32(tuning.AIDeadZone)
	if imgui.InputFloat("AI dead zone", &deadZone) {
		tuning.AIDeadZone = float64(deadZone)
	}

	if w.onRestart != nil && imgui.Button("Restart") {
		w.onRestart()
	}

	imgui.Separator()
	names := w.resources.Names()
	if imgui.TreeNodeStr(fmt.Sprintf("Resources (%d)", len(names))) {
		for _, name := range names {
			imgui.Text(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// MatchLines formats the match state for display.
func MatchLines(s *pong.State) []string {
	status := "playing"
	if s.Over {
		status = fmt.Sprintf("over, %s won", s.Winner)
	}
	return []string{
		fmt.Sprintf("Match: %s", s.MatchID),
		fmt.Sprintf("Score: %d - %d (to %d)", s.PlayerScore, s.AIScore, s.MaxScore),
		fmt.Sprintf("Status: %s", status),
		fmt.Sprintf("Ball: (%.1f, %.1f) v=(%.2f, %.2f)", s.BallX, s.BallY, s.BallVX, s.BallVY),
		fmt.Sprintf("Paddles: player %.1f, ai %.1f", s.PlayerPaddleY, s.AIPaddleY),
		fmt.Sprintf("Ticks: %d  Hits: %d", s.Ticks, s.Hits),
	}
}
