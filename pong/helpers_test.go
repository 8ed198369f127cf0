package pong_test

import (
	"testing"

	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/logger"
	"github.com/plus3/pong/pong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const tick = 1.0 / 60.0

// seqRandom replays values in a loop; with no values it always returns 0.5,
// which serves toward the player with no vertical speed and gives the
// opponent zero jitter.
type seqRandom struct {
	values []float64
	i      int
}

func (r *seqRandom) Float64() float64 {
	if len(r.values) == 0 {
		return 0.5
	}
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

type textRecorder struct {
	texts []string
}

func (r *textRecorder) SetText(text string) {
	r.texts = append(r.texts, text)
}

func (r *textRecorder) last() string {
	if len(r.texts) == 0 {
		return ""
	}
	return r.texts[len(r.texts)-1]
}

type notifyRecorder struct {
	messages []string
}

func (r *notifyRecorder) Notify(text string) {
	r.messages = append(r.messages, text)
}

type fakePointer struct {
	y  float64
	ok bool
}

func (p *fakePointer) PointerY() (float64, bool) {
	return p.y, p.ok
}

type harness struct {
	scheduler *engine.Scheduler
	state     *pong.State
	geo       pong.Geometry
	tun       pong.Tuning
	player    *textRecorder
	ai        *textRecorder
	notes     *notifyRecorder
	pointer   *fakePointer
	logs      *observer.ObservedLogs
}

func newHarness(t *testing.T, maxScore int) *harness {
	t.Helper()

	h := &harness{
		geo:     pong.DefaultGeometry(),
		tun:     pong.DefaultTuning(),
		player:  &textRecorder{},
		ai:      &textRecorder{},
		notes:   &notifyRecorder{},
		pointer: &fakePointer{},
	}
	core, logs := observer.New(zapcore.DebugLevel)
	h.logs = logs
	h.scheduler = pong.NewWorld(pong.Options{
		Geometry: h.geo,
		Tuning:   h.tun,
		MaxScore: maxScore,
		Env: pong.Env{
			Random:      &seqRandom{},
			Pointer:     h.pointer,
			PlayerScore: h.player,
			AIScore:     h.ai,
			Notifier:    h.notes,
			Logger:      logger.NewFromZap(zap.New(core)),
		},
	})
	h.state = engine.Get[pong.State](h.scheduler.Resources())
	return h
}

func (h *harness) step(n int) {
	for i := 0; i < n; i++ {
		h.scheduler.Once(tick)
	}
}

// placeBall parks the ball so that after one tick of integration it sits
// at (x, y) and keeps the paddles out of its way unless told otherwise.
func (h *harness) placeBall(x, y, vx, vy float64) {
	h.state.BallX = x - vx
	h.state.BallY = y - vy
	h.state.BallVX = vx
	h.state.BallVY = vy
}

// concedeLeft arranges a ball that leaves through the left edge next tick.
func (h *harness) concedeLeft() {
	h.state.PlayerPaddleY = h.geo.MaxPaddleY()
	h.placeBall(5, 40, -7, 0)
}

// concedeRight arranges a ball that leaves through the right edge next tick.
func (h *harness) concedeRight() {
	h.state.AIPaddleY = h.geo.MaxPaddleY()
	h.placeBall(h.geo.Width-5, 40, 7, 0)
}
