package pong

import (
	"fmt"

	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/logger"
)

// InputSystem moves the player paddle to the latest pointer position.
// A pointer that has not moved since the last tick is not a move.
type InputSystem struct {
	State    engine.Singleton[State]
	Geometry engine.Singleton[Geometry]
	Env      engine.Singleton[Env]

	lastY float64
	moved bool
}

func (s *InputSystem) Execute(frame *engine.UpdateFrame) {
	pointer := s.Env.Get().Pointer
	if pointer == nil {
		return
	}

	y, ok := pointer.PointerY()
	if !ok || (s.moved && y == s.lastY) {
		return
	}
	s.lastY = y
	s.moved = true

	s.State.Get().MovePlayer(*s.Geometry.Get(), y)
}

// BallSystem integrates the ball position by one tick.
type BallSystem struct {
	State engine.Singleton[State]
}

func (s *BallSystem) Execute(frame *engine.UpdateFrame) {
	state := s.State.Get()
	if state.Over {
		return
	}

	state.Ticks++
	state.BallX += state.BallVX
	state.BallY += state.BallVY
}

// WallSystem reflects the ball off the top and bottom edges.
type WallSystem struct {
	State    engine.Singleton[State]
	Geometry engine.Singleton[Geometry]
}

func (s *WallSystem) Execute(frame *engine.UpdateFrame) {
	state := s.State.Get()
	if state.Over {
		return
	}
	geo := s.Geometry.Get()
	r := geo.BallRadius

	if state.BallY-r < 0 {
		state.BallY = r
		state.BallVY = -state.BallVY
	}
	if state.BallY+r > geo.Height {
		state.BallY = geo.Height - r
		state.BallVY = -state.BallVY
	}
}

// PaddleSystem bounces the ball off either paddle, speeding it up and
// adding spin from where it struck the paddle.
type PaddleSystem struct {
	State    engine.Singleton[State]
	Geometry engine.Singleton[Geometry]
	Tuning   engine.Singleton[Tuning]
}

func (s *PaddleSystem) Execute(frame *engine.UpdateFrame) {
	state := s.State.Get()
	if state.Over {
		return
	}
	geo := s.Geometry.Get()
	tun := s.Tuning.Get()

	if Overlaps(state.BallX, state.BallY, *geo, geo.LeftPaddleX(), state.PlayerPaddleY) {
		state.BallX = geo.LeftPaddleX() + geo.PaddleWidth + geo.BallRadius
		s.rebound(state, *geo, *tun, state.PlayerPaddleY)
	}

	if Overlaps(state.BallX, state.BallY, *geo, geo.RightPaddleX(), state.AIPaddleY) {
		state.BallX = geo.RightPaddleX() - geo.BallRadius
		s.rebound(state, *geo, *tun, state.AIPaddleY)
	}
}

func (s *PaddleSystem) rebound(state *State, geo Geometry, tun Tuning, paddleY float64) {
	state.BallVX = -state.BallVX * tun.RallyAccel
	state.BallVY = tun.Speed*HitOffset(state.BallY, geo, paddleY)*tun.Spin + state.BallVY*tun.SpinCarry
	state.Hits++
}

// Overlaps tests the ball's bounding square against a paddle rectangle.
func Overlaps(ballX, ballY float64, geo Geometry, paddleX, paddleY float64) bool {
	r := geo.BallRadius
	return ballX-r < paddleX+geo.PaddleWidth &&
		ballX+r > paddleX &&
		ballY+r > paddleY &&
		ballY-r < paddleY+geo.PaddleHeight
}

// HitOffset is the signed distance of ballY from the paddle center,
// normalized by half the paddle height.
func HitOffset(ballY float64, geo Geometry, paddleY float64) float64 {
	half := geo.PaddleHeight / 2
	return (ballY - (paddleY + half)) / half
}

// CheckBoundary reports a score when the ball's edge has passed the left or
// right boundary. The left boundary is checked first.
func CheckBoundary(state *State, geo Geometry) (ScoreEvent, bool) {
	if state.BallX-geo.BallRadius < 0 {
		return ScoreEvent{Scorer: SideAI}, true
	}
	if state.BallX+geo.BallRadius > geo.Width {
		return ScoreEvent{Scorer: SidePlayer}, true
	}
	return ScoreEvent{}, false
}

// ScoringSystem turns boundary crossings into points, ends the match once a
// side reaches the max score and schedules the end-of-game notification.
type ScoringSystem struct {
	State    engine.Singleton[State]
	Geometry engine.Singleton[Geometry]
	Tuning   engine.Singleton[Tuning]
	Env      engine.Singleton[Env]
}

func (s *ScoringSystem) Execute(frame *engine.UpdateFrame) {
	state := s.State.Get()
	if state.Over {
		return
	}

	if event, ok := CheckBoundary(state, *s.Geometry.Get()); ok {
		s.handle(frame, state, event)
	}
}

func (s *ScoringSystem) handle(frame *engine.UpdateFrame, state *State, event ScoreEvent) {
	env := s.Env.Get()
	log := env.Logger.With(logger.F("match_id", state.MatchID))

	switch event.Scorer {
	case SidePlayer:
		state.PlayerScore++
	case SideAI:
		state.AIScore++
	}
	publishScores(*env, state)
	log.Debug("point scored",
		logger.Stringer("side", event.Scorer),
		logger.F("score", state.Tally()),
	)

	if winner, over := state.CheckGameOver(); over {
		state.Over = true
		state.Winner = winner
		log.Info("match over",
			logger.Stringer("winner", winner),
			logger.F("score", state.Tally()),
			logger.F("ticks", state.Ticks),
			logger.F("hits", state.Hits),
		)
		s.scheduleNotification(frame, state, log)
	}

	state.ResetBall(*s.Geometry.Get(), *s.Tuning.Get(), env.Random)
}

func (s *ScoringSystem) scheduleNotification(frame *engine.UpdateFrame, state *State, log logger.Logger) {
	if state.Notified {
		return
	}
	state.Notified = true

	matchID := state.MatchID
	text := fmt.Sprintf("%s wins! Final Score: %d - %d", state.Winner, state.PlayerScore, state.AIScore)
	notifier := s.Env.Get().Notifier

	frame.Commands.DeferAfter(s.Tuning.Get().NotifyDelay, func() {
		if state.MatchID != matchID {
			return
		}
		log.Info("notifying", logger.F("text", text))
		notifier.Notify(text)
	})
}

// OpponentSystem steers the opponent paddle toward a jittered copy of the
// ball's height, holding still inside the dead zone.
type OpponentSystem struct {
	State    engine.Singleton[State]
	Geometry engine.Singleton[Geometry]
	Tuning   engine.Singleton[Tuning]
	Env      engine.Singleton[Env]
}

func (s *OpponentSystem) Execute(frame *engine.UpdateFrame) {
	state := s.State.Get()
	if state.Over {
		return
	}

	geo := s.Geometry.Get()
	tun := s.Tuning.Get()

	center := state.AIPaddleY + geo.PaddleHeight/2
	target := state.BallY + (s.Env.Get().Random.Float64()-0.5)*tun.AIJitter

	if center < target-tun.AIDeadZone {
		state.AIPaddleY += tun.AISpeed
	} else if center > target+tun.AIDeadZone {
		state.AIPaddleY -= tun.AISpeed
	}
	state.AIPaddleY = geo.ClampPaddle(state.AIPaddleY)
}
