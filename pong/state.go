package pong

import (
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"
)

// Random is the source of randomness for serves and opponent jitter.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	Float64() float64
}

// State is the mutable record of one match. It is owned by the loop and
// only touched from the goroutine that runs the scheduler.
type State struct {
	MatchID string

	PlayerPaddleY float64
	AIPaddleY     float64

	BallX  float64
	BallY  float64
	BallVX float64
	BallVY float64

	PlayerScore int
	AIScore     int
	MaxScore    int

	Over     bool
	Notified bool
	Winner   Side

	Ticks int64
	Hits  int
}

// NewState returns a fresh match: paddles and ball centered, a random serve.
func NewState(geo Geometry, tun Tuning, maxScore int, rng Random) State {
	if maxScore < 1 {
		maxScore = DefaultMaxScore
	}

	s := State{
		MatchID:       uuid.NewString(),
		PlayerPaddleY: geo.CenteredPaddle(),
		AIPaddleY:     geo.CenteredPaddle(),
		MaxScore:      maxScore,
	}
	s.ResetBall(geo, tun, rng)
	return s
}

// ResetBall puts the ball back in the center and serves it in a random
// horizontal direction with a small random vertical component.
func (s *State) ResetBall(geo Geometry, tun Tuning, rng Random) {
	s.BallX = geo.Width / 2
	s.BallY = geo.Height / 2

	if rng.Float64() < 0.5 {
		s.BallVX = tun.Speed
	} else {
		s.BallVX = -tun.Speed
	}
	s.BallVY = tun.Speed * (rng.Float64() - 0.5)
}

// MovePlayer centers the player paddle on pointerY, clamped to the surface.
func (s *State) MovePlayer(geo Geometry, pointerY float64) {
	s.PlayerPaddleY = geo.ClampPaddle(pointerY - geo.PaddleHeight/2)
}

// CheckGameOver reports the winner once either score has reached MaxScore.
// The player is checked first.
func (s *State) CheckGameOver() (Side, bool) {
	if s.PlayerScore >= s.MaxScore {
		return SidePlayer, true
	}
	if s.AIScore >= s.MaxScore {
		return SideAI, true
	}
	return SideNone, false
}

// Tally is a score line. It logs as {"player": n, "ai": m}.
type Tally struct {
	Player int
	AI     int
}

func (t Tally) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("player", t.Player)
	enc.AddInt("ai", t.AI)
	return nil
}

// Tally returns the current score line.
func (s *State) Tally() Tally {
	return Tally{Player: s.PlayerScore, AI: s.AIScore}
}
