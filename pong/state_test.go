package pong_test

import (
	"testing"

	"github.com/plus3/pong/pong"
	"github.com/stretchr/testify/assert"
)

func TestNewState(t *testing.T) {
	geo := pong.DefaultGeometry()
	tun := pong.DefaultTuning()

	t.Run("centered paddles and ball", func(t *testing.T) {
		s := pong.NewState(geo, tun, 3, &seqRandom{values: []float64{0.2, 0.9}})

		assert.Equal(t, 205.0, s.PlayerPaddleY)
		assert.Equal(t, 205.0, s.AIPaddleY)
		assert.Equal(t, 400.0, s.BallX)
		assert.Equal(t, 250.0, s.BallY)
		assert.Equal(t, 3, s.MaxScore)
		assert.NotEmpty(t, s.MatchID)
		assert.False(t, s.Over)
	})

	t.Run("serve direction follows the random draw", func(t *testing.T) {
		right := pong.NewState(geo, tun, 5, &seqRandom{values: []float64{0.2, 0.9}})
		assert.Equal(t, tun.Speed, right.BallVX)
		assert.InDelta(t, tun.Speed*0.4, right.BallVY, 1e-9)

		left := pong.NewState(geo, tun, 5, &seqRandom{values: []float64{0.7, 0.1}})
		assert.Equal(t, -tun.Speed, left.BallVX)
		assert.InDelta(t, -tun.Speed*0.4, left.BallVY, 1e-9)
	})

	t.Run("non-positive max score defaults", func(t *testing.T) {
		assert.Equal(t, pong.DefaultMaxScore, pong.NewState(geo, tun, 0, &seqRandom{}).MaxScore)
		assert.Equal(t, pong.DefaultMaxScore, pong.NewState(geo, tun, -4, &seqRandom{}).MaxScore)
	})

	t.Run("match ids differ", func(t *testing.T) {
		a := pong.NewState(geo, tun, 5, &seqRandom{})
		b := pong.NewState(geo, tun, 5, &seqRandom{})
		assert.NotEqual(t, a.MatchID, b.MatchID)
	})
}

func TestCheckGameOver(t *testing.T) {
	tests := []struct {
		name   string
		player int
		ai     int
		winner pong.Side
		over   bool
	}{
		{"in progress", 4, 4, pong.SideNone, false},
		{"player reaches max", 5, 2, pong.SidePlayer, true},
		{"ai reaches max", 1, 5, pong.SideAI, true},
		{"both at max favors player", 5, 5, pong.SidePlayer, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pong.State{PlayerScore: tt.player, AIScore: tt.ai, MaxScore: 5}
			winner, over := s.CheckGameOver()
			assert.Equal(t, tt.winner, winner)
			assert.Equal(t, tt.over, over)
		})
	}
}

func TestMovePlayer(t *testing.T) {
	geo := pong.DefaultGeometry()
	s := pong.State{}

	s.MovePlayer(geo, 0)
	assert.Equal(t, 0.0, s.PlayerPaddleY)

	s.MovePlayer(geo, 250)
	assert.Equal(t, 205.0, s.PlayerPaddleY)

	s.MovePlayer(geo, geo.Height)
	assert.Equal(t, geo.MaxPaddleY(), s.PlayerPaddleY)
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "Player", pong.SidePlayer.String())
	assert.Equal(t, "AI", pong.SideAI.String())
	assert.Equal(t, "None", pong.SideNone.String())
	assert.Equal(t, "Side(9)", pong.Side(9).String())
}
