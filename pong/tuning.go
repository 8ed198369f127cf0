package pong

import "time"

// Geometry describes the drawing surface and the size of everything on it,
// in surface pixels.
type Geometry struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	PaddleWidth  float64 `yaml:"paddle_width"`
	PaddleHeight float64 `yaml:"paddle_height"`
	PaddleMargin float64 `yaml:"paddle_margin"`
	BallRadius   float64 `yaml:"ball_radius"`
}

// Tuning holds the per-tick gameplay constants. Speeds are pixels per tick.
type Tuning struct {
	Speed       float64       `yaml:"speed"`
	AISpeed     float64       `yaml:"ai_speed"`
	RallyAccel  float64       `yaml:"rally_accel"`
	Spin        float64       `yaml:"spin"`
	SpinCarry   float64       `yaml:"spin_carry"`
	AIJitter    float64       `yaml:"ai_jitter"`
	AIDeadZone  float64       `yaml:"ai_dead_zone"`
	NotifyDelay time.Duration `yaml:"notify_delay"`
}

const DefaultMaxScore = 5

func DefaultGeometry() Geometry {
	return Geometry{
		Width:        800,
		Height:       500,
		PaddleWidth:  14,
		PaddleHeight: 90,
		PaddleMargin: 24,
		BallRadius:   12,
	}
}

func DefaultTuning() Tuning {
	return Tuning{
		Speed:       7,
		AISpeed:     4.5,
		RallyAccel:  1.03,
		Spin:        1.1,
		SpinCarry:   0.15,
		AIJitter:    16,
		AIDeadZone:  18,
		NotifyDelay: 100 * time.Millisecond,
	}
}

// LeftPaddleX is the left edge of the player paddle.
func (g Geometry) LeftPaddleX() float64 {
	return g.PaddleMargin
}

// RightPaddleX is the left edge of the opponent paddle.
func (g Geometry) RightPaddleX() float64 {
	return g.Width - g.PaddleMargin - g.PaddleWidth
}

// MaxPaddleY is the largest valid paddle top offset.
func (g Geometry) MaxPaddleY() float64 {
	return g.Height - g.PaddleHeight
}

// ClampPaddle keeps a paddle top offset inside [0, MaxPaddleY].
func (g Geometry) ClampPaddle(y float64) float64 {
	return max(0, min(g.MaxPaddleY(), y))
}

// CenteredPaddle is the top offset of a vertically centered paddle.
func (g Geometry) CenteredPaddle() float64 {
	return (g.Height - g.PaddleHeight) / 2
}
