package pong

//go:generate go tool stringer -type=Side -trimprefix=Side

// Side identifies one of the two paddles.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

// ScoreEvent is raised when the ball leaves the surface through a side
// boundary. Scorer is the side that earned the point.
type ScoreEvent struct {
	Scorer Side
}
