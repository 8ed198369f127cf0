package pong

import (
	"math/rand/v2"

	"github.com/plus3/pong/logger"
)

// TextSink receives a score as display text.
type TextSink interface {
	SetText(text string)
}

// Notifier delivers the end-of-game message.
type Notifier interface {
	Notify(text string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(text string)

func (f NotifierFunc) Notify(text string) { f(text) }

// Notifiers fans a message out to several notifiers in order.
type Notifiers []Notifier

func (n Notifiers) Notify(text string) {
	for _, notifier := range n {
		notifier.Notify(text)
	}
}

// PointerSource reports the pointer's vertical offset from the top edge of
// the surface. ok is false while the pointer is not over the surface.
type PointerSource interface {
	PointerY() (y float64, ok bool)
}

type discard struct{}

func (discard) SetText(string) {}
func (discard) Notify(string)  {}

// Env bundles the collaborators the update systems talk to.
type Env struct {
	Random      Random
	Pointer     PointerSource
	PlayerScore TextSink
	AIScore     TextSink
	Notifier    Notifier
	Logger      logger.Logger
}

func (e Env) withDefaults() Env {
	if e.Random == nil {
		e.Random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if e.PlayerScore == nil {
		e.PlayerScore = discard{}
	}
	if e.AIScore == nil {
		e.AIScore = discard{}
	}
	if e.Notifier == nil {
		e.Notifier = discard{}
	}
	if e.Logger == nil {
		e.Logger = logger.NewNop()
	}
	return e
}
