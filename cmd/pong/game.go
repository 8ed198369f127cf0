package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	debugui_ebiten "github.com/plus3/pong/debugui/ebiten"
	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/logger"
	"github.com/plus3/pong/pong"
	"github.com/plus3/pong/pong/render"
)

const tickRate = 1.0 / 60.0

// Game implements ebiten.Game. Update runs one simulation tick and Draw
// repaints the surface from the resulting state.
type Game struct {
	Resources *engine.Resources
	World     *engine.Scheduler
	Renderer  *engine.Scheduler
	HUD       *render.HUD
	Geometry  pong.Geometry
	Log       logger.Logger

	// Imgui is nil unless the debug overlay is enabled.
	Imgui *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Restart()
	}

	if g.Imgui != nil {
		g.Imgui.BeginFrame()
	}
	g.World.Once(tickRate)
	if g.Imgui != nil {
		g.Imgui.EndFrame()
	}
	return nil
}

// Restart begins a new match and clears the banner.
func (g *Game) Restart() {
	previous := engine.Get[pong.State](g.Resources)
	g.Log.Info("restart requested",
		logger.F("match_id", previous.MatchID),
		logger.F("score", previous.Tally()),
		logger.F("over", previous.Over),
	)

	pong.Restart(g.Resources)
	g.HUD.Clear()
}

func (g *Game) Draw(screen *ebiten.Image) {
	engine.Get[render.Screen](g.Resources).Image = screen
	g.Renderer.Once(0)

	if g.Imgui != nil {
		g.Imgui.Draw(screen)
	}
}

// Layout keeps the logical surface at the playfield size so cursor
// coordinates match surface coordinates at any window scale.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := int(g.Geometry.Width), int(g.Geometry.Height)
	if g.Imgui != nil {
		g.Imgui.Layout(w, h)
	}
	return w, h
}
