// Package render draws the playfield with ebiten. Rendering only reads game
// state. Paddles are vertex-shaded; the ball, glow and vignette are built
// once with gg.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/pong"
)

var (
	Background = color.NRGBA{0x15, 0x1e, 0x30, 0xff}
	NetColor   = color.NRGBA{0x53, 0xe6, 0xff, 0xff}

	// Paddle colors, top then bottom.
	PlayerColors = [2]color.NRGBA{{0x33, 0xc3, 0xff, 0xff}, {0x53, 0xe6, 0xff, 0xff}}
	AIColors     = [2]color.NRGBA{{0xff, 0x5c, 0x93, 0xff}, {0xff, 0xc3, 0x71, 0xff}}

	BallStops = []Stop{
		{0, color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{0.8, color.NRGBA{0xee, 0xee, 0xee, 0xff}},
		{1, NetColor},
	}

	VignetteStops = []Stop{
		{0.85, color.NRGBA{0, 0, 0, 0}},
		{1, color.NRGBA{21, 30, 48, 148}},
	}

	highlight   = color.NRGBA{255, 255, 255, 115}
	ballShadow  = color.NRGBA{0, 0, 0, 46}
	bannerShade = color.NRGBA{0, 0, 0, 150}
)

const (
	netWidth        = 4
	netDash         = 18
	netGap          = 22
	highlightHeight = 18
	glowBlur        = 8

	// ebitenutil's debug font cell.
	glyphWidth  = 6
	glyphHeight = 16
)

// Screen is the image the render systems draw into this frame.
type Screen struct {
	*ebiten.Image
}

type sprites struct {
	vignette *ebiten.Image
	ball     *ebiten.Image
	glow     *ebiten.Image
	text     *ebiten.Image
	white    *ebiten.Image
}

func newSprites(geo pong.Geometry) *sprites {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &sprites{
		vignette: ebiten.NewImageFromImage(Vignette(int(geo.Width), int(geo.Height))),
		ball:     ebiten.NewImageFromImage(BallSprite(geo.BallRadius)),
		glow:     ebiten.NewImageFromImage(Glow(geo.BallRadius, glowBlur, NetColor)),
		text:     ebiten.NewImage(int(geo.Width)/2, glyphHeight),
		white:    white,
	}
}

// RenderSystem repaints the whole surface from the game state.
type RenderSystem struct {
	State    engine.Singleton[pong.State]
	Geometry engine.Singleton[pong.Geometry]
	HUD      engine.Singleton[HUD]
	Screen   engine.Singleton[Screen]

	sprites *sprites
	geo     pong.Geometry
}

func (s *RenderSystem) Execute(frame *engine.UpdateFrame) {
	screen := s.Screen.Get()
	if screen == nil || screen.Image == nil {
		return
	}
	state := s.State.Get()
	geo := *s.Geometry.Get()

	if s.sprites == nil || s.geo != geo {
		s.sprites = newSprites(geo)
		s.geo = geo
	}

	screen.Fill(Background)
	screen.DrawImage(s.sprites.vignette, nil)

	s.drawNet(screen.Image, geo)
	s.drawPaddle(screen.Image, geo, PlayerColors, geo.LeftPaddleX(), state.PlayerPaddleY)
	s.drawPaddle(screen.Image, geo, AIColors, geo.RightPaddleX(), state.AIPaddleY)
	s.drawBall(screen.Image, geo, state.BallX, state.BallY)

	if hud := s.HUD.Get(); hud != nil {
		s.drawHUD(screen.Image, geo, hud)
	}
}

func (s *RenderSystem) drawNet(dst *ebiten.Image, geo pong.Geometry) {
	x := float32(geo.Width / 2)
	for _, seg := range Dashes(geo.Height, netDash, netGap) {
		vector.StrokeLine(dst, x, float32(seg.From), x, float32(seg.To), netWidth, NetColor, false)
	}
}

func (s *RenderSystem) drawPaddle(dst *ebiten.Image, geo pong.Geometry, colors [2]color.NRGBA, x, y float64) {
	w, h := float32(geo.PaddleWidth), float32(geo.PaddleHeight)
	vs, is := GradientRect(float32(x), float32(y), w, h, colors[0], colors[1])
	dst.DrawTriangles(vs, is, s.sprites.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image), nil)

	vector.DrawFilledRect(dst, float32(x), float32(y), w, highlightHeight, highlight, false)
}

func (s *RenderSystem) drawBall(dst *ebiten.Image, geo pong.Geometry, x, y float64) {
	r := geo.BallRadius
	vector.DrawFilledCircle(dst, float32(x+3), float32(y+4), float32(r), ballShadow, true)

	s.drawCentered(dst, s.sprites.glow, x, y)
	s.drawCentered(dst, s.sprites.ball, x, y)
}

func (s *RenderSystem) drawCentered(dst, sprite *ebiten.Image, x, y float64) {
	b := sprite.Bounds()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(x-float64(b.Dx())/2, y-float64(b.Dy())/2)
	dst.DrawImage(sprite, opts)
}

func (s *RenderSystem) drawHUD(dst *ebiten.Image, geo pong.Geometry, hud *HUD) {
	const scoreScale = 3
	top := 20.0

	player := hud.PlayerScore.Text()
	ai := hud.AIScore.Text()
	s.drawText(dst, player, geo.Width/4-TextWidth(player, scoreScale)/2, top, scoreScale)
	s.drawText(dst, ai, geo.Width*3/4-TextWidth(ai, scoreScale)/2, top, scoreScale)

	banner := hud.Banner.Text()
	if banner == "" {
		return
	}

	const bannerScale = 2
	bandHeight := glyphHeight*bannerScale + 24.0
	bandTop := geo.Height/2 - bandHeight/2
	vector.DrawFilledRect(dst, 0, float32(bandTop), float32(geo.Width), float32(bandHeight), bannerShade, false)
	s.drawText(dst, banner, geo.Width/2-TextWidth(banner, bannerScale)/2, bandTop+12, bannerScale)
}

func (s *RenderSystem) drawText(dst *ebiten.Image, text string, x, y, scale float64) {
	s.sprites.text.Clear()
	ebitenutil.DebugPrintAt(s.sprites.text, text, 0, 0)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(x, y)
	dst.DrawImage(s.sprites.text, opts)
}

// TextWidth is the on-screen width of text in the debug font at scale.
func TextWidth(text string, scale float64) float64 {
	return float64(len(text)) * glyphWidth * scale
}

// RegisterSystems registers the render systems.
func RegisterSystems(scheduler *engine.Scheduler) {
	scheduler.Register(&RenderSystem{})
}
