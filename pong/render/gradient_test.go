package render_test

import (
	"image"
	"testing"

	"github.com/plus3/pong/pong/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientRect(t *testing.T) {
	top, bottom := render.PlayerColors[0], render.PlayerColors[1]
	vs, is := render.GradientRect(24, 100, 14, 90, top, bottom)

	require.Len(t, vs, 4)
	assert.Equal(t, []uint16{0, 1, 2, 1, 2, 3}, is)

	for i, v := range vs {
		want := top
		if i >= 2 {
			want = bottom
		}
		assert.InDelta(t, float64(want.R)/255, float64(v.ColorR), 1e-6)
		assert.InDelta(t, float64(want.G)/255, float64(v.ColorG), 1e-6)
		assert.InDelta(t, float64(want.B)/255, float64(v.ColorB), 1e-6)
		assert.Equal(t, float32(1), v.ColorA)
	}

	assert.Equal(t, float32(24), vs[0].DstX)
	assert.Equal(t, float32(100), vs[0].DstY)
	assert.Equal(t, float32(38), vs[3].DstX)
	assert.Equal(t, float32(190), vs[3].DstY)
}

func TestBallSprite(t *testing.T) {
	const r = 12.0
	img := render.BallSprite(r)
	size := img.Bounds().Dx()
	c := size / 2

	assert.Equal(t, 26, size)
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A, "corners are outside the ball")
	assert.Equal(t, uint8(255), img.RGBAAt(c, c).A)

	rim := img.RGBAAt(c+int(r)-2, c)
	assert.Equal(t, uint8(255), rim.A)
	assert.Less(t, rim.R, uint8(0xee), "rim tints toward the glow color")
}

func TestVignette(t *testing.T) {
	img := render.Vignette(100, 100)

	assert.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())
	assert.Equal(t, uint8(0), img.RGBAAt(50, 50).A, "center is untouched")
	assert.InDelta(t, 148, int(img.RGBAAt(0, 0).A), 2, "corners take the last stop")
}

func TestGlow(t *testing.T) {
	img := render.Glow(12, 8, render.NetColor)
	size := img.Bounds().Dx()

	assert.Equal(t, 42, size)
	center := img.RGBAAt(size/2, size/2)
	assert.Equal(t, uint8(255), center.A)
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
}

func TestDashes(t *testing.T) {
	segments := render.Dashes(100, 18, 22)

	assert.Equal(t, []render.Segment{
		{From: 0, To: 18},
		{From: 40, To: 58},
		{From: 80, To: 98},
	}, segments)

	assert.Equal(t, []render.Segment{{From: 80, To: 90}}, render.Dashes(90, 18, 22)[2:])
	assert.Equal(t, []render.Segment{{From: 0, To: 50}}, render.Dashes(50, 0, 10))
}

func TestHUD(t *testing.T) {
	var hud render.HUD
	hud.PlayerScore.SetText("3")
	hud.Notify("AI wins! Final Score: 3 - 5")

	assert.Equal(t, "3", hud.PlayerScore.Text())
	assert.Equal(t, "AI wins! Final Score: 3 - 5", hud.Banner.Text())

	hud.Clear()
	assert.Empty(t, hud.Banner.Text())

	assert.Equal(t, 36.0, render.TextWidth("12", 3))
}
