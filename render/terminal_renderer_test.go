package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/entity"
	"github.com/lixenwraith/dodge/terminal"
	"github.com/lixenwraith/dodge/vmath"
)

// newScreen returns an 82x63 simulation screen: 80x60 playfield, ten world units per cell
func newScreen(t *testing.T) (tcell.SimulationScreen, *terminal.Viewport) {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(82, 63)

	v := terminal.NewViewport(800, 600)
	v.Resize(82, 63)
	return s, v
}

func runeAt(s tcell.Screen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

func TestRenderPlayerAndWalls(t *testing.T) {
	s, v := newScreen(t)
	w := engine.NewWorld()
	entity.CreateBounds(w)
	entity.CreatePlayer(w)

	NewTerminalRenderer(s, v).RenderFrame(w, FrameInfo{})

	assert.Equal(t, '@', runeAt(s, 41, 31))
	// Radius 24 reaches the neighbouring cell centers but not two cells out
	assert.Equal(t, '@', runeAt(s, 42, 31))
	assert.Equal(t, '@', runeAt(s, 40, 31))
	assert.NotEqual(t, '@', runeAt(s, 44, 31))

	for _, p := range [][2]int{{0, 0}, {81, 0}, {0, 30}, {81, 30}, {0, 61}, {40, 61}} {
		assert.Equal(t, '#', runeAt(s, p[0], p[1]), "border %v", p)
	}
	assert.NotEqual(t, '#', runeAt(s, 1, 1))
}

func TestRenderSmallShapeKeepsCenterCell(t *testing.T) {
	s, v := newScreen(t)
	w := engine.NewWorld()
	w.Resources.Config.Bullet.Radius = 1
	entity.CreateBullet(w, 0, vmath.V2(201, 201), vmath.Vec2{})

	NewTerminalRenderer(s, v).RenderFrame(w, FrameInfo{})
	assert.Equal(t, 'o', runeAt(s, 21, 21))
}

func TestRenderOutlineLeavesInteriorEmpty(t *testing.T) {
	s, v := newScreen(t)
	w := engine.NewWorld()
	eb := w.NewEntity(core.TagCollectible, core.NewTransform(400, 300, 0))
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		Shape: component.Rectangle(100, 100),
		Layer: core.LayerCollectible,
	})
	engine.With(eb, w.Components.Appearance, component.AppearanceComponent{Glyph: 'A', Color: 0xFF0000})
	eb.Build()

	NewTerminalRenderer(s, v).RenderFrame(w, FrameInfo{})

	// Cells 36..45 on both axes are inside the square
	assert.Equal(t, 'A', runeAt(s, 36, 31))
	assert.Equal(t, 'A', runeAt(s, 45, 31))
	assert.Equal(t, 'A', runeAt(s, 41, 26))
	assert.NotEqual(t, 'A', runeAt(s, 41, 31))
}

func TestRenderClipsOffscreenEntities(t *testing.T) {
	s, v := newScreen(t)
	w := engine.NewWorld()
	entity.CreateFoe(w, 2)

	NewTerminalRenderer(s, v).RenderFrame(w, FrameInfo{})
	for y := 0; y < 63; y++ {
		assert.NotContains(t, rowText(s, y), "A")
	}
}

func TestRenderHUD(t *testing.T) {
	s, v := newScreen(t)
	w := engine.NewWorld()
	game := w.Resources.Game
	game.AddScore(7)
	game.Reset()
	game.AddScore(2)

	r := NewTerminalRenderer(s, v)
	r.RenderFrame(w, FrameInfo{})
	hud := rowText(s, v.HUDRow())
	assert.Contains(t, hud, "score 2  best 7")
	assert.NotContains(t, hud, "PAUSED")

	game.SetPaused(true)
	r.RenderFrame(w, FrameInfo{Muted: true})
	hud = rowText(s, v.HUDRow())
	assert.Contains(t, hud, "PAUSED")
	assert.Contains(t, hud, "muted")
	assert.Contains(t, rowText(s, v.Y+v.Rows/2), "PAUSED  p resume")

	game.SetOver()
	r.RenderFrame(w, FrameInfo{})
	assert.Contains(t, rowText(s, v.HUDRow()), "GAME OVER")
	assert.Contains(t, rowText(s, v.Y+v.Rows/2), "r restart")
}

func TestRGB(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(0x4F, 0xC3, 0xF7), RGB(0x4FC3F7))
}
