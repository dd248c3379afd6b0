package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/physics"
	"github.com/lixenwraith/dodge/terminal"
)

// drawOrder paints walls first and the player last so it stays visible under overlap
var drawOrder = [...]core.Tag{core.TagBound, core.TagCollectible, core.TagBullet, core.TagFoe, core.TagPlayer}

// FrameInfo carries per-frame state that does not live in the World
type FrameInfo struct {
	Muted bool
}

// TerminalRenderer draws the world onto a tcell screen through a viewport
type TerminalRenderer struct {
	screen tcell.Screen
	view   *terminal.Viewport
	base   tcell.Style
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen, view *terminal.Viewport) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		view:   view,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(w *engine.World, info FrameInfo) {
	r.screen.SetStyle(r.base)
	r.screen.Clear()

	for _, tag := range drawOrder {
		for e := range w.EntitiesByTag(tag) {
			r.drawEntity(w, e, tag)
		}
	}

	r.drawHUD(w.Resources.Game, info)
	r.drawBanner(w.Resources.Game)
	r.screen.Show()
}

func (r *TerminalRenderer) drawEntity(w *engine.World, e core.Entity, tag core.Tag) {
	app, ok := w.Components.Appearance.GetComponent(e)
	if !ok {
		return
	}
	tr, ok := w.Components.Transform.GetComponent(e)
	if !ok {
		return
	}
	col, ok := w.Components.Collider.GetComponent(e)
	if !ok {
		return
	}

	ws := physics.Place(col.Shape, tr)
	style := r.base.Foreground(RGB(app.Color))
	if tag == core.TagBound {
		r.drawBound(ws, app.Glyph, style)
		return
	}
	r.drawShape(ws, app, style)
}

// drawShape rasterizes by sampling cell centers; shapes smaller than a cell still get their center cell
func (r *TerminalRenderer) drawShape(ws physics.WorldShape, app component.AppearanceComponent, style tcell.Style) {
	v := r.view
	x0, y0 := v.WorldToCell(ws.Bounds.Min)
	x1, y1 := v.WorldToCell(ws.Bounds.Max)
	x0, y0 = max(x0, v.X), max(y0, v.Y)
	x1, y1 = min(x1, v.X+v.Cols-1), min(y1, v.Y+v.Rows-1)

	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !ws.ContainsPoint(v.CellToWorld(x, y)) {
				continue
			}
			if !app.Filled && r.interior(ws, x, y) {
				continue
			}
			r.screen.SetContent(x, y, app.Glyph, nil, style)
			drawn = true
		}
	}
	if drawn {
		return
	}
	if cx, cy := v.WorldToCell(ws.Center); v.InPlayfield(cx, cy) {
		r.screen.SetContent(cx, cy, app.Glyph, nil, style)
	}
}

func (r *TerminalRenderer) interior(ws physics.WorldShape, x, y int) bool {
	v := r.view
	return ws.ContainsPoint(v.CellToWorld(x-1, y)) &&
		ws.ContainsPoint(v.CellToWorld(x+1, y)) &&
		ws.ContainsPoint(v.CellToWorld(x, y-1)) &&
		ws.ContainsPoint(v.CellToWorld(x, y+1))
}

// drawBound squeezes a wall into the border ring around the playfield
func (r *TerminalRenderer) drawBound(ws physics.WorldShape, glyph rune, style tcell.Style) {
	v := r.view
	x0, y0 := v.WorldToCell(ws.Bounds.Min)
	x1, y1 := v.WorldToCell(ws.Bounds.Max)
	lo, hi := v.X-terminal.BorderCells, v.X+v.Cols
	top, bottom := v.Y-terminal.BorderCells, v.Y+v.Rows
	x0, x1 = clampInt(x0, lo, hi), clampInt(x1, lo, hi)
	y0, y1 = clampInt(y0, top, bottom), clampInt(y1, top, bottom)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if v.InPlayfield(x, y) {
				continue
			}
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawHUD(game *engine.GameState, info FrameInfo) {
	row := r.view.HUDRow()
	x := r.drawText(1, row, "score ", r.base.Foreground(RgbHUDText))
	x = r.drawText(x, row, fmt.Sprintf("%d", game.GetScore()), r.base.Foreground(RgbHUDScore).Bold(true))
	x = r.drawText(x, row, "  best ", r.base.Foreground(RgbHUDText))
	x = r.drawText(x, row, fmt.Sprintf("%d", game.BestScore()), r.base.Foreground(RgbHUDScore))

	switch {
	case game.IsOver():
		x = r.drawText(x+2, row, "GAME OVER", r.base.Foreground(RgbGameOver).Bold(true))
	case game.IsPaused():
		x = r.drawText(x+2, row, "PAUSED", r.base.Foreground(RgbPaused).Bold(true))
	}
	if info.Muted {
		r.drawText(x+2, row, "muted", r.base.Foreground(RgbMuted))
	}
}

// drawBanner centers a prompt in the playfield while the simulation is frozen
func (r *TerminalRenderer) drawBanner(game *engine.GameState) {
	var text string
	var style tcell.Style
	switch {
	case game.IsOver():
		text, style = "GAME OVER  r restart  q quit", r.base.Foreground(RgbGameOver).Bold(true)
	case game.IsPaused():
		text, style = "PAUSED  p resume", r.base.Foreground(RgbPaused).Bold(true)
	default:
		return
	}
	v := r.view
	x := v.X + max((v.Cols-len(text))/2, 0)
	r.drawText(x, v.Y+v.Rows/2, text, style)
}

// drawText writes s from (x, y) and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
