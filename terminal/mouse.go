package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dodge/input"
	"github.com/lixenwraith/dodge/vmath"
)

// MouseTracker turns tcell mouse reports into pointer events on a hub
// tcell reports button state rather than transitions; the tracker derives down/move/up from it
type MouseTracker struct {
	hub  *input.Hub
	view *Viewport

	down         bool
	lastX, lastY int
}

// NewMouseTracker creates a tracker dispatching to hub in view coordinates
func NewMouseTracker(hub *input.Hub, view *Viewport) *MouseTracker {
	return &MouseTracker{hub: hub, view: view}
}

// IsDown reports whether the primary button is held
func (m *MouseTracker) IsDown() bool {
	return m.down
}

// Handle decodes one mouse report; returns the dispatched kind and whether anything was dispatched
// Hover without the primary button is ignored, as are repeated reports from the same cell
func (m *MouseTracker) Handle(ev *tcell.EventMouse) (input.PointerKind, bool) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	var kind input.PointerKind
	switch {
	case pressed && !m.down:
		m.down = true
		kind = input.PointerDown
	case pressed && m.down:
		if x == m.lastX && y == m.lastY {
			return 0, false
		}
		kind = input.PointerMove
	case !pressed && m.down:
		m.down = false
		kind = input.PointerUp
	default:
		return 0, false
	}

	m.lastX, m.lastY = x, y
	m.hub.Dispatch(input.PointerEvent{Kind: kind, Position: m.worldPosition(x, y)})
	return kind, true
}

// Reset releases a held button, used when the screen loses the pointer on resize or restart
func (m *MouseTracker) Reset() {
	if !m.down {
		return
	}
	m.down = false
	m.hub.Dispatch(input.PointerEvent{Kind: input.PointerUp, Position: m.worldPosition(m.lastX, m.lastY)})
}

// worldPosition clamps the pointer to the world rectangle, the way a canvas clamps to its element
func (m *MouseTracker) worldPosition(x, y int) vmath.Vec2 {
	p := m.view.CellToWorld(x, y)
	p.X = vmath.Clamp(p.X, 0, m.view.WorldW)
	p.Y = vmath.Clamp(p.Y, 0, m.view.WorldH)
	return p
}
