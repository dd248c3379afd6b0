package terminal

import (
	"math"

	"github.com/lixenwraith/dodge/vmath"
)

const (
	// BorderCells is the ring drawn around the playfield
	BorderCells = 1
	// HUDRows is the status line below the bottom border
	HUDRows = 1
)

// Viewport maps the world rectangle [0,WorldW]x[0,WorldH] onto a block of terminal cells
// Cells are not square, so each axis scales independently
type Viewport struct {
	WorldW, WorldH float64

	// Playfield origin and size in cells
	X, Y       int
	Cols, Rows int

	// Full screen size from the last Resize
	ScreenW, ScreenH int
}

// NewViewport creates a viewport for a world of the given size, sized for an 80x24 screen until Resize
func NewViewport(worldW, worldH float64) *Viewport {
	v := &Viewport{WorldW: worldW, WorldH: worldH}
	v.Resize(80, 24)
	return v
}

// Resize fits the playfield into a screen of w x h cells
func (v *Viewport) Resize(w, h int) {
	v.ScreenW, v.ScreenH = w, h
	v.X, v.Y = BorderCells, BorderCells
	v.Cols = max(w-2*BorderCells, 1)
	v.Rows = max(h-2*BorderCells-HUDRows, 1)
}

// CellSize returns world units covered by one cell on each axis
func (v *Viewport) CellSize() (float64, float64) {
	return v.WorldW / float64(v.Cols), v.WorldH / float64(v.Rows)
}

// WorldToCell returns the screen cell containing p; the result may lie outside the playfield
func (v *Viewport) WorldToCell(p vmath.Vec2) (int, int) {
	cw, ch := v.CellSize()
	return v.X + int(math.Floor(p.X/cw)), v.Y + int(math.Floor(p.Y/ch))
}

// CellToWorld returns the world position of the center of screen cell (x, y)
func (v *Viewport) CellToWorld(x, y int) vmath.Vec2 {
	cw, ch := v.CellSize()
	return vmath.V2((float64(x-v.X)+0.5)*cw, (float64(y-v.Y)+0.5)*ch)
}

// InPlayfield reports whether screen cell (x, y) is inside the playfield
func (v *Viewport) InPlayfield(x, y int) bool {
	return x >= v.X && x < v.X+v.Cols && y >= v.Y && y < v.Y+v.Rows
}

// HUDRow returns the screen row of the status line
func (v *Viewport) HUDRow() int {
	return v.Y + v.Rows + BorderCells
}
