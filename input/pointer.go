package input

import "github.com/lixenwraith/dodge/vmath"

// PointerKind is the raw pointer event class
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer sample in world coordinates
type PointerEvent struct {
	Kind     PointerKind
	Position vmath.Vec2
}
