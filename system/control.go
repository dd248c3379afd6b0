package system

import (
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/event"
	"github.com/lixenwraith/dodge/input"
	"github.com/lixenwraith/dodge/parameter"
	"github.com/lixenwraith/dodge/physics"
	"github.com/lixenwraith/dodge/vmath"
)

// dragState is the pointer gesture in progress
// origin is the pointer anchor, start the player anchor, target where the player eases to
type dragState struct {
	active bool
	origin vmath.Vec2
	start  vmath.Vec2
	target vmath.Vec2
}

// ControlSystem turns pointer drags into a smoothed player position
type ControlSystem struct {
	engine.SystemBase
	hub *input.Hub

	drag *dragState // nil until the first press of the scene
}

// NewControlSystem creates a control system fed by hub
func NewControlSystem(world *engine.World, hub *input.Hub) engine.System {
	return &ControlSystem{
		SystemBase: engine.NewSystemBase(world),
		hub:        hub,
	}
}

func (s *ControlSystem) Name() string {
	return "control"
}

func (s *ControlSystem) Priority() int {
	return parameter.PriorityControl
}

// Init drops any previous gesture and connects the three pointer kinds
func (s *ControlSystem) Init() []event.Disposable {
	s.drag = nil
	return []event.Disposable{
		s.hub.Connect(input.PointerDown, s.press),
		s.hub.Connect(input.PointerMove, s.move),
		s.hub.Connect(input.PointerUp, s.release),
	}
}

// Target returns the current easing target, false before the first press
func (s *ControlSystem) Target() (vmath.Vec2, bool) {
	if s.drag == nil {
		return vmath.Vec2{}, false
	}
	return s.drag.target, true
}

func (s *ControlSystem) press(ev input.PointerEvent) {
	player, ok := s.World.FirstByTag(core.TagPlayer)
	if !ok {
		return
	}
	tr, ok := s.Component.Transform.GetComponent(player)
	if !ok {
		return
	}
	s.drag = &dragState{
		active: true,
		origin: ev.Position,
		start:  tr.Position,
		target: tr.Position,
	}
}

func (s *ControlSystem) move(ev input.PointerEvent) {
	if s.drag == nil || !s.drag.active {
		return
	}
	cfg := s.Resource.Config
	d := s.drag

	target := vmath.V2Add(d.start, vmath.V2Scale(vmath.V2Sub(ev.Position, d.origin), cfg.Player.DragScale))

	// Re-anchor an axis once its target leaves the playfield so pulling back responds immediately
	if target.X <= 0 || target.X >= cfg.World.Width {
		d.origin.X = ev.Position.X
		d.start.X = vmath.Clamp(target.X, 0, cfg.World.Width)
	}
	if target.Y <= 0 || target.Y >= cfg.World.Height {
		d.origin.Y = ev.Position.Y
		d.start.Y = vmath.Clamp(target.Y, 0, cfg.World.Height)
	}
	d.target = target
}

func (s *ControlSystem) release(input.PointerEvent) {
	if s.drag != nil {
		s.drag.active = false
	}
}

// Update eases the player toward the target, kept inside the playfield by its radius
func (s *ControlSystem) Update(dt float64) {
	if s.drag == nil {
		return
	}
	player, ok := s.World.FirstByTag(core.TagPlayer)
	if !ok {
		return
	}
	tr, ok := s.Component.Transform.GetComponent(player)
	if !ok {
		return
	}
	settings, ok := s.Component.PlayerSettings.GetComponent(player)
	if !ok {
		return
	}
	cfg := s.Resource.Config

	step := vmath.V2Scale(vmath.V2Sub(s.drag.target, tr.Position), 1/cfg.Player.EaseDivisor)
	tr.Position = physics.ClampInside(vmath.V2Add(tr.Position, step), cfg.World.Width, cfg.World.Height, settings.Radius)
	s.Component.Transform.SetComponent(player, tr)
}
